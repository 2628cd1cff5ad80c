package smallbcn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-bcn/bcn/smallbcn"
)

func threeVarNetwork(t *testing.T) *smallbcn.BCN {
	t.Helper()
	b, err := smallbcn.New([]smallbcn.VarExpr{
		{Var: "x1", Expr: "x2|x3"},
		{Var: "x2", Expr: "x1 & u1"},
		{Var: "x3", Expr: "(u1|x2) & !x1"},
	})
	require.NoError(t, err)
	return b
}

func TestNew_DiscoversVariablesAndInputsInOrder(t *testing.T) {
	b := threeVarNetwork(t)
	assert.Equal(t, []string{"x1", "x2", "x3"}, b.Variables())
	assert.Equal(t, []string{"u1"}, b.InputVariables())
	assert.Equal(t, 8, b.N())
	assert.Equal(t, 2, b.M())
}

// TestNew_BuildsSpecExampleASSR reproduces spec scenario 3: the ASSR for
// {x1: x2|x3, x2: x1 & u1, x3: (u1|x2) & !x1} is exactly the 16-entry
// table [2,2,2,6,3,3,3,7,4,4,4,8,3,3,4,8].
func TestNew_BuildsSpecExampleASSR(t *testing.T) {
	b := threeVarNetwork(t)

	want := []int{2, 2, 2, 6, 3, 3, 3, 7, 4, 4, 4, 8, 3, 3, 4, 8}
	got := make([]int, 0, 16)
	for u := 1; u <= b.M(); u++ {
		for s := 1; s <= b.N(); s++ {
			next, err := b.NextState(s, u)
			require.NoError(t, err)
			got = append(got, next)
		}
	}
	assert.Equal(t, want, got)
}

// TestOneStepStates_GroupsBySpecExample reproduces spec scenario 4:
// one_step_states(8) groups reaching 7 under input 1 and 8 under input 2.
func TestOneStepStates_GroupsBySpecExample(t *testing.T) {
	b := threeVarNetwork(t)

	got, err := b.OneStepStates(8)
	require.NoError(t, err)
	assert.Equal(t, map[int][]int{7: {1}, 8: {2}}, got)
}

func TestNew_DuplicateVariable(t *testing.T) {
	_, err := smallbcn.New([]smallbcn.VarExpr{
		{Var: "x1", Expr: "x1"},
		{Var: "x1", Expr: "!x1"},
	})
	assert.ErrorIs(t, err, smallbcn.ErrDuplicateVariable)
}

func TestNew_IllegalCharacterPropagates(t *testing.T) {
	_, err := smallbcn.New([]smallbcn.VarExpr{
		{Var: "x1", Expr: "x1 @ x2"},
		{Var: "x2", Expr: "x1"},
	})
	require.Error(t, err)
}

func TestNew_MalformedExpressionFailsDuringConstruction(t *testing.T) {
	// New binds every identifier it discovers as a state or input variable,
	// so an unbound identifier cannot arise during ASSR construction. The
	// failure that can arise there is a parse error: here an unclosed
	// parenthesis.
	_, err := smallbcn.New([]smallbcn.VarExpr{
		{Var: "x1", Expr: "(x1"},
	})
	require.Error(t, err)
}

func TestNew_AutonomousNetworkHasNoInputs(t *testing.T) {
	b, err := smallbcn.New([]smallbcn.VarExpr{
		{Var: "x1", Expr: "!x1"},
	})
	require.NoError(t, err)
	assert.Empty(t, b.InputVariables())
	assert.Equal(t, 1, b.M())

	next, err := b.NextState(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestNew_WithInitStatesValidatesLength(t *testing.T) {
	_, err := smallbcn.New([]smallbcn.VarExpr{
		{Var: "x1", Expr: "x2"},
		{Var: "x2", Expr: "x1"},
	}, smallbcn.WithInitStates([]int{1}))
	assert.ErrorIs(t, err, smallbcn.ErrInvalidInitialState)
}

func TestNew_WithInitStatesSetsScratch(t *testing.T) {
	b, err := smallbcn.New([]smallbcn.VarExpr{
		{Var: "x1", Expr: "x2"},
		{Var: "x2", Expr: "x1"},
	}, smallbcn.WithInitStates([]int{1, 0}))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"x1": 1, "x2": 0}, b.States())
}
