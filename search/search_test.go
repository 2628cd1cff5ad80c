package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-bcn/bcn/search"
)

// chain builds a 3-state successor: 1 -> 2 (one input), 2 -> 3 (two inputs
// grouped onto the same transition, as one_step_states groups them).
func chain(state int) map[int][]int {
	switch state {
	case 1:
		return map[int][]int{2: {1}}
	case 2:
		return map[int][]int{3: {1, 2}}
	default:
		return map[int][]int{}
	}
}

func TestControlOneWitness_StartEqualsDest(t *testing.T) {
	T, w, err := search.ControlOneWitness(5, 5, chain)
	require.NoError(t, err)
	assert.Equal(t, 0, T)
	assert.Equal(t, []int{5}, w.StatePath)
	assert.Empty(t, w.InputPath)
}

func TestControlOneWitness_FindsShortestWitness(t *testing.T) {
	T, w, err := search.ControlOneWitness(1, 3, chain)
	require.NoError(t, err)
	assert.Equal(t, 2, T)
	assert.Equal(t, []int{1, 2, 3}, w.StatePath)
	assert.Equal(t, [][]int{{1}, {1, 2}}, w.InputPath)
}

func TestControlOneWitness_Unreachable(t *testing.T) {
	_, _, err := search.ControlOneWitness(1, 99, chain)
	assert.ErrorIs(t, err, search.ErrUnreachable)
}

func TestControlOneWitness_NilSuccessor(t *testing.T) {
	_, _, err := search.ControlOneWitness(1, 2, nil)
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestControlAllWitnesses_CollectsTheGroupedWitness(t *testing.T) {
	T, ws, err := search.ControlAllWitnesses(1, 3, chain, search.WithTMax(5))
	require.NoError(t, err)
	assert.Equal(t, 2, T)
	require.Len(t, ws, 1)
	assert.Equal(t, []int{1, 2, 3}, ws[0].StatePath)
	assert.Equal(t, [][]int{{1}, {1, 2}}, ws[0].InputPath)
}

func TestControlAllWitnesses_RequiresTMax(t *testing.T) {
	_, _, err := search.ControlAllWitnesses(1, 3, chain)
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestControlAllWitnesses_UnreachableWithinTMax(t *testing.T) {
	_, _, err := search.ControlAllWitnesses(1, 3, chain, search.WithTMax(1))
	assert.ErrorIs(t, err, search.ErrUnreachable)
}

func TestControlAllWitnesses_NegativeTMaxIsInvalidOption(t *testing.T) {
	_, _, err := search.ControlAllWitnesses(1, 3, chain, search.WithTMax(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestControlAllWitnesses_NegativeWallClockIsInvalidOption(t *testing.T) {
	_, _, err := search.ControlAllWitnesses(1, 3, chain, search.WithTMax(5), search.WithWallClock(-time.Second))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestControlOneWitness_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := search.ControlOneWitness(1, 3, chain, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// branching has two distinct next states from the start, only one of which
// is the destination in the test below, so only that branch is collected.
func branching(state int) map[int][]int {
	switch state {
	case 1:
		return map[int][]int{2: {1}, 3: {2}}
	default:
		return map[int][]int{}
	}
}

func TestControlAllWitnesses_CollectsOnlyBranchEndingAtDest(t *testing.T) {
	T, ws, err := search.ControlAllWitnesses(1, 2, branching, search.WithTMax(3))
	require.NoError(t, err)
	assert.Equal(t, 1, T)
	require.Len(t, ws, 1)
	assert.Equal(t, []int{1, 2}, ws[0].StatePath)
}

func TestWitnessesAtHorizon_EmptyWithoutError(t *testing.T) {
	ws, err := search.WitnessesAtHorizon(1, 3, chain, 1)
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestWitnessesAtHorizon_ExactHorizonMatch(t *testing.T) {
	ws, err := search.WitnessesAtHorizon(1, 3, chain, 2)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, []int{1, 2, 3}, ws[0].StatePath)
	assert.Equal(t, [][]int{{1}, {1, 2}}, ws[0].InputPath)
}

func TestWitnessesAtHorizon_ZeroHorizonStartEqualsDest(t *testing.T) {
	ws, err := search.WitnessesAtHorizon(5, 5, chain, 0)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, []int{5}, ws[0].StatePath)
}
