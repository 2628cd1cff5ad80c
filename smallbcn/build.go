package smallbcn

import (
	"fmt"

	"github.com/lvlath-bcn/bcn/assr"
	"github.com/lvlath-bcn/bcn/eval"
	"github.com/lvlath-bcn/bcn/token"
	"github.com/lvlath-bcn/bcn/vector"
)

// New builds a BCN from an ordered expression dictionary (spec.md §4.3):
//
//  1. variables <- the Var names, in the order given.
//  2. Each expression is tokenized; every VARIABLE lexeme not already a
//     state variable or a discovered input variable is appended to
//     input_variables, in first-occurrence order.
//  3. The ASSR table L is built by exhaustive enumeration over every
//     (state, input) bit assignment, evaluating every variable's
//     expression simultaneously against the same pre-image assignment.
func New(exprs []VarExpr, opts ...Option) (*BCN, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	variables := make([]string, 0, len(exprs))
	seen := make(map[string]bool, len(exprs))
	for _, ve := range exprs {
		if seen[ve.Var] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, ve.Var)
		}
		seen[ve.Var] = true
		variables = append(variables, ve.Var)
	}

	tokens := make(map[string][]token.Token, len(exprs))
	var inputVariables []string
	inputSeen := make(map[string]bool)
	for _, ve := range exprs {
		toks, err := token.Tokenize(ve.Expr)
		if err != nil {
			return nil, fmt.Errorf("smallbcn: tokenizing %q: %w", ve.Var, err)
		}
		tokens[ve.Var] = toks
		for _, t := range toks {
			if t.Kind != token.VARIABLE {
				continue
			}
			if seen[t.Lexeme] || inputSeen[t.Lexeme] {
				continue
			}
			inputSeen[t.Lexeme] = true
			inputVariables = append(inputVariables, t.Lexeme)
		}
	}

	n := len(variables)
	m := len(inputVariables)
	N := 1 << uint(n)
	M := 1 << uint(m)

	table, err := assr.New(N, M)
	if err != nil {
		return nil, err
	}

	b := &BCN{
		variables:      variables,
		inputVariables: inputVariables,
		n:              n,
		m:              m,
		N:              N,
		M:              M,
		tokens:         tokens,
		table:          table,
	}

	if err := b.populateTable(); err != nil {
		return nil, err
	}

	if o.hasInit {
		if len(o.initStates) != n {
			return nil, fmt.Errorf("%w: expected %d bits, got %d", ErrInvalidInitialState, n, len(o.initStates))
		}
		pos, err := vector.FromStates(o.initStates)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInitialState, err)
		}
		if err := b.SetStatesI(pos.Pos); err != nil {
			return nil, err
		}
	} else {
		b.scratch = make(map[string]int, n)
		for _, v := range variables {
			b.scratch[v] = 0
		}
	}

	return b, nil
}

// populateTable runs the exhaustive truth-table enumeration described in
// spec.md §4.3 step 3, filling b.table.
func (b *BCN) populateTable() error {
	for s := 1; s <= b.N; s++ {
		stateBits, err := decodeBits(s, b.N, b.n)
		if err != nil {
			return err
		}
		stateEnv := make(eval.Env, b.n+b.m)
		for i, v := range b.variables {
			stateEnv[v] = stateBits[i]
		}

		for u := 1; u <= b.M; u++ {
			inputBits, err := decodeBits(u, b.M, b.m)
			if err != nil {
				return err
			}
			env := make(eval.Env, len(stateEnv))
			for k, v := range stateEnv {
				env[k] = v
			}
			for i, iv := range b.inputVariables {
				env[iv] = inputBits[i]
			}

			nextBits := make([]int, b.n)
			for i, v := range b.variables {
				bit, err := eval.Evaluate(b.tokens[v], env)
				if err != nil {
					return fmt.Errorf("smallbcn: evaluating %q at state %d, input %d: %w", v, s, u, err)
				}
				nextBits[i] = bit
			}

			nextPos, err := vector.FromStates(nextBits)
			if err != nil {
				return err
			}
			if err := b.table.Set(s, u, nextPos.Pos); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodeBits decodes pos (a position in [1,dim]) into its k-bit MSB-first
// list. k == 0 is the "no variables in this role" case (e.g. m == 0, so
// M == 1): vector.New rejects dim < 2, so that case is handled directly
// without constructing a LogicalVector.
func decodeBits(pos, dim, k int) ([]int, error) {
	if k == 0 {
		return []int{}, nil
	}
	v, err := vector.New(pos, dim)
	if err != nil {
		return nil, err
	}
	return v.ToList(), nil
}
