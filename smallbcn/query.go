package smallbcn

import (
	"fmt"

	"github.com/lvlath-bcn/bcn/vector"
)

// NextState returns the state position reached from s under input u
// (spec.md §4.4).
func (b *BCN) NextState(s, u int) (int, error) {
	return b.table.At(s, u)
}

// OneStepStates returns, for state s, every state reachable in one step
// together with the sorted input positions that reach it (spec.md §4.4):
// inputs with identical images are grouped, and since u is scanned
// ascending, each group's input list is already in ascending order.
func (b *BCN) OneStepStates(s int) (map[int][]int, error) {
	if s < 1 || s > b.N {
		return nil, fmt.Errorf("%w: state position %d not in [1,%d]", ErrInvalidInitialState, s, b.N)
	}
	res := make(map[int][]int)
	for u := 1; u <= b.M; u++ {
		next := b.table.Next(s, u)
		res[next] = append(res[next], u)
	}
	return res, nil
}

// EncodeState encodes a bit-list in variables order into a state position.
func (b *BCN) EncodeState(bits []int) (int, error) {
	if len(bits) != b.n {
		return 0, fmt.Errorf("%w: expected %d bits, got %d", ErrInvalidInitialState, b.n, len(bits))
	}
	v, err := vector.FromStates(bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInitialState, err)
	}
	return v.Pos, nil
}

// DecodeState decodes a state position into a variable-name -> bit map.
func (b *BCN) DecodeState(s int) (map[string]int, error) {
	bits, err := decodeBits(s, b.N, b.n)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, b.n)
	for i, v := range b.variables {
		out[v] = bits[i]
	}
	return out, nil
}

// DecodeInputs decodes an input position into an input-name -> bit map
// (spec.md §4.4's get_inputs(u) for integer u).
func (b *BCN) DecodeInputs(u int) (map[string]int, error) {
	bits, err := decodeBits(u, b.M, b.m)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, b.m)
	for i, v := range b.inputVariables {
		out[v] = bits[i]
	}
	return out, nil
}

// EncodeInputs re-encodes a name -> bit map, ordered by InputVariables(),
// into an input position (spec.md §4.4's get_inputs(u) for map u).
func (b *BCN) EncodeInputs(env map[string]int) (int, error) {
	if b.m == 0 {
		return 1, nil
	}
	bits := make([]int, b.m)
	for i, v := range b.inputVariables {
		bit, ok := env[v]
		if !ok {
			return 0, fmt.Errorf("smallbcn: input %q missing from assignment", v)
		}
		bits[i] = bit
	}
	vec, err := vector.FromStates(bits)
	if err != nil {
		return 0, err
	}
	return vec.Pos, nil
}

// SetStatesI decodes s into the scratch named-state cache (spec.md §4.4's
// set_states_i), used only during LargeBCN stitching so predecessor blocks
// can report their decoded state to dependents.
func (b *BCN) SetStatesI(s int) error {
	states, err := b.DecodeState(s)
	if err != nil {
		return err
	}
	b.scratch = states
	return nil
}

// States returns the current scratch named-state cache.
func (b *BCN) States() map[string]int {
	out := make(map[string]int, len(b.scratch))
	for k, v := range b.scratch {
		out[k] = v
	}
	return out
}

// Clone returns a BCN sharing this one's immutable construction (ASSR
// table, variables, tokens) but with its own independent scratch cache.
// LargeBCN's parallel leaf-search workers each take a Clone so that
// SetStatesI in one goroutine never clobbers another's scratch (spec.md
// §5: "each worker MUST own its own decoded-state scratch").
func (b *BCN) Clone() *BCN {
	clone := *b
	clone.scratch = make(map[string]int, len(b.scratch))
	for k, v := range b.scratch {
		clone.scratch[k] = v
	}
	return &clone
}
