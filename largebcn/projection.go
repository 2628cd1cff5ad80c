package largebcn

import (
	"fmt"

	"github.com/lvlath-bcn/bcn/vector"
)

// EncodeState encodes a bit-list in the global variables order into a
// state position in [1, N].
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

// projectToBlocks decodes a global state position and re-encodes it per
// block, in that block's own variable order (spec.md §4.7's "Project"
// step): decode the global bit-tuple, extract the bits for each block's
// variables in block-variable order, re-encode.
func (b *BCN) projectToBlocks(globalPos int) (map[int]int, error) {
	v, err := vector.New(globalPos, b.N)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitialState, err)
	}
	bits := v.ToList()

	globalBits := make(map[string]int, b.n)
	for i, name := range b.variables {
		globalBits[name] = bits[i]
	}

	projected := make(map[int]int, len(b.blocks))
	for idx, block := range b.blocks {
		blockVars := block.Variables()
		blockBits := make([]int, len(blockVars))
		for i, name := range blockVars {
			blockBits[i] = globalBits[name]
		}
		pos, err := block.EncodeState(blockBits)
		if err != nil {
			return nil, err
		}
		projected[idx] = pos
	}
	return projected, nil
}
