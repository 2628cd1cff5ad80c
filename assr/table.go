// Package assr implements the Algebraic State-Space Representation: a
// dense transition table mapping (state-position, input-position) to the
// resulting next-state-position, under the Kronecker encoding of
// vector.LogicalVector.
//
// Table stores its N·M entries in a single flat slice (the same row-major,
// cache-friendly layout as the teacher's matrix.Dense), specialized to
// unsigned state-position indices rather than float64 cells.
package assr

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates N or M is non-positive.
var ErrInvalidDimensions = errors.New("assr: N and M must be > 0")

// ErrIndexOutOfBounds indicates a state or input position is outside its
// valid range.
var ErrIndexOutOfBounds = errors.New("assr: index out of bounds")

// Table is the ASSR: a total function from (state pos s ∈ [1,N], input pos
// u ∈ [1,M]) to next-state pos ∈ [1,N].
//
// Indexing convention: for state position s and input position u, the
// next-state position is Data[(u-1)*N + (s-1)].
type Table struct {
	N, M int
	Data []uint32
}

// New allocates a zeroed N·M table. Entries must be populated via Set
// before the table is queried; New itself performs no enumeration.
func New(n, m int) (*Table, error) {
	if n <= 0 || m <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Table{N: n, M: m, Data: make([]uint32, n*m)}, nil
}

func (t *Table) indexOf(s, u int) (int, error) {
	if s < 1 || s > t.N {
		return 0, fmt.Errorf("%w: state position %d not in [1,%d]", ErrIndexOutOfBounds, s, t.N)
	}
	if u < 1 || u > t.M {
		return 0, fmt.Errorf("%w: input position %d not in [1,%d]", ErrIndexOutOfBounds, u, t.M)
	}
	return (u-1)*t.N + (s - 1), nil
}

// Set records that from state position s under input position u, the
// network moves to state position next.
func (t *Table) Set(s, u, next int) error {
	idx, err := t.indexOf(s, u)
	if err != nil {
		return err
	}
	t.Data[idx] = uint32(next)
	return nil
}

// At returns the next-state position for (s, u).
func (t *Table) At(s, u int) (int, error) {
	idx, err := t.indexOf(s, u)
	if err != nil {
		return 0, err
	}
	return int(t.Data[idx]), nil
}

// Next is the unchecked variant of At used by hot-path callers (SmallBCN's
// next_state/one_step_states) that have already validated s and u against
// N and M and do not want the bounds-check overhead or error-handling
// ceremony per query.
func (t *Table) Next(s, u int) int {
	return int(t.Data[(u-1)*t.N+(s-1)])
}
