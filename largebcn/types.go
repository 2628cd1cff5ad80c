package largebcn

import (
	"context"
	"errors"
	"fmt"

	"github.com/lvlath-bcn/bcn/dfs"
	"github.com/lvlath-bcn/bcn/smallbcn"
)

// Sentinel errors for LargeBCN construction and control queries.
var (
	// ErrDuplicateVariable indicates the same state-variable name appears
	// more than once in an expression dictionary.
	ErrDuplicateVariable = errors.New("largebcn: duplicate state variable")

	// ErrInvalidInitialState indicates an init/dest bit-list has the wrong
	// length or contains a value outside {0,1}.
	ErrInvalidInitialState = errors.New("largebcn: invalid initial or destination state")

	// ErrInconsistentPartition indicates an interior input of some block
	// is not a state variable of any block strictly preceding it in
	// topological order (spec.md §4.6's invariant) -- a malformed
	// dependency graph or a bug in partitioning.
	ErrInconsistentPartition = errors.New("largebcn: interior input not supplied by a preceding block")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("largebcn: invalid option supplied")
)

// VarExpr pairs a state-variable name with its defining boolean expression,
// reused verbatim from package smallbcn to keep the ordered-dictionary
// shape identical across both network sizes.
type VarExpr = smallbcn.VarExpr

// BCN is a multi-block Boolean Control Network: the global dependency
// graph decomposed into strongly-connected-component blocks, ordered into
// leaves (no predecessor) and dependents (>=1 predecessor), each block
// itself a smallbcn.BCN over its own restricted variable set.
type BCN struct {
	variables      []string
	inputVariables []string
	n, m           int
	N, M           int

	blocks       []*smallbcn.BCN
	condensation *dfs.Condensation

	// interiorInputs[k] / exteriorInputs[k] classify blocks[k]'s discovered
	// input variables: interior names are state variables of some other
	// block (supplied by a predecessor during stitching); exterior names
	// are true external network inputs.
	interiorInputs map[int][]string
	exteriorInputs map[int][]string

	// blockOfVariable maps a global state-variable name to the block
	// index that owns it.
	blockOfVariable map[string]int
}

// Variables returns the ordered global state-variable names.
func (b *BCN) Variables() []string { return append([]string(nil), b.variables...) }

// InputVariables returns the ordered global (true external) input-variable
// names.
func (b *BCN) InputVariables() []string { return append([]string(nil), b.inputVariables...) }

// N is 2^n, the size of the global state-position space.
func (b *BCN) N() int { return b.N }

// Blocks returns the per-SCC SmallBCN instances, indexed by block index
// (the same indices used by A, B and PredList).
func (b *BCN) Blocks() []*smallbcn.BCN { return b.blocks }

// A returns the leaf block indices (no predecessor), in topological order.
func (b *BCN) A() []int { return append([]int(nil), b.condensation.A...) }

// B returns the dependent block indices (>=1 predecessor), in topological
// order.
func (b *BCN) B() []int { return append([]int(nil), b.condensation.B...) }

// PredList returns, for each dependent block k, its predecessor block
// indices in ascending order.
func (b *BCN) PredList() map[int][]int { return b.condensation.PredList }

// InteriorInputs returns block k's input names that are state variables of
// some other block.
func (b *BCN) InteriorInputs(k int) []string { return append([]string(nil), b.interiorInputs[k]...) }

// ExteriorInputs returns block k's input names that are true external
// network inputs.
func (b *BCN) ExteriorInputs(k int) []string { return append([]string(nil), b.exteriorInputs[k]...) }

// Option configures BCN construction and control search via functional
// arguments.
type Option func(*options)

type options struct {
	tMax               int
	hasTMax            bool
	ctx                context.Context
	parallelLeafSearch bool
	err                error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithTMax bounds the common horizon the stitching search explores.
// Defaults to N (spec.md §4.7's horizon bound, same rationale as
// smallbcn's default: no shortest path in a graph of N nodes exceeds N-1
// edges).
func WithTMax(t int) Option {
	return func(o *options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: TMax cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.tMax = t
		o.hasTMax = true
	}
}

// WithContext sets a context for cancellation during control search.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithParallelLeafSearch enables searching independent leaf blocks
// concurrently at each horizon (spec.md §5: leaves MAY be searched in
// parallel). Default false: serial, deterministic by construction rather
// than by a stable-reduction contract. Parallel mode still reproduces the
// identical serial result (spec.md §5's requirement) because each leaf's
// witnesses are written into a pre-sized, index-addressed slice rather
// than accumulated through map iteration order.
func WithParallelLeafSearch(enabled bool) Option {
	return func(o *options) {
		o.parallelLeafSearch = enabled
	}
}

// BlockTrajectory is one block's concrete (state trajectory, input
// trajectory) pair within a stitched solution: StatePath has length T+1,
// InputPath has length T and holds one specific input position per step
// (not the whole set a leaf witness groups together).
type BlockTrajectory struct {
	StatePath []int
	InputPath []int
}

// Result is the outcome of Control: the minimal common horizon T* and,
// per block index, its stitched trajectory.
type Result struct {
	T      int
	Blocks map[int]BlockTrajectory
}

func resolveOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return options{}, o.err
	}
	return o, nil
}
