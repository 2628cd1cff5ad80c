package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrUnreachable is returned when dest could not be reached within the
	// search's horizon (visited-set: the reachable set is exhausted;
	// level-synchronized: TMax steps elapse with no witness).
	ErrUnreachable = errors.New("search: destination unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Successor reports, for a given state position, every state directly
// reachable from it together with the sorted input positions that realize
// each transition. It is the abstract equivalent of SmallBCN.one_step_states:
// callers close over their own ASSR table (or a block's restriction of it).
type Successor func(state int) map[int][]int

// Witness is one (state trajectory, input trajectory) pair: StatePath has
// length T+1 (StatePath[0] is the start, StatePath[T] is the destination).
// InputPath has length T; InputPath[i] is the full set of input positions
// that drive StatePath[i] to StatePath[i+1] (a Successor groups every input
// reaching the same next state together, so any one member of the set
// realizes the same transition — callers pick a representative, typically
// the smallest, when replaying the control).
type Witness struct {
	StatePath []int
	InputPath [][]int
}

// Option configures a search call via functional arguments. An invalid
// Option (e.g. a negative wall clock) is recorded internally and surfaced
// as ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds the parameters shared by ControlOneWitness and
// ControlAllWitnesses.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// WallClock, if > 0, bounds the search's real time in addition to Ctx.
	WallClock time.Duration

	// TMax bounds the horizon explored by ControlAllWitnesses. It is
	// required (> 0) for that variant; ControlOneWitness ignores it since
	// its visited-set termination is horizon-free.
	TMax int

	err error
}

// DefaultOptions returns an Options with sane defaults: Context.Background,
// no wall clock, and no horizon bound.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWallClock bounds the search's real time. A zero value disables the
// bound explicitly; a negative value is an invalid option.
func WithWallClock(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: wall clock cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.WallClock = d
	}
}

// WithTMax bounds the horizon explored by ControlAllWitnesses.
func WithTMax(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: TMax cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.TMax = t
	}
}

// resolve applies opts to DefaultOptions and reports the first invalid
// option encountered, if any.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// deadline derives an effective context bounded by both o.Ctx and
// o.WallClock, and a cancel func the caller must defer.
func deadline(o Options) (context.Context, context.CancelFunc) {
	if o.WallClock <= 0 {
		return o.Ctx, func() {}
	}
	return context.WithTimeout(o.Ctx, o.WallClock)
}

// checkCancel returns ctx.Err() if ctx has been cancelled or its deadline
// has passed, nil otherwise.
func checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// sortedKeys returns the keys of m (next-state positions) in ascending
// order, so expansion order is deterministic regardless of map iteration.
func sortedKeys(m map[int][]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
