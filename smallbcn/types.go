package smallbcn

import (
	"context"
	"errors"
	"fmt"

	"github.com/lvlath-bcn/bcn/assr"
	"github.com/lvlath-bcn/bcn/token"
)

// Sentinel errors for BCN construction and control queries.
var (
	// ErrDuplicateVariable indicates the same state-variable name appears
	// more than once in an expression dictionary.
	ErrDuplicateVariable = errors.New("smallbcn: duplicate state variable")

	// ErrInvalidInitialState indicates an init/dest bit-list has the wrong
	// length or contains a value outside {0,1}.
	ErrInvalidInitialState = errors.New("smallbcn: invalid initial or destination state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("smallbcn: invalid option supplied")
)

// VarExpr pairs a state-variable name with its defining boolean expression.
// A slice of VarExpr, rather than a map, preserves the insertion order that
// spec.md §3 requires: "variables" is the ordered sequence of Var names as
// given, and that order is observable downstream.
type VarExpr struct {
	Var  string
	Expr string
}

// BCN is a single-block Boolean Control Network: a fixed set of state
// variables and input variables, their defining token streams, and the
// dense Algebraic State-Space Representation table built from them.
//
// All exported fields populated during construction are immutable for the
// lifetime of the value; scratch is the one piece of mutable state (spec.md
// §3's "transient current-state pointer"), used to decode a state position
// into a named bit map during LargeBCN stitching.
type BCN struct {
	variables      []string
	inputVariables []string
	n, m           int
	N, M           int
	tokens         map[string][]token.Token
	table          *assr.Table

	scratch map[string]int
}

// Variables returns the ordered state-variable names.
func (b *BCN) Variables() []string { return append([]string(nil), b.variables...) }

// InputVariables returns the ordered input-variable names, in first-
// occurrence order across the variables' expressions.
func (b *BCN) InputVariables() []string { return append([]string(nil), b.inputVariables...) }

// N is 2^n, the size of the state-position space.
func (b *BCN) N() int { return b.N }

// M is 2^m, the size of the input-position space (1 when there are no
// input variables).
func (b *BCN) M() int { return b.M }

// Option configures BCN construction via functional arguments.
type Option func(*options)

type options struct {
	initStates []int
	hasInit    bool
	tMax       int
	hasTMax    bool
	ctx        context.Context
	err        error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithInitStates sets the construction-time initial state (spec.md §4.3's
// init_states): a bit-list in variables order. If omitted, the BCN starts
// with every variable at 0, matching the reference constructor's default.
func WithInitStates(bits []int) Option {
	return func(o *options) {
		o.initStates = append([]int(nil), bits...)
		o.hasInit = true
	}
}

// WithTMax bounds the horizon explored by the level-synchronized control
// search. Defaults to N (spec.md §4.5: "no shortest path in a graph of N
// nodes exceeds N-1 edges").
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
