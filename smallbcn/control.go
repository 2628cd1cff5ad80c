package smallbcn

import (
	"github.com/lvlath-bcn/bcn/search"
)

// successor closes over b.OneStepStates so package search can walk the
// block's ASSR table without knowing anything about BCN.
func (b *BCN) successor() search.Successor {
	return func(s int) map[int][]int {
		res, err := b.OneStepStates(s)
		if err != nil {
			// OneStepStates only fails on out-of-range s, which the search
			// walk never presents (every state it visits was itself a
			// valid ASSR position).
			return map[int][]int{}
		}
		return res
	}
}

// ControlOneWitness solves the single-block optimal time-control problem
// with the visited-set BFS variant (spec.md §4.5): a single witness
// (state trajectory, input trajectory) of minimal length T driving the
// network from init to dest. Fails with search.ErrUnreachable if dest is
// never reached.
func (b *BCN) ControlOneWitness(init, dest int, opts ...Option) (int, search.Witness, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, search.Witness{}, err
	}

	var searchOpts []search.Option
	searchOpts = append(searchOpts, search.WithContext(o.ctx))

	return search.ControlOneWitness(init, dest, b.successor(), searchOpts...)
}

// ControlAllWitnesses solves the single-block optimal time-control problem
// with the level-synchronized BFS variant (spec.md §4.5, §9 Design Notes):
// every witness of minimal length T. Bounded by TMax (default N, since no
// shortest path in a graph of N nodes exceeds N-1 edges).
func (b *BCN) ControlAllWitnesses(init, dest int, opts ...Option) (int, []search.Witness, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, nil, err
	}

	tMax := o.tMax
	if !o.hasTMax {
		tMax = b.N
	}

	searchOpts := []search.Option{
		search.WithContext(o.ctx),
		search.WithTMax(tMax),
	}

	return search.ControlAllWitnesses(init, dest, b.successor(), searchOpts...)
}
