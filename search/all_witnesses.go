package search

import "fmt"

// pathItem is a frontier entry for the level-synchronized walk: the
// trajectory accumulated so far to reach state.
type pathItem struct {
	state  int
	states []int
	inputs [][]int
}

// expandFrontier advances every item in frontier by one step: one child
// per distinct next state, each carrying the full input set the Successor
// groups onto that transition.
func expandFrontier(frontier []pathItem, succ Successor) []pathItem {
	var next []pathItem
	for _, item := range frontier {
		trans := succ(item.state)
		for _, nextState := range sortedKeys(trans) {
			states := append(append([]int(nil), item.states...), nextState)
			inputs := append(append([][]int(nil), item.inputs...), trans[nextState])
			next = append(next, pathItem{state: nextState, states: states, inputs: inputs})
		}
	}
	return next
}

func witnessesAt(frontier []pathItem, dest int) []Witness {
	var witnesses []Witness
	for _, item := range frontier {
		if item.state == dest {
			witnesses = append(witnesses, Witness{StatePath: item.states, InputPath: item.inputs})
		}
	}
	return witnesses
}

// ControlAllWitnesses runs the level-synchronized BFS variant (spec.md
// §4.5, §4.7, §9 Design Notes): at each integer horizon T it expands the
// entire frontier by one step, then collects every trajectory of exactly
// T steps ending at dest as a separate witness. It stops at the first T
// for which at least one witness exists. This variant is required
// wherever all witnesses at a horizon matter, not just one (LargeBCN's
// leaf search uses the finer-grained WitnessesAtHorizon below instead,
// since it must keep searching at larger T even after a smaller T
// produced witnesses that failed to stitch).
//
// TMax must be supplied via WithTMax and is mandatory: unlike
// ControlOneWitness, this walk has no horizon-free termination condition
// of its own (per spec.md §4.5, defaulting TMax to N is the caller's
// responsibility, since only the caller knows its state-space size).
func ControlAllWitnesses(start, dest int, succ Successor, opts ...Option) (int, []Witness, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}
	if succ == nil {
		return 0, nil, fmt.Errorf("%w: nil successor function", ErrOptionViolation)
	}
	if o.TMax <= 0 {
		return 0, nil, fmt.Errorf("%w: TMax must be positive for level-synchronized search", ErrOptionViolation)
	}

	ctx, cancel := deadline(o)
	defer cancel()

	if start == dest {
		return 0, []Witness{{StatePath: []int{start}}}, nil
	}

	frontier := []pathItem{{state: start, states: []int{start}}}

	for t := 1; t <= o.TMax; t++ {
		if err := checkCancel(ctx); err != nil {
			return 0, nil, err
		}

		frontier = expandFrontier(frontier, succ)
		if witnesses := witnessesAt(frontier, dest); len(witnesses) > 0 {
			return t, witnesses, nil
		}
	}

	return 0, nil, ErrUnreachable
}

// WitnessesAtHorizon expands the level-synchronized frontier to exactly T
// steps and returns every witness ending at dest at that precise horizon —
// possibly none, which is not an error (unlike ControlAllWitnesses, which
// treats "nothing yet" as "keep searching" and only fails once TMax is
// exhausted). LargeBCN's leaf search (spec.md §4.7) needs this finer
// primitive: a candidate horizon T can have leaf witnesses that all fail
// to stitch, in which case the caller re-queries at T+1 rather than ever
// treating T as a dead end.
func WitnessesAtHorizon(start, dest int, succ Successor, T int, opts ...Option) ([]Witness, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if succ == nil {
		return nil, fmt.Errorf("%w: nil successor function", ErrOptionViolation)
	}
	if T < 0 {
		return nil, fmt.Errorf("%w: horizon cannot be negative (%d)", ErrOptionViolation, T)
	}

	ctx, cancel := deadline(o)
	defer cancel()

	if T == 0 {
		if start == dest {
			return []Witness{{StatePath: []int{start}}}, nil
		}
		return nil, nil
	}

	frontier := []pathItem{{state: start, states: []int{start}}}
	for t := 1; t <= T; t++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		frontier = expandFrontier(frontier, succ)
	}

	return witnessesAt(frontier, dest), nil
}
