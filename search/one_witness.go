package search

import "fmt"

// oneWitnessItem is a queue entry for ControlOneWitness's visited-set walk.
type oneWitnessItem struct {
	state  int
	states []int
	inputs [][]int
}

// ControlOneWitness runs the visited-set BFS variant (spec.md §4.5,
// §9 Design Notes): it prunes revisited states and stops as soon as any
// path reaches dest, returning that single witness and its length T. One
// child is enqueued per distinct next state, carrying the full set of
// input positions one_step_states groups onto that transition. It
// terminates on its own once the reachable set is exhausted — there is no
// horizon bound to supply — and fails with ErrUnreachable if dest was never
// reached.
func ControlOneWitness(start, dest int, succ Successor, opts ...Option) (int, Witness, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, Witness{}, err
	}
	if succ == nil {
		return 0, Witness{}, fmt.Errorf("%w: nil successor function", ErrOptionViolation)
	}

	ctx, cancel := deadline(o)
	defer cancel()

	if start == dest {
		return 0, Witness{StatePath: []int{start}}, nil
	}

	visited := map[int]bool{start: true}
	queue := []oneWitnessItem{{state: start, states: []int{start}}}

	for len(queue) > 0 {
		if err := checkCancel(ctx); err != nil {
			return 0, Witness{}, err
		}

		item := queue[0]
		queue = queue[1:]

		next := succ(item.state)
		for _, nextState := range sortedKeys(next) {
			if visited[nextState] {
				continue
			}
			visited[nextState] = true

			states := append(append([]int(nil), item.states...), nextState)
			inputs := append(append([][]int(nil), item.inputs...), next[nextState])

			if nextState == dest {
				return len(inputs), Witness{StatePath: states, InputPath: inputs}, nil
			}
			queue = append(queue, oneWitnessItem{state: nextState, states: states, inputs: inputs})
		}
	}

	return 0, Witness{}, ErrUnreachable
}
