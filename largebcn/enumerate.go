package largebcn

import (
	"sort"

	"github.com/lvlath-bcn/bcn/search"
)

// leafCombEnumerator is the restartable, stateful generator the stitching
// phase drives (spec.md §4.7, §9 Design Notes' "enumerator contracts"): it
// walks the Cartesian product of (a) which witness is chosen for each leaf
// block and (b) which single input is chosen, per step, from that
// witness's input set. Grounded on the reference implementation's
// iterate(): the outer product over res.values() picks one witness per
// leaf, the inner nested product over each chosen witness's per-step sets
// picks concrete inputs.
//
// Combinations are materialized eagerly at construction (deterministic,
// small per-T candidate counts for the block sizes this design targets)
// rather than streamed lazily; Next returns immutable snapshots so a
// caller can retain one without risking aliasing into enumerator-owned
// scratch.
type leafCombEnumerator struct {
	combs []map[int]BlockTrajectory
	pos   int
}

// newLeafCombEnumerator builds the enumerator over leaves and witnesses, a
// map from leaf block index to its witnesses at the current horizon.
// Leaves are enumerated in ascending block-index order, whatever order the
// caller lists them in.
func newLeafCombEnumerator(leaves []int, witnesses map[int][]search.Witness) *leafCombEnumerator {
	byIndex := append([]int(nil), leaves...)
	sort.Ints(byIndex)
	return &leafCombEnumerator{combs: generateCombs(byIndex, witnesses)}
}

// Next yields the next immutable snapshot, or (nil, false) once every
// combination has been produced.
func (e *leafCombEnumerator) Next() (map[int]BlockTrajectory, bool) {
	if e.pos >= len(e.combs) {
		return nil, false
	}
	c := e.combs[e.pos]
	e.pos++
	return c, true
}

// Reset restarts the enumerator at its first combination.
func (e *leafCombEnumerator) Reset() { e.pos = 0 }

// generateCombs materializes every combination in the deterministic order
// spec.md §4.7 mandates: leaves enumerated by block index, witnesses in
// BFS-discovery order, per-step input choices in ascending input-position
// order.
func generateCombs(leaves []int, witnesses map[int][]search.Witness) []map[int]BlockTrajectory {
	if len(leaves) == 0 {
		return []map[int]BlockTrajectory{{}}
	}

	head, rest := leaves[0], leaves[1:]
	restCombs := generateCombs(rest, witnesses)

	var out []map[int]BlockTrajectory
	for _, w := range witnesses[head] {
		for _, choice := range expandWitness(w) {
			for _, restComb := range restCombs {
				merged := make(map[int]BlockTrajectory, len(restComb)+1)
				for k, v := range restComb {
					merged[k] = v
				}
				merged[head] = choice
				out = append(out, merged)
			}
		}
	}
	return out
}

// expandWitness enumerates every concrete input path obtainable from a
// witness's per-step input sets, in lexicographic (ascending-first) order.
func expandWitness(w search.Witness) []BlockTrajectory {
	statePath := append([]int(nil), w.StatePath...)

	if len(w.InputPath) == 0 {
		return []BlockTrajectory{{StatePath: statePath, InputPath: []int{}}}
	}

	var rec func(step int, acc []int) [][]int
	rec = func(step int, acc []int) [][]int {
		if step == len(w.InputPath) {
			return [][]int{acc}
		}
		var out [][]int
		for _, in := range w.InputPath[step] {
			next := make([]int, len(acc)+1)
			copy(next, acc)
			next[len(acc)] = in
			out = append(out, rec(step+1, next)...)
		}
		return out
	}

	var choices []BlockTrajectory
	for _, inputs := range rec(0, nil) {
		choices = append(choices, BlockTrajectory{StatePath: statePath, InputPath: inputs})
	}
	return choices
}
