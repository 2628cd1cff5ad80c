package largebcn

import (
	"fmt"
	"sync"

	"github.com/lvlath-bcn/bcn/search"
	"github.com/lvlath-bcn/bcn/vector"
)

// Control solves the multi-block optimal time-control problem (spec.md
// §4.7): the smallest common horizon T* and, per block, a stitched
// trajectory from its projected init to its projected dest, such that
// every dependent block's interior inputs at each step match its
// predecessors' chosen state and input at that step.
func (b *BCN) Control(init, dest int, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	tMax := o.tMax
	if !o.hasTMax {
		tMax = b.N
	}

	inits, err := b.projectToBlocks(init)
	if err != nil {
		return Result{}, err
	}
	dests, err := b.projectToBlocks(dest)
	if err != nil {
		return Result{}, err
	}

	leaves := b.A()
	dependents := b.B()

	if init == dest {
		blocks := make(map[int]BlockTrajectory, len(b.blocks))
		for idx := range b.blocks {
			blocks[idx] = BlockTrajectory{StatePath: []int{inits[idx]}, InputPath: []int{}}
		}
		return Result{T: 0, Blocks: blocks}, nil
	}

	for T := 1; T <= tMax; T++ {
		leafWitnesses, err := b.leafWitnessesAt(T, inits, dests, leaves, o)
		if err != nil {
			return Result{}, err
		}
		if leafWitnesses == nil {
			continue // at least one leaf has no witness at this T
		}

		enumerator := newLeafCombEnumerator(leaves, leafWitnesses)
		for comb, ok := enumerator.Next(); ok; comb, ok = enumerator.Next() {
			result, ok := b.tryStitch(comb, dependents, inits, dests, T)
			if ok {
				return Result{T: T, Blocks: result}, nil
			}
		}
	}

	return Result{}, fmt.Errorf("largebcn: %w within TMax=%d", search.ErrUnreachable, tMax)
}

// leafWitnessesAt collects every leaf block's witnesses of exactly T steps
// from its projected init to its projected dest. It returns nil (no error)
// if any leaf has no witness at this horizon, signaling the caller to
// advance T, mirroring spec.md §4.7's "If any leaf has no such trajectory
// at horizon T, advance T and repeat."
func (b *BCN) leafWitnessesAt(T int, inits, dests map[int]int, leaves []int, o options) (map[int][]search.Witness, error) {
	results := make([][]search.Witness, len(leaves))
	errs := make([]error, len(leaves))

	searchLeaf := func(i int) {
		k := leaves[i]
		// Each worker gets its own Clone so a goroutine can never observe
		// another's decoded-state scratch (spec.md §5), even though
		// OneStepStates itself never touches it.
		block := b.blocks[k].Clone()
		ws, err := searchWitnessesAtHorizon(block, inits[k], dests[k], T, o)
		results[i] = ws
		errs[i] = err
	}

	if o.parallelLeafSearch {
		var wg sync.WaitGroup
		wg.Add(len(leaves))
		for i := range leaves {
			i := i
			go func() {
				defer wg.Done()
				searchLeaf(i)
			}()
		}
		wg.Wait()
	} else {
		for i := range leaves {
			searchLeaf(i)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[int][]search.Witness, len(leaves))
	for i, k := range leaves {
		if len(results[i]) == 0 {
			return nil, nil
		}
		out[k] = results[i]
	}
	return out, nil
}

// tryStitch reconstructs every dependent block's trajectory in topological
// order for one leaf combination, returning the full per-block result set
// on success. Leaf trajectories from comb seed the result directly.
func (b *BCN) tryStitch(comb map[int]BlockTrajectory, dependents []int, inits, dests map[int]int, T int) (map[int]BlockTrajectory, bool) {
	result := make(map[int]BlockTrajectory, len(comb)+len(dependents))
	for k, traj := range comb {
		result[k] = traj
	}

	for _, k := range dependents {
		traj, ok := b.reconstructBlock(k, result, inits[k], dests[k], T)
		if !ok {
			return nil, false
		}
		result[k] = traj
	}
	return result, true
}

// reconstructBlock implements spec.md §4.7's per-dependent-block state
// machine {searching, found, exhausted}: it enumerates every possible
// exterior-input sequence in lexicographic order and replays the block
// from initK, merging each predecessor's decoded state and chosen input at
// every step with the candidate exterior-input bits, until the replay ends
// at destK (found) or every sequence has been tried (exhausted).
func (b *BCN) reconstructBlock(k int, prior map[int]BlockTrajectory, initK, destK, T int) (BlockTrajectory, bool) {
	block := b.blocks[k]
	exteriorNames := b.exteriorInputs[k]
	ex := 1 << uint(len(exteriorNames))
	preds := b.PredList()[k]

	var exteriorBits [][]int
	if ex == 1 {
		exteriorBits = [][]int{nil}
	} else {
		var seqRec func(seq []int)
		seqRec = func(seq []int) {
			if len(seq) == T {
				bits := make([]int, 0, T*len(exteriorNames))
				for _, e := range seq {
					v, _ := vector.New(e, ex)
					bits = append(bits, v.ToList()...)
				}
				exteriorBits = append(exteriorBits, bits)
				return
			}
			for e := 1; e <= ex; e++ {
				seqRec(append(seq, e))
			}
		}
		seqRec(nil)
	}

	for _, flatBits := range exteriorBits {
		state := initK
		statePath := []int{state}
		inputPath := make([]int, 0, T)
		ok := true

		for t := 0; t < T; t++ {
			env := make(map[string]int)
			for _, pred := range preds {
				predTraj := prior[pred]
				predBlock := b.blocks[pred]
				predStateBits, err := predBlock.DecodeState(predTraj.StatePath[t])
				if err != nil {
					ok = false
					break
				}
				for name, bit := range predStateBits {
					env[name] = bit
				}
				predInputBits, err := predBlock.DecodeInputs(predTraj.InputPath[t])
				if err != nil {
					ok = false
					break
				}
				for name, bit := range predInputBits {
					env[name] = bit
				}
			}
			if !ok {
				break
			}
			for i, name := range exteriorNames {
				env[name] = flatBits[t*len(exteriorNames)+i]
			}

			u, err := block.EncodeInputs(env)
			if err != nil {
				ok = false
				break
			}
			next, err := block.NextState(state, u)
			if err != nil {
				ok = false
				break
			}
			statePath = append(statePath, next)
			inputPath = append(inputPath, u)
			state = next
		}

		if ok && state == destK {
			return BlockTrajectory{StatePath: statePath, InputPath: inputPath}, true
		}
	}

	return BlockTrajectory{}, false
}

// searchWitnessesAtHorizon adapts smallbcn's block-level successor
// function to package search's abstract Successor signature.
func searchWitnessesAtHorizon(block interface {
	OneStepStates(int) (map[int][]int, error)
}, init, dest, T int, o options) ([]search.Witness, error) {
	succ := func(s int) map[int][]int {
		res, err := block.OneStepStates(s)
		if err != nil {
			return map[int][]int{}
		}
		return res
	}
	return search.WitnessesAtHorizon(init, dest, succ, T, search.WithContext(o.ctx))
}
