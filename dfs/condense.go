package dfs

import (
	"sort"
	"strconv"

	"github.com/lvlath-bcn/bcn/core"
)

// Condensation is the DAG over strongly-connected-component indices that
// LargeBCN's partition step (spec.md §4.6) drives its two-level search
// from: which blocks have no predecessors (A, searched independently) and
// which do (B, stitched in topological order against pred_list).
type Condensation struct {
	// Graph is the condensation DAG; vertex IDs are block indices rendered
	// as decimal strings ("0", "1", ...).
	Graph *core.Graph

	// Order is the topological order of block indices.
	Order []int

	// A holds the indices of blocks with no predecessor (leaves).
	A []int

	// B holds the indices of blocks with >=1 predecessor, in topological order.
	B []int

	// PredList maps each block in B to its predecessor block indices, in
	// ascending order.
	PredList map[int][]int
}

// Condense builds the condensation graph over the strongly connected
// components sccs of dependency graph g: an edge (i -> j) exists iff some
// cross-component edge in g runs from a variable in sccs[i] to one in
// sccs[j], i != j. Parallel cross-component edges collapse to one
// condensation edge (core.Graph.AddEdge is idempotent per (from,to) pair).
func Condense(g *core.Graph, sccs [][]string) (*Condensation, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	blockOf := make(map[string]int, len(g.Vertices()))
	for idx, scc := range sccs {
		for _, v := range scc {
			blockOf[v] = idx
		}
	}

	cg := core.NewGraph()
	for i := range sccs {
		if err := cg.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		fromBlock, toBlock := blockOf[e.From], blockOf[e.To]
		if fromBlock == toBlock {
			continue
		}
		if _, err := cg.AddEdge(strconv.Itoa(fromBlock), strconv.Itoa(toBlock)); err != nil {
			return nil, err
		}
	}

	orderStrs, err := TopologicalSort(cg)
	if err != nil {
		return nil, err
	}
	order := make([]int, len(orderStrs))
	for i, s := range orderStrs {
		order[i], _ = strconv.Atoi(s)
	}

	predList := make(map[int][]int)
	for _, e := range cg.Edges() {
		from, _ := strconv.Atoi(e.From)
		to, _ := strconv.Atoi(e.To)
		predList[to] = append(predList[to], from)
	}
	for k := range predList {
		sort.Ints(predList[k])
	}

	var a, b []int
	for _, idx := range order {
		if len(predList[idx]) == 0 {
			a = append(a, idx)
		} else {
			b = append(b, idx)
		}
	}

	return &Condensation{
		Graph:    cg,
		Order:    order,
		A:        a,
		B:        b,
		PredList: predList,
	}, nil
}
