package dfs

import "github.com/lvlath-bcn/bcn/core"

// topoSorter encapsulates state for a topological-sort traversal.
type topoSorter struct {
	graph *core.Graph
	state map[string]int
	order []string
}

// TopologicalSort computes a linear ordering of g's vertices such that for
// every edge u -> v, u appears before v. Returns ErrGraphNil for a nil
// graph and ErrCycleDetected if g is not a DAG.
//
// Complexity: O(V+E) time, O(V) extra memory (recursion stack + state map).
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == white {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(id string) error {
	if t.state[id] == gray {
		return ErrCycleDetected
	}
	if t.state[id] == black {
		return nil
	}
	t.state[id] = gray

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range neighbors {
		if e.To == id {
			continue // self-edge: not a dependency on another vertex
		}
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
