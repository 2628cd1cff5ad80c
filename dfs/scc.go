package dfs

import "github.com/lvlath-bcn/bcn/core"

// tarjan holds the mutable state of Tarjan's strongly-connected-components
// algorithm over a core.Graph.
type tarjan struct {
	graph   *core.Graph
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	next    int
	sccs    [][]string
}

// SCC partitions g's vertices into strongly connected components using
// Tarjan's algorithm. Each component is a []string of variable names in
// the order Tarjan's algorithm popped them off its stack (the component's
// root vertex comes last). Components themselves are returned in completion
// order, which — because core.Graph.Vertices and core.Graph.Neighbors both
// iterate in sorted order — is fully deterministic for a given graph.
//
// A single vertex with no self-edge is its own trivial one-element SCC.
//
// Complexity: O(V+E) time, O(V) extra memory.
func SCC(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	t := &tarjan{
		graph:   g,
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}
	for _, v := range g.Vertices() {
		if _, visited := t.index[v]; !visited {
			if err := t.strongConnect(v); err != nil {
				return nil, err
			}
		}
	}

	return t.sccs, nil
}

func (t *tarjan) strongConnect(v string) error {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	edges, err := t.graph.Neighbors(v)
	if err != nil {
		return err
	}
	for _, e := range edges {
		w := e.To
		if w == v {
			continue // self-edge never forces a merge beyond the vertex itself
		}
		if _, visited := t.index[w]; !visited {
			if err := t.strongConnect(w); err != nil {
				return err
			}
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var component []string
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			component = append(component, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, component)
	}

	return nil
}
