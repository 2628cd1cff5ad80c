// Package dfs provides depth-first-search-based analyses of a core.Graph:
// topological sort, strongly-connected-component decomposition (Tarjan),
// and the condensation graph over those components — the machinery
// LargeBCN's partition step (spec.md §4.6) needs to turn a variable
// dependency graph into topologically ordered blocks.
package dfs

import "errors"

// vertexState tracks DFS visitation status during topological sort.
const (
	white = iota // not yet visited
	gray         // on the current recursion stack
	black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to any
	// function in this package.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort when the graph
	// contains a cycle (it is not a DAG).
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
