// Package search implements the level-synchronized and visited-set
// breadth-first search variants that SmallBCN and LargeBCN drive their
// optimal time-control queries from. Unlike the teacher's bfs package,
// which walks a core.Graph of named vertices, search walks an abstract
// integer state space: callers supply a Successor closing over their own
// ASSR table (or block of tables) instead of a graph.
package search
