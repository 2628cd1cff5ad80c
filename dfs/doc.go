// Package dfs implements the graph analyses LargeBCN needs to turn a flat
// variable dependency graph into topologically ordered blocks:
// TopologicalSort, SCC (Tarjan), and Condense (the condensation DAG plus
// its A/B partition and predecessor lists).
package dfs
