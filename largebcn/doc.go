// Package largebcn implements LargeBCN (spec.md §3, §4.6–§4.7): a
// multi-block Boolean Control Network. It partitions the variable
// dependency graph into strongly connected components, orders the
// resulting blocks into leaves and dependents via the condensation DAG,
// and solves the optimal time-control problem by running a level-
// synchronized search over every leaf block and stitching dependent
// blocks against their predecessors' chosen trajectories, in increasing
// common horizon T.
package largebcn
