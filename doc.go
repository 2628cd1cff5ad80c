// Package bcn (lvlath-bcn) solves the optimal time-control problem for
// Boolean Control Networks: given a network of boolean state variables,
// each defined by a boolean expression over the other state variables and
// a set of control inputs, find the minimal number of steps T* and a
// sequence of inputs driving the network from an initial state to a
// target state.
//
// What is lvlath-bcn?
//
//	A small, dependency-light toolkit built from five layers:
//
//	  • token/eval   — lexing and evaluating the boolean expressions that
//	                   define each state variable
//	  • vector/assr  — the LogicalVector one-hot encoding and the resulting
//	                   Algebraic State-Space Representation (ASSR) table
//	  • search       — the level-synchronized and visited-set breadth-first
//	                   search variants the control queries are built from
//	  • smallbcn     — single-block ASSR construction plus BFS-driven
//	                   optimal-time-control queries
//	  • largebcn     — strongly-connected-component decomposition of large
//	                   networks into blocks, synchronized per-block BFS,
//	                   and stitching block trajectories into one global
//	                   control sequence
//
// A network whose state variables all depend on one another, directly or
// through other state variables (a single strongly connected component),
// collapses, via largebcn's partition, into a single leaf block; its
// control query then finds the same T* as the equivalent smallbcn query,
// since a single-SCC partition is the degenerate case of the general
// algorithm.
//
//	go get github.com/lvlath-bcn/bcn
package bcn
