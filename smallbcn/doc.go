// Package smallbcn implements SmallBCN (spec.md §3, §4.3–§4.5): a
// single-block Boolean Control Network. It discovers state and input
// variables from an ordered expression dictionary, builds the
// Algebraic State-Space Representation table by exhaustive truth-table
// enumeration, answers transition queries, and solves the single-block
// optimal time-control problem by driving package search over the table.
package smallbcn
