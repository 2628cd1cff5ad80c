// Package core is the dependency-graph substrate LargeBCN's partition step
// (spec.md §4.6) builds and walks: one vertex per state variable, one edge
// y -> x whenever state variable y appears in the expression defining x.
package core
