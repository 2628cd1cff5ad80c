// Package vector implements the one-hot (position, dimension) encoding
// used throughout the Algebraic State-Space Representation to map between
// bit-tuples and integer indices into ASSR tables.
//
// Round-trip invariant: for any bit-list l of length k ≥ 1,
// FromStates(l) decoded via ToList() reproduces l exactly.
package vector
