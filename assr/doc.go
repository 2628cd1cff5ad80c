// Package assr provides the dense ASSR transition table used by SmallBCN.
//
// Table is total by construction once fully populated: every (s,u) pair in
// [1,N]×[1,M] has a recorded next-state position.
package assr
