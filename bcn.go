package bcn

import (
	"github.com/lvlath-bcn/bcn/largebcn"
	"github.com/lvlath-bcn/bcn/smallbcn"
)

// VarExpr pairs a state-variable name with its defining boolean expression.
// Both NewSmall and NewLarge take a slice of these, in the order the
// variables should be discovered.
type VarExpr = smallbcn.VarExpr

// NewSmall builds a single-block Boolean Control Network and its ASSR
// table, for networks small enough that one dense N*M transition table is
// practical. See package smallbcn for the full construction and query API.
func NewSmall(exprs []VarExpr, opts ...smallbcn.Option) (*smallbcn.BCN, error) {
	return smallbcn.New(exprs, opts...)
}

// NewLarge builds a Boolean Control Network decomposed into
// strongly-connected-component blocks, each with its own ASSR table, for
// networks too large for a single dense transition table. See package
// largebcn for the full partition and stitched-control API.
func NewLarge(exprs []VarExpr) (*largebcn.BCN, error) {
	return largebcn.New(exprs)
}
