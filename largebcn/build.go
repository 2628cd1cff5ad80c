package largebcn

import (
	"fmt"
	"sort"

	"github.com/lvlath-bcn/bcn/core"
	"github.com/lvlath-bcn/bcn/dfs"
	"github.com/lvlath-bcn/bcn/smallbcn"
	"github.com/lvlath-bcn/bcn/token"
)

// New builds a BCN from an ordered expression dictionary and partitions it
// into blocks (spec.md §4.6):
//
//  1. Discover global variables/input_variables exactly as smallbcn.New
//     does, across the whole network.
//  2. Build the directed dependency graph: an edge y -> x whenever state
//     variable y appears in x's defining expression (self-edges allowed).
//  3. Compute strongly connected components and condense them into a DAG
//     over block indices; topologically sort it into leaves A and
//     dependents B with predecessor lists.
//  4. Construct one smallbcn.BCN per block, restricted to that block's
//     variables (in global variable order), and classify each block's
//     discovered inputs into interior (owned by another block) vs
//     exterior (true external input).
func New(exprs []VarExpr) (*BCN, error) {
	variables := make([]string, 0, len(exprs))
	exprOf := make(map[string]string, len(exprs))
	seen := make(map[string]bool, len(exprs))
	for _, ve := range exprs {
		if seen[ve.Var] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, ve.Var)
		}
		seen[ve.Var] = true
		variables = append(variables, ve.Var)
		exprOf[ve.Var] = ve.Expr
	}

	tokensOf := make(map[string][]token.Token, len(exprs))
	var inputVariables []string
	inputSeen := make(map[string]bool)
	for _, ve := range exprs {
		toks, err := token.Tokenize(ve.Expr)
		if err != nil {
			return nil, fmt.Errorf("largebcn: tokenizing %q: %w", ve.Var, err)
		}
		tokensOf[ve.Var] = toks
		for _, t := range toks {
			if t.Kind != token.VARIABLE {
				continue
			}
			if seen[t.Lexeme] || inputSeen[t.Lexeme] {
				continue
			}
			inputSeen[t.Lexeme] = true
			inputVariables = append(inputVariables, t.Lexeme)
		}
	}

	g := core.NewGraph()
	for _, v := range variables {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, v := range variables {
		for _, t := range tokensOf[v] {
			if t.Kind != token.VARIABLE || !seen[t.Lexeme] {
				continue
			}
			if _, err := g.AddEdge(t.Lexeme, v); err != nil {
				return nil, err
			}
		}
	}

	sccs, err := dfs.SCC(g)
	if err != nil {
		return nil, err
	}
	cond, err := dfs.Condense(g, sccs)
	if err != nil {
		return nil, err
	}

	globalPos := make(map[string]int, len(variables))
	for i, v := range variables {
		globalPos[v] = i
	}

	blocks := make([]*smallbcn.BCN, len(sccs))
	blockOfVariable := make(map[string]int, len(variables))
	for idx, scc := range sccs {
		blockVars := append([]string(nil), scc...)
		sort.Slice(blockVars, func(i, j int) bool { return globalPos[blockVars[i]] < globalPos[blockVars[j]] })

		blockExprs := make([]smallbcn.VarExpr, len(blockVars))
		for i, v := range blockVars {
			blockExprs[i] = smallbcn.VarExpr{Var: v, Expr: exprOf[v]}
			blockOfVariable[v] = idx
		}

		block, err := smallbcn.New(blockExprs)
		if err != nil {
			return nil, fmt.Errorf("largebcn: building block %d: %w", idx, err)
		}
		blocks[idx] = block
	}

	globalInputSet := make(map[string]bool, len(inputVariables))
	for _, v := range inputVariables {
		globalInputSet[v] = true
	}

	interiorInputs := make(map[int][]string, len(blocks))
	exteriorInputs := make(map[int][]string, len(blocks))
	for idx, block := range blocks {
		for _, name := range block.InputVariables() {
			if globalInputSet[name] {
				exteriorInputs[idx] = append(exteriorInputs[idx], name)
				continue
			}
			interiorInputs[idx] = append(interiorInputs[idx], name)
		}
	}

	order := make(map[int]int, len(cond.Order))
	for pos, idx := range cond.Order {
		order[idx] = pos
	}
	for _, k := range cond.B {
		for _, name := range interiorInputs[k] {
			ownerBlock, ok := blockOfVariable[name]
			if !ok {
				return nil, fmt.Errorf("%w: interior input %q of block %d has no owning block", ErrInconsistentPartition, name, k)
			}
			if order[ownerBlock] >= order[k] {
				return nil, fmt.Errorf("%w: block %d's interior input %q is owned by block %d, which does not precede it", ErrInconsistentPartition, k, name, ownerBlock)
			}
		}
	}

	return &BCN{
		variables:       variables,
		inputVariables:  inputVariables,
		n:               len(variables),
		m:               len(inputVariables),
		N:               1 << uint(len(variables)),
		M:               1 << uint(len(inputVariables)),
		blocks:          blocks,
		condensation:    cond,
		interiorInputs:  interiorInputs,
		exteriorInputs:  exteriorInputs,
		blockOfVariable: blockOfVariable,
	}, nil
}
