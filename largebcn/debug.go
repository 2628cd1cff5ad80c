package largebcn

import "fmt"

// String renders a compact debug summary mirroring smallbcn.BCN's own
// String() (and, transitively, the reference implementation's __str__):
// global variables and inputs, plus each block's own rendering in
// block-index order. Not part of the control-finding
// contract; useful for test failure output.
func (b *BCN) String() string {
	blocks := make([]string, len(b.blocks))
	for i, block := range b.blocks {
		blocks[i] = block.String()
	}
	return fmt.Sprintf("{variables: %v, inputs: %v, blocks: %v}", b.variables, b.inputVariables, blocks)
}

// GoString mirrors the reference implementation's __repr__, which is
// simply str(self); %#v formatting gets the same rendering as %v/%s.
func (b *BCN) GoString() string {
	return b.String()
}
