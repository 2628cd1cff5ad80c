package smallbcn

import "fmt"

// String renders a compact debug summary, mirroring the reference
// implementation's __str__ (variables, inputs, and current scratch
// states). Not part of the control-finding contract; useful for test
// failure output.
func (b *BCN) String() string {
	return fmt.Sprintf("{variables: %v, inputs: %v, states: %v}", b.variables, b.inputVariables, b.States())
}

// GoString mirrors the reference implementation's __repr__, which is
// simply str(self); %#v formatting gets the same rendering as %v/%s.
func (b *BCN) GoString() string {
	return b.String()
}
