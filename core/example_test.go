package core_test

import (
	"fmt"

	"github.com/katalvlaran/factorbp/core"
)

// Example demonstrates a single XOR factor a XOR b = c with evidence on
// a and b.
func Example() {
	a, _ := core.NewVariable(0, 2)
	b, _ := core.NewVariable(1, 2)
	c, _ := core.NewVariable(2, 2)
	_ = a.SetPriors([]float64{0.9, 0.1})
	_ = b.SetPriors([]float64{0.8, 0.2})

	tbl, _ := core.XorTable(3)
	f, _ := core.NewFactor(0, tbl, []*core.Variable{a, b, c})

	for i := 0; i < 10; i++ {
		a.Update()
		b.Update()
		c.Update()
		f.Update()
	}

	belief, _ := c.GetBeliefs()
	fmt.Printf("%.2f %.2f\n", belief[0], belief[1])
	// Output: 0.74 0.26
}
