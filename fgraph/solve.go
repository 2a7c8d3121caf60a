// File: solve.go
// Role: SetNumIterations, Initialize, Iterate, Solve — the message-
//       passing driver.
//
// Grounded on original_source/solvers/cpp/FactorGraph.cpp
// (SetNumIterations, Initialize, Iterate, Solve): synchronous-by-class
// scheduling (every variable, then every factor, per round) is
// reproduced exactly, including the Gauss-Seidel-style observable side
// effect that a factor update within a round sees variable messages
// already updated earlier in that same round.
package fgraph

// SetNumIterations records the iteration count Solve will run. Unlike
// the registry-wide SetNumIterations exposed by package registry (which
// preserves the reference implementation's surprising
// apply-to-every-graph behavior), this method only affects this graph.
func (g *FactorGraph) SetNumIterations(n int) { g.numIterations = n }

// NumIterations returns the iteration count Solve will run.
func (g *FactorGraph) NumIterations() int { return g.numIterations }

// Initialize freezes the graph if needed, then resets every message
// buffer (on every variable and every factor, in frozen schedule order)
// to uniform. Priors are untouched.
func (g *FactorGraph) Initialize() {
	g.Freeze()

	for _, v := range g.allVars {
		v.Initialize()
	}
	for _, f := range g.allFuncs {
		f.Initialize()
	}
}

// Iterate freezes the graph if needed, then performs k rounds of
// synchronous-by-class updates: within each round, every variable in
// allVars (frozen order) updates first, then every factor in allFuncs
// (frozen order) updates. A factor update observes whatever variable
// messages were written earlier in the same round (this is
// intentional, see the file comment above).
func (g *FactorGraph) Iterate(k int) {
	g.Freeze()

	for round := 0; round < k; round++ {
		for _, v := range g.allVars {
			v.Update()
		}
		for _, f := range g.allFuncs {
			f.Update()
		}
	}
}

// Solve freezes the graph, initializes every message buffer, then runs
// NumIterations rounds via Iterate.
//
// Fails with ErrConfig if NumIterations <= 0.
func (g *FactorGraph) Solve() error {
	g.Freeze()
	g.Initialize()

	if g.numIterations <= 0 {
		return ErrConfig
	}

	g.Iterate(g.numIterations)

	return nil
}
