// File: freeze.go
// Role: Freeze — monotonic transition from topology-mutable to
//       schedulable, assembling the ordered all_vars/all_funcs lists.
package fgraph

// Freeze assembles this graph's schedule (allVars = argVars ++
// ownedVars ++ nestedVars; allFuncs = ownedFuncs ++ nestedFuncs) and
// marks the graph frozen. Idempotent: calling Freeze on an
// already-frozen graph is a no-op.
//
// After Freeze, CreateFactor/CreateTable/AddGraph fail with ErrFrozen;
// there is no way back to the unfrozen state.
func (g *FactorGraph) Freeze() {
	if g.isFrozen {
		return
	}

	g.allVars = append(g.allVars, g.argVars...)
	g.allVars = append(g.allVars, g.ownedVars...)
	g.allVars = append(g.allVars, g.nestedVars...)

	g.allFuncs = append(g.allFuncs, g.ownedFuncs...)
	g.allFuncs = append(g.allFuncs, g.nestedFuncs...)

	g.isFrozen = true
}
