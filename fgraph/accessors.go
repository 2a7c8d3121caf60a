// File: accessors.go
// Role: read-only lookups over a graph's schedule — by-id variable and
//       factor access, grounded on
//       original_source/solvers/cpp/FactorGraph.cpp's
//       GetVariable/GetFunction helpers used throughout DimpleManager,
//       plus the schedule slices themselves for callers (the registry
//       layer) that need to enumerate a graph's contents.
package fgraph

import "github.com/katalvlaran/factorbp/core"

// Variables returns the frozen variable schedule (argVars ++ ownedVars
// ++ nestedVars). Freezes the graph first if needed. The returned
// slice is owned by the graph; callers must not mutate it.
func (g *FactorGraph) Variables() []*core.Variable {
	g.Freeze()
	return g.allVars
}

// Factors returns the frozen factor schedule (ownedFuncs ++
// nestedFuncs). Freezes the graph first if needed. The returned slice
// is owned by the graph; callers must not mutate it.
func (g *FactorGraph) Factors() []*core.Factor {
	g.Freeze()
	return g.allFuncs
}

// Variable returns the variable at schedule position id, mirroring the
// reference implementation's dense-index variable lookup. Freezes the
// graph first if needed.
func (g *FactorGraph) Variable(id int) (*core.Variable, bool) {
	g.Freeze()
	if id < 0 || id >= len(g.allVars) {
		return nil, false
	}
	return g.allVars[id], true
}

// Factor returns the factor at schedule position id. Freezes the graph
// first if needed.
func (g *FactorGraph) Factor(id int) (*core.Factor, bool) {
	g.Freeze()
	if id < 0 || id >= len(g.allFuncs) {
		return nil, false
	}
	return g.allFuncs[id], true
}

// ConnectedVariables returns the variables incident to factor f, in the
// factor's own port order. f must belong to this graph (the reference
// implementation does not check this cheaply either; callers are
// expected to pass back a *core.Factor obtained from this same graph).
func (g *FactorGraph) ConnectedVariables(f *core.Factor) []*core.Variable {
	return f.Vars()
}

// IndexOf returns v's position in this graph's frozen variable
// schedule (the id a caller must use with Variable to get v back), or
// false if v does not belong to this graph. Freezes the graph first if
// needed.
//
// A Variable's own ID (core.Variable.ID) is just a caller-assigned
// label from whatever allocated it and is not in general equal to its
// schedule position here; callers translating a *core.Variable back
// into a schedule-relative reference (e.g. package registry's VarRef)
// must go through IndexOf rather than ID.
func (g *FactorGraph) IndexOf(v *core.Variable) (int, bool) {
	g.Freeze()
	for i, candidate := range g.allVars {
		if candidate == v {
			return i, true
		}
	}
	return 0, false
}
