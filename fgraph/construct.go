// File: construct.go
// Role: topology mutation — CreateTable, CreateFactor, AddGraph.
//
// Grounded on original_source/solvers/cpp/FactorGraph.cpp
// (createTable, NewTable/createTableFunc, AddGraph).
package fgraph

import (
	"fmt"

	"github.com/katalvlaran/factorbp/core"
)

// CreateTable stores rows/weights as a new CombinationTable on this
// graph and returns a dense id for later use with CreateFactor.
//
// Only a master graph may own tables; calling CreateTable on a
// non-master graph is a programmer error. Non-master graphs only ever
// arise as Instantiate's own internal clones, which already reference
// their source's tables by assignment rather than allocating their
// own — a caller building a graph of its own, even one meant only to
// be instantiated later, should always go through NewFactorGraph.
//
// Fails with ErrFrozen if the graph is already frozen, or wraps
// core.ErrShape if rows/weights are malformed.
func (g *FactorGraph) CreateTable(rows [][]int, weights []float64) (int, error) {
	if g.isFrozen {
		return 0, ErrFrozen
	}
	if !g.isMaster {
		return 0, fmt.Errorf("fgraph: CreateTable called on a non-master graph")
	}

	tbl, err := core.NewCombinationTable(rows, weights)
	if err != nil {
		return 0, err
	}

	id := len(g.tables)
	g.tables[id] = tbl

	return id, nil
}

// Table returns a previously-created table by id, for use by callers
// that want to reuse a table across multiple CreateFactor calls without
// going through CreateTable again (e.g. the registry layer).
func (g *FactorGraph) Table(id int) (*core.CombinationTable, bool) {
	t, ok := g.tables[id]
	return t, ok
}

// CreateFactor creates a Factor over vars bound to the table previously
// registered under tableID (via CreateTable on this same graph, or —
// for a non-master graph — visible because the graph was built by
// Instantiate referencing a template's tables). Any variable in vars
// not already known to this graph (as an argument or previously owned)
// is adopted as owned.
//
// Fails with ErrFrozen if already frozen, with ErrNotFound-shaped error
// if tableID is unknown, or wraps core.ErrShape if the table's arity
// does not match len(vars).
func (g *FactorGraph) CreateFactor(tableID int, vars []*core.Variable) (*core.Factor, error) {
	if g.isFrozen {
		return nil, ErrFrozen
	}

	tbl, ok := g.tables[tableID]
	if !ok {
		return nil, fmt.Errorf("fgraph: unknown table id %d", tableID)
	}

	return g.createFactorFromTable(tbl, vars)
}

func (g *FactorGraph) createFactorFromTable(tbl *core.CombinationTable, vars []*core.Variable) (*core.Factor, error) {
	g.adoptOwned(vars)

	f, err := core.NewFactor(len(g.ownedFuncs), tbl, vars)
	if err != nil {
		return nil, err
	}
	g.ownedFuncs = append(g.ownedFuncs, f)

	return f, nil
}

// adoptOwned appends to ownedVars every variable in vars not already
// known to this graph (as arg or owned), marking it known.
func (g *FactorGraph) adoptOwned(vars []*core.Variable) {
	for _, v := range vars {
		if _, known := g.knownVars[v]; known {
			continue
		}
		g.knownVars[v] = struct{}{}
		g.ownedVars = append(g.ownedVars, v)
	}
}

// AddGraph nests a fresh instance of template inside this graph,
// binding the template's boundary variables to args (which must belong
// to, or be newly adopted by, this graph). Any variable in args not
// already known to this graph is adopted as owned.
//
// Fails with ErrFrozen if this graph is already frozen; otherwise
// propagates whatever error Instantiate returns (ErrArity,
// ErrDomainMismatch, ErrReference).
func (g *FactorGraph) AddGraph(template *FactorGraph, args []*core.Variable) error {
	if g.isFrozen {
		return ErrFrozen
	}

	g.adoptOwned(args)

	instance, err := template.Instantiate(args)
	if err != nil {
		return err
	}
	g.nestedGraphs = append(g.nestedGraphs, instance)

	g.nestedFuncs = append(g.nestedFuncs, instance.allFuncs...)
	g.nestedVars = append(g.nestedVars, instance.ownedVars...)
	g.nestedVars = append(g.nestedVars, instance.nestedVars...)

	return nil
}
