// File: instantiate.go
// Role: Instantiate — clone a template graph, binding its boundary
//       (argument) variables to caller-supplied host variables and
//       allocating fresh internal state for everything else.
//
// Grounded on original_source/solvers/cpp/FactorGraph.cpp
// (FactorGraph::NewInstance): this file follows the same single-pass
// old->new mapping the reference implementation builds, but checks
// domain length with the evidently-intended `a.DomainLength() !=
// b.DomainLength()` rather than the C++ original's `!a==b` (which, by
// operator precedence, is always false and so never actually fires).
package fgraph

import (
	"fmt"

	"github.com/katalvlaran/factorbp/core"
)

// Instantiate produces a non-master clone of this graph (the
// "template"): fresh Variables for every owned variable (same domain
// length, a copy of the current prior), fresh Factors sharing this
// template's CombinationTables by reference, and recursively
// instantiated nested subgraphs. The template's boundary variables are
// bound to args, which must already belong to (or become adopted by)
// the caller of Instantiate — args are not copied, they are the clone's
// arg_vars directly.
//
// Freezes the template first (idempotent) so its ownedFuncs/nestedGraphs
// lists are stable to walk.
//
// Fails with:
//   - ErrArity if len(args) != len(template's arg_vars).
//   - ErrDomainMismatch if any args[i] has a different domain length
//     than the corresponding template boundary variable.
//   - ErrReference if some factor (or nested graph argument) in the
//     template refers to a variable unreachable through the
//     arg-or-owned mapping built here — this should not happen for a
//     template built entirely through this package's own API, but is
//     checked defensively as the reference implementation does.
//
// On any failure, no partial clone is returned or left reachable: an
// instantiation that fails midway destroys the half-built clone rather
// than returning it in a partially-wired state.
func (t *FactorGraph) Instantiate(args []*core.Variable) (*FactorGraph, error) {
	t.Freeze()

	if len(args) != len(t.argVars) {
		return nil, fmt.Errorf("%w: template has %d argument variables, got %d", ErrArity, len(t.argVars), len(args))
	}
	for i, a := range args {
		want := t.argVars[i]
		if a.DomainLength() != want.DomainLength() {
			return nil, fmt.Errorf("%w: argument %d has domain length %d, template expects %d", ErrDomainMismatch, i, a.DomainLength(), want.DomainLength())
		}
	}

	clone := newTemplateClone(args)
	// The clone references the template's tables for factor sharing;
	// it does not own or free them.
	clone.tables = t.tables

	// old -> new variable mapping: template arg_vars map identically to
	// the supplied args (already args of the clone), then every owned
	// variable gets a fresh Variable with a copied prior.
	varMap := make(map[*core.Variable]*core.Variable, len(t.argVars)+len(t.ownedVars))
	for i, tv := range t.argVars {
		varMap[tv] = args[i]
	}
	for _, tv := range t.ownedVars {
		nv, err := core.NewVariable(len(clone.ownedVars), tv.DomainLength())
		if err != nil {
			return nil, err
		}
		if err := nv.SetPriors(tv.Prior()); err != nil {
			return nil, err
		}
		varMap[tv] = nv
		clone.ownedVars = append(clone.ownedVars, nv)
		clone.knownVars[nv] = struct{}{}
	}

	// Clone every owned factor, remapping its incident variables
	// through varMap.
	for _, tf := range t.ownedFuncs {
		mappedVars := make([]*core.Variable, len(tf.Vars()))
		for j, tv := range tf.Vars() {
			nv, ok := varMap[tv]
			if !ok {
				return nil, fmt.Errorf("%w: factor %d references a variable outside the template's arg/owned set", ErrReference, tf.ID())
			}
			mappedVars[j] = nv
		}

		nf, err := core.NewFactor(len(clone.ownedFuncs), tf.Table(), mappedVars)
		if err != nil {
			return nil, err
		}
		clone.ownedFuncs = append(clone.ownedFuncs, nf)
	}

	// Recursively instantiate nested subgraphs, remapping their
	// argument lists through varMap, and fold the results into the
	// clone via AddGraph (which itself appends to
	// nestedFuncs/nestedVars/nestedGraphs).
	for _, childTemplate := range t.nestedGraphs {
		mappedArgs := make([]*core.Variable, len(childTemplate.argVars))
		for j, tv := range childTemplate.argVars {
			nv, ok := varMap[tv]
			if !ok {
				return nil, fmt.Errorf("%w: nested graph references a variable outside the template's arg/owned set", ErrReference)
			}
			mappedArgs[j] = nv
		}
		if err := clone.AddGraph(childTemplate, mappedArgs); err != nil {
			return nil, err
		}
	}

	clone.Freeze()

	return clone, nil
}
