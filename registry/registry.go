// File: registry.go
// Role: Registry operations — variable/graph allocation, priors,
//       solve-protocol forwarding, belief/introspection lookups.
//
// Grounded on original_source/solvers/cpp/DimpleManager.cpp and
// DimpleEntry.cpp's newvars/newgraph/newinstance/nestgraph/setpriors/
// setnumiter/solve/initgraph/iterate/getbeliefs/getgraphvars/
// getgraphfuncs/getconnectedvariables/clear entry points.
package registry

import (
	"fmt"

	"github.com/katalvlaran/factorbp/core"
	"github.com/katalvlaran/factorbp/fgraph"
)

// NewVariable allocates a fresh domain-length-m variable in the free
// pool and returns a VarRef naming it.
func (r *Registry) NewVariable(m int) (VarRef, error) {
	v, err := core.NewVariable(len(r.freeVars), m)
	if err != nil {
		return VarRef{}, err
	}
	r.freeVars = append(r.freeVars, v)

	return VarRef{GraphID: FreePool, VarID: len(r.freeVars) - 1}, nil
}

// resolve looks up the *core.Variable a VarRef names.
func (r *Registry) resolve(ref VarRef) (*core.Variable, error) {
	if ref.GraphID == FreePool {
		if ref.VarID < 0 || ref.VarID >= len(r.freeVars) {
			return nil, fmt.Errorf("%w: free-pool variable %d", ErrNotFound, ref.VarID)
		}
		return r.freeVars[ref.VarID], nil
	}

	g, err := r.graph(ref.GraphID)
	if err != nil {
		return nil, err
	}
	v, ok := g.Variable(ref.VarID)
	if !ok {
		return nil, fmt.Errorf("%w: graph %d variable %d", ErrNotFound, ref.GraphID, ref.VarID)
	}

	return v, nil
}

func (r *Registry) resolveAll(refs []VarRef) ([]*core.Variable, error) {
	vars := make([]*core.Variable, len(refs))
	for i, ref := range refs {
		v, err := r.resolve(ref)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}

	return vars, nil
}

func (r *Registry) graph(id int) (*fgraph.FactorGraph, error) {
	if id < 0 || id >= len(r.graphs) {
		return nil, fmt.Errorf("%w: graph %d", ErrNotFound, id)
	}

	return r.graphs[id], nil
}

// NewGraph creates a master FactorGraph with the named variables as its
// boundary, appends it to the registry, and returns its id. opts are
// forwarded to fgraph.NewFactorGraph (e.g. fgraph.WithNumIterations).
// A graph built purely to be instantiated later (never solved itself)
// is registered the same way; NewInstance accepts any registered
// graph's id as a template.
func (r *Registry) NewGraph(args []VarRef, opts ...fgraph.Option) (int, error) {
	vars, err := r.resolveAll(args)
	if err != nil {
		return 0, err
	}

	g := fgraph.NewFactorGraph(vars, opts...)
	r.graphs = append(r.graphs, g)

	return len(r.graphs) - 1, nil
}

// NewInstance instantiates the template registered under templateID,
// binding its boundary to args, appends the clone to the registry, and
// returns its id (DimpleManager::NewInstance).
func (r *Registry) NewInstance(templateID int, args []VarRef) (int, error) {
	tmpl, err := r.graph(templateID)
	if err != nil {
		return 0, err
	}
	vars, err := r.resolveAll(args)
	if err != nil {
		return 0, err
	}

	instance, err := tmpl.Instantiate(vars)
	if err != nil {
		return 0, err
	}
	r.graphs = append(r.graphs, instance)

	return len(r.graphs) - 1, nil
}

// NestGraph nests a fresh instance of the template registered under
// childID inside the graph registered under parentID, binding the
// template's boundary to args (DimpleEntry's nestgraph entry point,
// FactorGraph::AddGraph).
func (r *Registry) NestGraph(parentID, childID int, args []VarRef) error {
	parent, err := r.graph(parentID)
	if err != nil {
		return err
	}
	child, err := r.graph(childID)
	if err != nil {
		return err
	}
	vars, err := r.resolveAll(args)
	if err != nil {
		return err
	}

	return parent.AddGraph(child, vars)
}

// GraphTable creates a CombinationTable on the graph registered under
// graphID and returns its table id, for later use with GraphFactor
// (DimpleEntry's createTable).
func (r *Registry) GraphTable(graphID int, rows [][]int, weights []float64) (int, error) {
	g, err := r.graph(graphID)
	if err != nil {
		return 0, err
	}

	return g.CreateTable(rows, weights)
}

// GraphFactor creates a factor on the graph registered under graphID,
// over vars, bound to the table previously registered under tableID via
// GraphTable on the same graph (DimpleEntry's createTableFunc).
func (r *Registry) GraphFactor(graphID, tableID int, vars []VarRef) (int, error) {
	g, err := r.graph(graphID)
	if err != nil {
		return 0, err
	}
	resolved, err := r.resolveAll(vars)
	if err != nil {
		return 0, err
	}

	f, err := g.CreateFactor(tableID, resolved)
	if err != nil {
		return 0, err
	}

	return f.ID(), nil
}

// SetPriors assigns priors[i] to the variable named by refs[i].
//
// Fails if len(refs) != len(priors), or on the first variable whose
// prior is rejected (core.ErrShape/core.ErrNormalization) — earlier
// variables in the batch already updated are not rolled back, matching
// the reference implementation's per-variable loop.
func (r *Registry) SetPriors(refs []VarRef, priors [][]float64) error {
	if len(refs) != len(priors) {
		return fmt.Errorf("%w: %d variables but %d prior rows", ErrNotFound, len(refs), len(priors))
	}

	for i, ref := range refs {
		v, err := r.resolve(ref)
		if err != nil {
			return err
		}
		if err := v.SetPriors(priors[i]); err != nil {
			return err
		}
	}

	return nil
}

// SetNumIterations sets the iteration count on every graph currently in
// the registry, matching DimpleEntry's setnumiter entry point, which
// loops over _dimple.GetGraphs() rather than targeting one graph. This
// is preserved verbatim even though it is surprising;
// fgraph.FactorGraph.SetNumIterations remains available for per-graph
// control.
func (r *Registry) SetNumIterations(n int) {
	for _, g := range r.graphs {
		g.SetNumIterations(n)
	}
}

// Initialize resets every message buffer on the graph registered under
// graphID to uniform.
func (r *Registry) Initialize(graphID int) error {
	g, err := r.graph(graphID)
	if err != nil {
		return err
	}
	g.Initialize()

	return nil
}

// Iterate runs k synchronous-by-class rounds on the graph registered
// under graphID.
func (r *Registry) Iterate(graphID, k int) error {
	g, err := r.graph(graphID)
	if err != nil {
		return err
	}
	g.Iterate(k)

	return nil
}

// Solve runs the graph registered under graphID to completion (its own
// NumIterations rounds, after initializing).
func (r *Registry) Solve(graphID int) error {
	g, err := r.graph(graphID)
	if err != nil {
		return err
	}

	return g.Solve()
}

// GetBeliefs returns the marginal belief for each variable named by
// refs, in order.
func (r *Registry) GetBeliefs(refs []VarRef) ([][]float64, error) {
	beliefs := make([][]float64, len(refs))
	for i, ref := range refs {
		v, err := r.resolve(ref)
		if err != nil {
			return nil, err
		}
		b, err := v.GetBeliefs()
		if err != nil {
			return nil, err
		}
		beliefs[i] = b
	}

	return beliefs, nil
}

// GetGraphVariables returns a VarRef for every variable in the frozen
// schedule of the graph registered under graphID, in schedule order
// (DimpleEntry's getgraphvars).
func (r *Registry) GetGraphVariables(graphID int) ([]VarRef, error) {
	g, err := r.graph(graphID)
	if err != nil {
		return nil, err
	}

	vars := g.Variables()
	refs := make([]VarRef, len(vars))
	for i := range vars {
		refs[i] = VarRef{GraphID: graphID, VarID: i}
	}

	return refs, nil
}

// GetGraphFactors returns the schedule position of every factor in the
// graph registered under graphID, in schedule order (DimpleEntry's
// getgraphfuncs).
func (r *Registry) GetGraphFactors(graphID int) ([]int, error) {
	g, err := r.graph(graphID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(g.Factors()))
	for i := range ids {
		ids[i] = i
	}

	return ids, nil
}

// GetConnectedVariables returns a VarRef for every variable incident to
// factor factorID within the graph registered under graphID, in the
// factor's own port order (DimpleEntry's getconnectedvariables).
func (r *Registry) GetConnectedVariables(graphID, factorID int) ([]VarRef, error) {
	g, err := r.graph(graphID)
	if err != nil {
		return nil, err
	}
	f, ok := g.Factor(factorID)
	if !ok {
		return nil, fmt.Errorf("%w: graph %d factor %d", ErrNotFound, graphID, factorID)
	}

	vars := g.ConnectedVariables(f)
	refs := make([]VarRef, len(vars))
	for i, v := range vars {
		pos, ok := g.IndexOf(v)
		if !ok {
			return nil, fmt.Errorf("%w: graph %d does not contain one of factor %d's variables", ErrNotFound, graphID, factorID)
		}
		refs[i] = VarRef{GraphID: graphID, VarID: pos}
	}

	return refs, nil
}

// Clear discards every graph and free-pool variable the registry holds.
// There is nothing to manually release (core/fgraph hold no OS
// resources; Go's GC reclaims the rest), so Clear is just a reset of
// the registry's own slices — matching the observable effect of
// DimpleManager::Clear without its manual delete loops.
func (r *Registry) Clear() {
	r.graphs = nil
	r.freeVars = nil
}
