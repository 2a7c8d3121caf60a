package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorbp/registry"
)

// TestFreePoolAndPriors exercises NewVariable/SetPriors/GetBeliefs
// entirely through the free pool, with no graph involved.
func TestFreePoolAndPriors(t *testing.T) {
	r := registry.New()

	a, err := r.NewVariable(2)
	require.NoError(t, err)
	b, err := r.NewVariable(2)
	require.NoError(t, err)

	require.NoError(t, r.SetPriors([]registry.VarRef{a, b}, [][]float64{
		{0.3, 0.7},
		{0.5, 0.5},
	}))

	beliefs, err := r.GetBeliefs([]registry.VarRef{a, b})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.3, 0.7}, beliefs[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, beliefs[1], 1e-12)
}

// TestGraphLifecycle reproduces the newgraph/createTable/
// createTableFunc/solve/getbeliefs sequence DimpleEntry exposes, over a
// single XOR factor a XOR b = c with evidence on a and b.
func TestGraphLifecycle(t *testing.T) {
	r := registry.New()

	a, err := r.NewVariable(2)
	require.NoError(t, err)
	b, err := r.NewVariable(2)
	require.NoError(t, err)
	c, err := r.NewVariable(2)
	require.NoError(t, err)

	require.NoError(t, r.SetPriors([]registry.VarRef{a, b}, [][]float64{
		{0.9, 0.1},
		{0.8, 0.2},
	}))

	graphID, err := r.NewGraph([]registry.VarRef{a, b, c})
	require.NoError(t, err)

	tblID, err := r.GraphTable(graphID, [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	_, err = r.GraphFactor(graphID, tblID, []registry.VarRef{a, b, c})
	require.NoError(t, err)

	r.SetNumIterations(10)
	require.NoError(t, r.Solve(graphID))

	beliefs, err := r.GetBeliefs([]registry.VarRef{c})
	require.NoError(t, err)
	assert.InDelta(t, 0.74, beliefs[0][0], 1e-2)
	assert.InDelta(t, 0.26, beliefs[0][1], 1e-2)

	vars, err := r.GetGraphVariables(graphID)
	require.NoError(t, err)
	assert.Len(t, vars, 3)

	factors, err := r.GetGraphFactors(graphID)
	require.NoError(t, err)
	require.Len(t, factors, 1)

	connected, err := r.GetConnectedVariables(graphID, factors[0])
	require.NoError(t, err)
	assert.ElementsMatch(t, vars, connected)
}

// TestNestGraphAndNewInstance reproduces the registry-level
// nestgraph/newinstance entry points over a template with one internal
// variable.
func TestNestGraphAndNewInstance(t *testing.T) {
	r := registry.New()

	b0, _ := r.NewVariable(2)
	b1, _ := r.NewVariable(2)
	b2, _ := r.NewVariable(2)
	b3, _ := r.NewVariable(2)

	tmplID, err := r.NewGraph([]registry.VarRef{b0, b1, b2, b3})
	require.NoError(t, err)

	internal, err := r.NewVariable(2)
	require.NoError(t, err)

	tblID, err := r.GraphTable(tmplID, [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	_, err = r.GraphFactor(tmplID, tblID, []registry.VarRef{b0, b1, internal})
	require.NoError(t, err)
	_, err = r.GraphFactor(tmplID, tblID, []registry.VarRef{b2, b3, internal})
	require.NoError(t, err)

	c0, _ := r.NewVariable(2)
	c1, _ := r.NewVariable(2)
	c2, _ := r.NewVariable(2)
	c3, _ := r.NewVariable(2)

	hostID, err := r.NewGraph(nil)
	require.NoError(t, err)

	require.NoError(t, r.NestGraph(hostID, tmplID, []registry.VarRef{c0, c1, c2, c3}))

	instanceID, err := r.NewInstance(tmplID, []registry.VarRef{c0, c1, c2, c3})
	require.NoError(t, err)
	assert.NotEqual(t, hostID, instanceID)

	vars, err := r.GetGraphVariables(instanceID)
	require.NoError(t, err)
	assert.Len(t, vars, 5)
}

// TestInstancesHaveIsolatedInternalState instantiates the same template
// twice and checks that mutating one instance's internal (non-boundary)
// variable prior leaves the other instance's belief for the
// corresponding variable untouched: Instantiate gives every instance
// its own fresh internal Variables rather than sharing the template's.
func TestInstancesHaveIsolatedInternalState(t *testing.T) {
	r := registry.New()

	b0, _ := r.NewVariable(2)
	b1, _ := r.NewVariable(2)

	tmplID, err := r.NewGraph([]registry.VarRef{b0, b1})
	require.NoError(t, err)

	internal, err := r.NewVariable(2)
	require.NoError(t, err)

	tblID, err := r.GraphTable(tmplID, [][]int{{0, 0}, {1, 1}}, []float64{1, 1})
	require.NoError(t, err)
	_, err = r.GraphFactor(tmplID, tblID, []registry.VarRef{b0, internal})
	require.NoError(t, err)

	c0, _ := r.NewVariable(2)
	c1, _ := r.NewVariable(2)
	d0, _ := r.NewVariable(2)
	d1, _ := r.NewVariable(2)

	instance1, err := r.NewInstance(tmplID, []registry.VarRef{c0, c1})
	require.NoError(t, err)
	instance2, err := r.NewInstance(tmplID, []registry.VarRef{d0, d1})
	require.NoError(t, err)

	vars1, err := r.GetGraphVariables(instance1)
	require.NoError(t, err)
	vars2, err := r.GetGraphVariables(instance2)
	require.NoError(t, err)
	require.Len(t, vars1, 3)
	require.Len(t, vars2, 3)
	internal1, internal2 := vars1[2], vars2[2]

	before, err := r.GetBeliefs([]registry.VarRef{internal2})
	require.NoError(t, err)

	require.NoError(t, r.SetPriors([]registry.VarRef{internal1}, [][]float64{{0.99, 0.01}}))

	after, err := r.GetBeliefs([]registry.VarRef{internal2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, before[0], after[0], 1e-12)
}

// TestUnknownGraphID checks that lookups against a nonexistent graph id
// fail with ErrNotFound rather than panicking.
func TestUnknownGraphID(t *testing.T) {
	r := registry.New()

	_, err := r.GetGraphVariables(0)
	assert.True(t, errors.Is(err, registry.ErrNotFound))

	err = r.Initialize(42)
	assert.True(t, errors.Is(err, registry.ErrNotFound))
}

// TestClearResetsRegistry checks Clear drops every graph and free-pool
// variable (DimpleManager::Clear's observable effect).
func TestClearResetsRegistry(t *testing.T) {
	r := registry.New()
	a, err := r.NewVariable(2)
	require.NoError(t, err)
	_, err = r.NewGraph([]registry.VarRef{a})
	require.NoError(t, err)

	r.Clear()

	_, err = r.GetGraphVariables(0)
	assert.True(t, errors.Is(err, registry.ErrNotFound))

	_, err = r.GetBeliefs([]registry.VarRef{a})
	assert.True(t, errors.Is(err, registry.ErrNotFound))
}
