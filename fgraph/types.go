// File: types.go
// Role: FactorGraph struct and sentinel errors.
package fgraph

import (
	"errors"

	"github.com/katalvlaran/factorbp/core"
)

// Sentinel errors for the fgraph package.
var (
	// ErrFrozen indicates a structural mutation (CreateFactor, AddGraph,
	// CreateTable) was attempted on an already-frozen graph.
	ErrFrozen = errors.New("fgraph: graph is frozen")

	// ErrArity indicates an argument-variable list's length does not
	// match what the operation expected (e.g. Instantiate's args vs.
	// the template's arg_vars).
	ErrArity = errors.New("fgraph: argument count mismatch")

	// ErrDomainMismatch indicates an argument variable's alphabet size
	// differs from the corresponding template boundary variable's.
	ErrDomainMismatch = errors.New("fgraph: domain length mismatch")

	// ErrReference indicates a factor (or nested graph) in a template
	// refers to a variable unreachable through the arg-or-owned mapping
	// during instantiation.
	ErrReference = errors.New("fgraph: illegal variable reference")

	// ErrConfig indicates Solve was invoked with NumIterations <= 0.
	ErrConfig = errors.New("fgraph: num iterations must be set and positive")
)

// FactorGraph owns a set of core.Variables and core.Factors, together
// with any nested FactorGraph instances, and drives their message
// schedule. See the package doc for the construction/solve state
// machine.
type FactorGraph struct {
	// argVars are boundary variables: not owned, supplied by the host
	// at NewFactorGraph/Instantiate time.
	argVars []*core.Variable

	// ownedFuncs are created directly on this graph via CreateFactor.
	// ownedVars are adopted by CreateFactor (variables auto-adopted the
	// first time they appear in a factor's var list) or by AddGraph
	// (variables in its args that were not already known); on a clone,
	// Instantiate fills both with fresh copies of the template's own.
	ownedVars  []*core.Variable
	ownedFuncs []*core.Factor

	// nestedVars/nestedFuncs are the internal variables/factors of
	// nested instances, flattened one level (AddGraph absorbs its
	// child's nestedVars/nestedFuncs too, so this graph's own
	// nestedVars/nestedFuncs already include everything transitively
	// nested beneath it).
	nestedVars  []*core.Variable
	nestedFuncs []*core.Factor

	// nestedGraphs are the direct children created by AddGraph.
	nestedGraphs []*FactorGraph

	// allVars/allFuncs are the frozen, order-stable schedule:
	// argVars ++ ownedVars ++ nestedVars, and ownedFuncs ++ nestedFuncs
	// respectively. Populated once, at freeze.
	allVars []*core.Variable
	allFuncs []*core.Factor

	// knownVars tracks every arg or owned variable of this graph, by
	// identity, so CreateFactor/AddGraph can tell which incoming
	// variables need to be adopted as owned. Variables of nested
	// instances are not recorded here.
	knownVars map[*core.Variable]struct{}

	// tables is, on a master graph, the id -> table map this graph's
	// CreateTable allocates into; on a clone made by Instantiate it is
	// the source graph's map, shared by reference.
	tables map[int]*core.CombinationTable

	numIterations int
	isMaster      bool
	isFrozen      bool
}

// NewFactorGraph constructs a master FactorGraph with the given
// boundary (argument) variables. A master graph owns the
// CombinationTables created on it via CreateTable. This is the
// constructor for every graph a caller builds directly, including a
// graph that will only ever be passed to Instantiate and never solved
// itself: Instantiate does not require its receiver be anything but an
// ordinary master graph, and CreateTable/CreateFactor only work on one.
// The non-master variant is reserved for the clone Instantiate itself
// produces.
func NewFactorGraph(args []*core.Variable, opts ...Option) *FactorGraph {
	return newFactorGraph(args, true, opts)
}

// newTemplateClone constructs the non-master graph Instantiate returns:
// one that references its source's CombinationTables rather than owning
// any of its own (see clone.tables assignment in Instantiate).
func newTemplateClone(args []*core.Variable) *FactorGraph {
	return newFactorGraph(args, false, nil)
}

func newFactorGraph(args []*core.Variable, isMaster bool, opts []Option) *FactorGraph {
	g := &FactorGraph{
		argVars:       append([]*core.Variable(nil), args...),
		knownVars:     make(map[*core.Variable]struct{}, len(args)),
		numIterations: 1,
		isMaster:      isMaster,
	}
	if isMaster {
		g.tables = make(map[int]*core.CombinationTable)
	}
	for _, v := range args {
		g.knownVars[v] = struct{}{}
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// IsFrozen reports whether this graph's topology is fixed.
func (g *FactorGraph) IsFrozen() bool { return g.isFrozen }

// IsMaster reports whether this graph owns its CombinationTables.
func (g *FactorGraph) IsMaster() bool { return g.isMaster }
