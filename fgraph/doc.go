// Package fgraph implements FactorGraph: the owner of a set of
// core.Variables and core.Factors, the templating/nesting machinery
// (Instantiate, AddGraph), the freeze/schedule step, and the iteration
// driver (Initialize/Iterate/Solve).
//
// Construction vs. solve:
//
//	Construction: CreateTable, CreateFactor, and AddGraph mutate a
//	FactorGraph's topology. Freeze is monotonic — once a graph is
//	frozen (explicitly via Freeze, or implicitly by the first
//	Initialize/Iterate/Solve/Instantiate call), no further topology
//	mutation is accepted.
//
//	Solve: Initialize seeds every message buffer to uniform (priors are
//	untouched); Iterate(k) performs k rounds of synchronous-by-class
//	updates — every variable, in frozen order, then every factor, in
//	frozen order; Solve is Initialize followed by Iterate(NumIterations).
//
// Templating:
//
//	Every FactorGraph a caller constructs directly, via NewFactorGraph,
//	is a master graph and owns the CombinationTables created on it via
//	CreateTable — this holds equally for a graph meant only to be
//	instantiated and never solved itself. Calling Instantiate on any
//	FactorGraph produces a non-master clone: fresh Variables with
//	copied priors, fresh Factors sharing the source's CombinationTables
//	by reference, and recursively-instantiated nested subgraphs.
//	AddGraph nests an instance inside a host graph, binding the
//	template's boundary (argument) variables to host variables the
//	caller supplies.
//
// Grounded on original_source/solvers/cpp/FactorGraph.{h,cpp}
// (analog-garage/dimple) for exact construction/freeze/instantiate
// semantics; styled on lvlath's functional-options and
// validate-before-mutate discipline (dijkstra.Option,
// builder/validators.go).
//
// Not safe for concurrent use: this package's single-threaded,
// cooperative scheduling model is documented alongside core's (see its
// package doc), and registry's package doc covers the multi-graph case.
package fgraph
