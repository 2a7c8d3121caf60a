// File: doc.go
// Role: package doc for registry.
//
// Package registry is the external-interface layer wrapping package
// fgraph: a single Registry holds a free pool of core.Variables not yet
// bound to any graph (GraphID -1) plus a dense, append-only list of
// fgraph.FactorGraphs, and resolves VarRef values (graph id + position)
// to the actual *core.Variable they name.
//
// Grounded on original_source/solvers/cpp/DimpleManager.h/.cpp and
// DimpleEntry.cpp: those files are a MATLAB-facing entry point sitting
// on top of FactorGraph/Variable, translating between MEX array
// arguments and graph-API calls. Registry reproduces the same id-based
// addressing scheme without the MATLAB marshaling, as an ordinary Go
// API a caller (CLI, RPC handler, or test) can drive directly.
//
// Registry is not safe for concurrent use, matching fgraph and core: an
// external caller that needs concurrent registries should use one
// Registry instance per goroutine, or guard access to a shared one with
// its own lock.
package registry
