// Package factorbp is a small, dependency-light belief-propagation
// library for discrete factor graphs.
//
// It gives you:
//
//   - core        — Variable, Factor, Port, CombinationTable: the
//     message-passing primitives, log-space sum-product with a
//     pseudo-zero floor so long cycles don't underflow to NaN.
//   - fgraph      — FactorGraph: build once (CreateTable, CreateFactor,
//     AddGraph), Freeze, then Initialize/Iterate/Solve. Templates can be
//     instantiated multiple times and nested inside a host graph.
//   - registry    — Registry: an id-based handle over a free pool of
//     variables and a list of graphs, for callers (CLIs, RPC handlers,
//     tests) that would rather pass small integers around than hold
//     onto pointers.
//
// Everything here assumes single-threaded, cooperative use: neither
// FactorGraph nor Registry guards its own state with a lock. A caller
// that needs concurrent access should serialize it externally.
//
//	go get github.com/katalvlaran/factorbp
package factorbp
