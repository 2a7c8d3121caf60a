// Package core defines the Variable, Factor, Port and CombinationTable
// types that make up a discrete factor graph, and implements the
// sum-product message-passing update rules on them.
//
// A factor graph is bipartite: Variable nodes hold a discrete alphabet
// and a prior; Factor nodes hold a shared, immutable CombinationTable
// scoring a joint assignment over their incident variables. Every edge
// is modeled as a pair of sibling Ports, one owned by each endpoint;
// each Port carries the inbound message buffer for its side, and
// writing a Port's "outbound" message means writing its sibling's
// inbound buffer.
//
// This package intentionally knows nothing about graph topology,
// templating, or iteration scheduling — see package fgraph for that.
// It is not safe for concurrent use: a Variable/Factor/Port's message
// buffers are mutated in place by Update(), and the caller is
// responsible for sequencing calls (see fgraph's single-threaded,
// synchronous-by-class iteration model).
//
// Numerics:
//
//   - Variable.Update and Variable.GetBeliefs work in log space with a
//     floor constant LZ = -100 standing in for log(0); this keeps one
//     legitimately-zero input message from turning an entire iteration
//     into NaN, at the cost of treating "impossible" as merely
//     "extremely unlikely". The floor must be reproduced exactly
//     (not -Inf) for results to match the reference implementation.
//   - Factor.Update works directly in probability space: factor arity
//     is expected to stay small enough that row-by-row underflow is not
//     the dominant concern there.
//
// Errors:
//
//	ErrShape         - prior length does not match the declared alphabet, a
//	                   table is malformed, or a table's arity does not match
//	                   the number of variables a factor connects.
//	ErrNormalization - prior does not sum to 1 within tolerance, or has a
//	                   negative or non-finite entry.
//	ErrDegenerate    - no alphabet value is simultaneously supported by
//	                   the prior and every incoming message.
package core
