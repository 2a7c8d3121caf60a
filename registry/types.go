// File: types.go
// Role: Registry struct, VarRef, and sentinel errors.
package registry

import (
	"errors"

	"github.com/katalvlaran/factorbp/core"
	"github.com/katalvlaran/factorbp/fgraph"
)

// ErrNotFound indicates a VarRef, graph id, or factor id does not
// resolve to anything the Registry knows about.
var ErrNotFound = errors.New("registry: not found")

// FreePool is the GraphID a VarRef uses to name a variable that has not
// been bound into any graph yet (DimpleManager.GetVariable's graphId ==
// -1 convention).
const FreePool = -1

// VarRef names one variable: either one sitting in the free pool
// (GraphID == FreePool, VarID indexing NewVariable's allocation order),
// or one belonging to a specific graph's frozen schedule (GraphID is
// the graph's registry id, VarID its position in that graph's
// Variables()).
type VarRef struct {
	GraphID int
	VarID   int
}

// Registry is the top-level handle external callers drive: it owns a
// free pool of variables not yet bound to any graph, and a dense,
// append-only list of graphs (masters and instances alike).
type Registry struct {
	freeVars []*core.Variable
	graphs   []*fgraph.FactorGraph
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}
