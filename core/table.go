// File: table.go
// Role: CombinationTable — the immutable scoring table shared by every
//       Factor built from it, possibly across many graph instances.
package core

import (
	"fmt"
	"math"
)

// CombinationTable is an immutable, arity-k scoring table: a list of
// joint assignments paired with a nonnegative weight each. Column i of
// every row indexes into the alphabet of the i-th variable incident to
// whichever Factor holds this table (by position, not by identity —
// the same table can be reused by factors over different Variables as
// long as the alphabet sizes line up column-by-column).
//
// Row order is the authoritative enumeration order for Factor.Update;
// duplicate rows are permitted and contribute additively, matching
// original_source/solvers/cpp's CombinationTable semantics.
//
// A CombinationTable is never mutated after construction, so it is safe
// to share a single instance by reference across every Factor that
// points to it, including factors in unrelated graph instances cloned
// from the same template (spec invariant: a CombinationTable is owned
// by exactly one graph even when referenced by many factors).
type CombinationTable struct {
	arity   int
	rows    [][]int
	weights []float64
}

// NewCombinationTable validates and constructs a CombinationTable from
// rows (an R×k array of alphabet indices) and weights (R nonnegative
// reals). Rows and weights are copied defensively so the caller's
// slices can be reused or mutated afterward without affecting the
// table.
//
// Returns ErrShape if rows is empty, if any row has a different width
// than the first, if len(weights) != len(rows), or if any weight is
// negative or non-finite.
func NewCombinationTable(rows [][]int, weights []float64) (*CombinationTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: combination table must have at least one row", ErrShape)
	}
	if len(weights) != len(rows) {
		return nil, fmt.Errorf("%w: %d rows but %d weights", ErrShape, len(rows), len(weights))
	}

	arity := len(rows[0])
	if arity == 0 {
		return nil, fmt.Errorf("%w: combination table rows must have at least one column", ErrShape)
	}

	outRows := make([][]int, len(rows))
	for i, row := range rows {
		if len(row) != arity {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrShape, i, len(row), arity)
		}
		cp := make([]int, arity)
		copy(cp, row)
		outRows[i] = cp
	}

	outWeights := make([]float64, len(weights))
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %d (%v) must be finite and nonnegative", ErrShape, i, w)
		}
		outWeights[i] = w
	}

	return &CombinationTable{arity: arity, rows: outRows, weights: outWeights}, nil
}

// Arity returns k, the number of columns (incident variables) this
// table scores.
func (t *CombinationTable) Arity() int { return t.arity }

// NumRows returns the number of enumerated assignments in the table.
func (t *CombinationTable) NumRows() int { return len(t.rows) }

// Row returns the alphabet-index assignment for row i, in authoritative
// enumeration order. The returned slice must not be mutated by the
// caller; it aliases the table's internal storage.
func (t *CombinationTable) Row(i int) []int { return t.rows[i] }

// Weight returns the nonnegative weight for row i.
func (t *CombinationTable) Weight(i int) float64 { return t.weights[i] }
