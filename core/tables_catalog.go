// File: tables_catalog.go
// Role: small catalog of commonly-used CombinationTables built from
//       closed-form generators instead of literal row lists.
//
// Grounded on original_source/solvers/cpp/CombinationTableFactory.h/.cpp,
// which builds a handful of named tables (binary XOR among them) from
// closed-form generators instead of literal row lists. These are
// convenience constructors over NewCombinationTable, not new
// primitives: every table they produce could equally be written out by
// hand by a caller.
package core

import "fmt"

// XorTable returns the binary (alphabet size 2) k-ary combination table
// asserting that the XOR of the first k-1 columns equals the last
// column, with weight 1 on every satisfying row and no other rows (for
// k=3: rows (0,0,0), (0,1,1), (1,0,1), (1,1,0)).
//
// Fails with ErrShape if k < 2.
func XorTable(k int) (*CombinationTable, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: XorTable requires arity >= 2, got %d", ErrShape, k)
	}

	rows := make([][]int, 0, 1<<uint(k-1))
	weights := make([]float64, 0, 1<<uint(k-1))
	for assignment := 0; assignment < 1<<uint(k-1); assignment++ {
		row := make([]int, k)
		parity := 0
		for col := 0; col < k-1; col++ {
			bit := (assignment >> uint(col)) & 1
			row[col] = bit
			parity ^= bit
		}
		row[k-1] = parity
		rows = append(rows, row)
		weights = append(weights, 1)
	}

	return NewCombinationTable(rows, weights)
}

// EqualityTable returns the alphabet-m, arity-k combination table
// asserting that every incident variable takes the same value, with
// weight 1 on each of the m satisfying rows and no other rows.
//
// Fails with ErrShape if k < 1 or m < 1.
func EqualityTable(k, m int) (*CombinationTable, error) {
	if k < 1 || m < 1 {
		return nil, fmt.Errorf("%w: EqualityTable requires arity >= 1 and domain length >= 1, got k=%d m=%d", ErrShape, k, m)
	}

	rows := make([][]int, m)
	weights := make([]float64, m)
	for value := 0; value < m; value++ {
		row := make([]int, k)
		for col := range row {
			row[col] = value
		}
		rows[value] = row
		weights[value] = 1
	}

	return NewCombinationTable(rows, weights)
}
