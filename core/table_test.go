package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/factorbp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCombinationTable_Valid(t *testing.T) {
	tbl, err := core.NewCombinationTable(
		[][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}},
		[]float64{1, 1, 1, 1},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Arity())
	assert.Equal(t, 4, tbl.NumRows())
	assert.Equal(t, []int{1, 0, 1}, tbl.Row(2))
	assert.Equal(t, 1.0, tbl.Weight(2))
}

func TestNewCombinationTable_RejectsEmpty(t *testing.T) {
	_, err := core.NewCombinationTable(nil, nil)
	assert.True(t, errors.Is(err, core.ErrShape))
}

func TestNewCombinationTable_RejectsRowWidthMismatch(t *testing.T) {
	_, err := core.NewCombinationTable([][]int{{0, 0}, {0}}, []float64{1, 1})
	assert.True(t, errors.Is(err, core.ErrShape))
}

func TestNewCombinationTable_RejectsWeightCountMismatch(t *testing.T) {
	_, err := core.NewCombinationTable([][]int{{0, 0}}, []float64{1, 1})
	assert.True(t, errors.Is(err, core.ErrShape))
}

func TestNewCombinationTable_RejectsNegativeWeight(t *testing.T) {
	_, err := core.NewCombinationTable([][]int{{0}}, []float64{-1})
	assert.True(t, errors.Is(err, core.ErrShape))
}

func TestNewCombinationTable_DefensiveCopy(t *testing.T) {
	rows := [][]int{{0, 1}}
	weights := []float64{1}
	tbl, err := core.NewCombinationTable(rows, weights)
	require.NoError(t, err)

	rows[0][0] = 99
	weights[0] = 42

	assert.Equal(t, []int{0, 1}, tbl.Row(0))
	assert.Equal(t, 1.0, tbl.Weight(0))
}

func TestXorTable(t *testing.T) {
	tbl, err := core.XorTable(3)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.NumRows())
	for r := 0; r < tbl.NumRows(); r++ {
		row := tbl.Row(r)
		assert.Equal(t, row[0]^row[1], row[2])
		assert.Equal(t, 1.0, tbl.Weight(r))
	}
}

func TestXorTable_RejectsSmallArity(t *testing.T) {
	_, err := core.XorTable(1)
	assert.True(t, errors.Is(err, core.ErrShape))
}

func TestEqualityTable(t *testing.T) {
	tbl, err := core.EqualityTable(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
	for r := 0; r < tbl.NumRows(); r++ {
		row := tbl.Row(r)
		assert.Equal(t, row[0], row[1])
		assert.Equal(t, row[1], row[2])
	}
}
