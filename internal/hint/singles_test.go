package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridsolve/internal/domain"
)

func TestHintFindsSingle(t *testing.T) {
	assert := require.New(t)
	// a solved grid with one hole: the hole is forced
	g := domain.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 0, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	h, ok, err := NewSingles().Hint(context.Background(), &g)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal([]domain.CellCoord{{Row: 4, Col: 4}}, h.Cells)
	assert.Equal(uint8(5), h.Digit)
	assert.Contains(h.Message, "5")
}

func TestHintNoForcedMove(t *testing.T) {
	assert := require.New(t)
	var g domain.Grid // empty grid: every cell has all nine options
	_, ok, err := NewSingles().Hint(context.Background(), &g)
	assert.NoError(err)
	assert.False(ok)
}
