package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridsolve/internal/domain"
)

func TestValidateCleanGrid(t *testing.T) {
	assert := require.New(t)
	g := domain.Grid{
		{8, 0, 0, 0, 1, 0, 6, 0, 9},
		{0, 0, 1, 9, 7, 0, 0, 2, 0},
		{9, 4, 0, 8, 2, 6, 3, 0, 1},
		{0, 0, 4, 6, 0, 0, 0, 0, 0},
		{0, 9, 0, 0, 0, 0, 1, 6, 0},
		{5, 0, 6, 0, 3, 2, 9, 8, 0},
		{4, 0, 0, 0, 5, 8, 7, 1, 0},
		{6, 2, 0, 1, 0, 0, 5, 3, 0},
		{0, 5, 8, 0, 0, 7, 4, 0, 2},
	}
	ok, conflicts, err := New().Validate(context.Background(), &g)
	assert.NoError(err)
	assert.True(ok)
	assert.Empty(conflicts)
}

func TestValidateReportsConflicts(t *testing.T) {
	assert := require.New(t)
	var g domain.Grid
	g[3][2] = 4
	g[3][6] = 4 // row duplicate

	ok, conflicts, err := New().Validate(context.Background(), &g)
	assert.NoError(err)
	assert.False(ok)
	assert.Contains(conflicts, domain.CellCoord{Row: 3, Col: 6})

	g = domain.Grid{}
	g[1][1] = 2
	g[2][2] = 2 // same block, different row and column

	ok, conflicts, err = New().Validate(context.Background(), &g)
	assert.NoError(err)
	assert.False(ok)
	assert.Contains(conflicts, domain.CellCoord{Row: 2, Col: 2})
}
