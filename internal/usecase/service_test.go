package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/hint"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/validator"
)

func TestServiceGuardsMissingDeps(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()
	u := &Service{}
	var g domain.Grid

	_, _, err := u.Solve(ctx, &g)
	assert.ErrorIs(err, errNotConfigured)
	_, _, err = u.Validate(ctx, &g)
	assert.ErrorIs(err, errNotConfigured)
	_, _, err = u.Hint(ctx, &g)
	assert.ErrorIs(err, errNotConfigured)
	assert.ErrorIs(u.Save(ctx, nil), errNotConfigured)
	_, err = u.Load(ctx, "x")
	assert.ErrorIs(err, errNotConfigured)
	_, err = u.List(ctx)
	assert.ErrorIs(err, errNotConfigured)
}

func TestServiceDelegates(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()
	u := NewService(solver.NewSearcher(), validator.New(), hint.NewSingles(), nil)

	g := domain.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}

	ok, _, err := u.Validate(ctx, &g)
	assert.NoError(err)
	assert.True(ok)

	_, found, err := u.Hint(ctx, &g)
	assert.NoError(err)
	assert.True(found, "this puzzle opens with a sole candidate")

	out, _, err := u.Solve(ctx, &g)
	assert.NoError(err)
	assert.True(out.IsFilled() && out.IsValid())
}
