package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/gridsolve/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()
	st := NewFS(t.TempDir())

	p := &domain.Puzzle{
		ID:        "abc123",
		Name:      "evening puzzle",
		CreatedAt: 1700000000,
	}
	p.Grid[0][0] = 5
	p.Grid[8][8] = 9

	assert.NoError(st.Save(ctx, p))

	got, err := st.Load(ctx, "abc123")
	assert.NoError(err)
	assert.Equal(p.Grid, got.Grid)
	assert.Equal(p.Name, got.Name)

	metas, err := st.List(ctx)
	assert.NoError(err)
	assert.Len(metas, 1)
	assert.Equal("abc123", metas[0].ID)
	assert.Equal("evening puzzle", metas[0].Name)
}

func TestSaveRejectsMissingID(t *testing.T) {
	assert := require.New(t)
	st := NewFS(t.TempDir())
	assert.Error(st.Save(context.Background(), &domain.Puzzle{}))
	assert.Error(st.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	assert := require.New(t)
	st := NewFS(t.TempDir())
	_, err := st.Load(context.Background(), "nope")
	assert.Error(err)
}

func TestListEmptyDir(t *testing.T) {
	assert := require.New(t)
	st := NewFS(t.TempDir() + "/never-created")
	metas, err := st.List(context.Background())
	assert.NoError(err)
	assert.Empty(metas)
}
