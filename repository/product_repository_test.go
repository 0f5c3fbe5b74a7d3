package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pharmacy-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*ProductRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	return NewProductRepository(path), path
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	products := repo.Load(context.Background())

	assert.NotNil(t, products)
	assert.Empty(t, products)
}

// A hand-mangled store file degrades to an empty catalog instead of failing.
// Callers cannot tell "no products" from "store unreadable"; this is the
// documented (and risky) contract of the store.
func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	products := repo.Load(context.Background())

	assert.Empty(t, products)
}

func TestSaveLoadRoundTripPreservesOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := []models.Product{
		{ID: "p2", Name: "Ibuprofen", Image: "/i/p2.png", Price: 4.5},
		{ID: "p1", Name: "Aspirin", Image: "/i/p1.png", Price: 9.99, Tag: "bestseller"},
	}
	require.NoError(t, repo.Save(ctx, in))

	out := repo.Load(ctx)
	assert.Equal(t, in, out)
}

func TestSaveWritesHumanReadableJSON(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []models.Product{
		{ID: "p1", Name: "Aspirin", Image: "/i/p1.png", Price: 9.99},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    {")
	assert.Contains(t, string(data), `"id": "p1"`)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
	assert.Empty(t, repo.Load(ctx))
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Save(context.Background(), []models.Product{
		{ID: "p1", Name: "Aspirin", Image: "/i/p1.png", Price: 9.99},
	}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "products.json", entries[0].Name())
}

func TestSaveFailsWhenDirectoryMissing(t *testing.T) {
	repo := NewProductRepository(filepath.Join(t.TempDir(), "missing", "products.json"))

	err := repo.Save(context.Background(), []models.Product{})

	assert.Error(t, err)
}
