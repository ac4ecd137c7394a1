package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/trustylads/storefront/internal/domain/storage"
)

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	repo, err := NewSnapshotRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Load(ctx, "trustylads-cart:s1")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, repo.Save(ctx, "trustylads-cart:s1", []byte(`{"items":[]}`)))

	data, err := repo.Load(ctx, "trustylads-cart:s1")
	require.NoError(t, err)
	require.JSONEq(t, `{"items":[]}`, string(data))

	require.NoError(t, repo.Delete(ctx, "trustylads-cart:s1"))
	_, err = repo.Load(ctx, "trustylads-cart:s1")
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting a missing key is fine.
	require.NoError(t, repo.Delete(ctx, "trustylads-cart:s1"))
}

func TestSnapshotRepository_OverwriteKeepsLatest(t *testing.T) {
	repo, err := NewSnapshotRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", []byte(`1`)))
	require.NoError(t, repo.Save(ctx, "k", []byte(`2`)))

	data, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "2", string(data))
}
