package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/trustylads/storefront/internal/domain/storage"
)

func TestSnapshotRepository_CopiesData(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	payload := []byte(`{"token":"abc"}`)
	require.NoError(t, repo.Save(ctx, "trustylads-auth", payload))

	// Mutating the caller's slice must not leak into the store.
	payload[2] = 'x'

	data, err := repo.Load(ctx, "trustylads-auth")
	require.NoError(t, err)
	require.Equal(t, `{"token":"abc"}`, string(data))

	_, err = repo.Load(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
