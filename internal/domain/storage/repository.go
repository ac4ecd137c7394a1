package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("snapshot not found")

// Repository is a keyed blob store for serialized store snapshots. Each
// store owns a disjoint namespace key, so no cross-store coordination is
// needed. Load returns ErrNotFound for a key that was never saved.
type Repository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
