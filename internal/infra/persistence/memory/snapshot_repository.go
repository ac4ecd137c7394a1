package memory

import (
	"context"
	"sync"

	"example.com/trustylads/storefront/internal/domain/storage"
)

// SnapshotRepository keeps snapshots in process memory. Used by tests and
// as the default backend when no DSN is configured.
type SnapshotRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{data: make(map[string][]byte)}
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	r.data[key] = stored
	return nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
