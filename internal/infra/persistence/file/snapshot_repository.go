package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"example.com/trustylads/storefront/internal/domain/storage"
)

// SnapshotRepository stores one file per key under a directory, the
// service-side analogue of browser local storage. Writes go through a
// temp file and rename so a crash never leaves a half-written snapshot.
type SnapshotRepository struct {
	dir string
}

func NewSnapshotRepository(dir string) (*SnapshotRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SnapshotRepository{dir: dir}, nil
}

func (r *SnapshotRepository) path(key string) string {
	// Keys contain namespace separators; flatten to a safe file name.
	name := strings.NewReplacer(":", "_", "/", "_").Replace(key)
	return filepath.Join(r.dir, name+".json")
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	return data, err
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	path := r.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	err := os.Remove(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
