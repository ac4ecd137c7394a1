package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/trustylads/storefront/internal/domain/storage"
)

// SnapshotRepository is the Postgres twin of the MySQL backend:
//
//	CREATE TABLE snapshots (
//	    ns_key     TEXT PRIMARY KEY,
//	    doc        JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `
        SELECT doc FROM snapshots WHERE ns_key = $1
    `, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO snapshots (ns_key, doc)
        VALUES ($1, $2)
        ON CONFLICT (ns_key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
    `, key, data)
	return err
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM snapshots WHERE ns_key = $1`, key)
	return err
}
