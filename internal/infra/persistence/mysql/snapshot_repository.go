package mysql

import (
	"context"
	"database/sql"
	"errors"

	"example.com/trustylads/storefront/internal/domain/storage"
)

// SnapshotRepository persists store snapshots in a snapshots table:
//
//	CREATE TABLE snapshots (
//	    ns_key     VARCHAR(191) PRIMARY KEY,
//	    doc        JSON NOT NULL,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	        ON UPDATE CURRENT_TIMESTAMP
//	);
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `
        SELECT doc FROM snapshots WHERE ns_key = ?
    `, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO snapshots (ns_key, doc)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE doc = VALUES(doc)
    `, key, data)
	return err
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE ns_key = ?`, key)
	return err
}
