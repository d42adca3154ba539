// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// The PostgreSQL backend keeps each blob as one row in the blobs table,
// upserted whole on every save.

package blob

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore stores the blob as a single row keyed by name.
// The blobs table is created by the database package's migrations.
type PostgresStore struct {
	db   *sql.DB
	name string
}

// NewPostgresStore returns a blob store for the named blob on the given pool.
func NewPostgresStore(db *sql.DB, name string) *PostgresStore {
	return &PostgresStore{db: db, name: name}
}

// Load fetches the blob row. A missing row reports ok=false, not an error.
func (s *PostgresStore) Load(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM blobs WHERE name = $1`, s.name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load blob %s: %w", s.name, err)
	}
	return data, true, nil
}

// Save upserts the blob row, overwriting any previous value.
func (s *PostgresStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (name, data)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, s.name, data)
	if err != nil {
		return fmt.Errorf("save blob %s: %w", s.name, err)
	}
	return nil
}
