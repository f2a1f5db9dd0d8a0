// Package sqlitestore persists designs in a SQLite database. The
// widget data is stored as the design's canonical JSON document; only
// the listing columns are relational.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS designs (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    data       TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// Store is a ports.DesignStore backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs the
// schema migration.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List implements ports.DesignStore, most recently updated first.
func (s *Store) List(ctx context.Context) ([]design.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT d.id, d.name, d.updated_at,
               (SELECT COUNT(*) FROM json_each(d.data, '$.widgets'))
        FROM designs d
        ORDER BY d.updated_at DESC, d.id
    `)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	var summaries []design.Summary
	for rows.Next() {
		var sm design.Summary
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.UpdatedAt, &sm.Widgets); err != nil {
			return nil, fmt.Errorf("scan design summary: %w", err)
		}
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}

// Get implements ports.DesignStore.
func (s *Store) Get(ctx context.Context, id string) (design.Design, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT data, created_at, updated_at FROM designs WHERE id = ?
    `, id)

	var raw []byte
	var createdAt, updatedAt time.Time
	if err := row.Scan(&raw, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return design.Design{}, ports.ErrDesignNotFound
		}
		return design.Design{}, fmt.Errorf("load design %s: %w", id, err)
	}

	d, err := design.Decode(raw)
	if err != nil {
		return design.Design{}, err
	}
	d.CreatedAt = createdAt
	d.UpdatedAt = updatedAt
	return d, nil
}

// Put implements ports.DesignStore, inserting or replacing by id. The
// update timestamp is refreshed; the creation timestamp survives a
// replace.
func (s *Store) Put(ctx context.Context, d design.Design) error {
	if err := d.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.UpdatedAt = now
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	raw, err := d.Encode()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO designs (id, name, data, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            name = excluded.name,
            data = excluded.data,
            updated_at = excluded.updated_at
    `, d.ID, d.Name, string(raw), d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store design %s: %w", d.ID, err)
	}
	return nil
}

// Delete implements ports.DesignStore.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete design %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrDesignNotFound
	}
	return nil
}

var _ ports.DesignStore = (*Store)(nil)
