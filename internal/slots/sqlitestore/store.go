// Package sqlitestore persists the slot record in a SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"lifebox/internal/slots"
	"lifebox/internal/slots/sqlitestore/migrations"

	_ "modernc.org/sqlite"
)

// Store reads and writes the nine-slot record as rows of the slots table.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReadRecord loads all nine slots. A table that does not hold exactly nine
// rows is reported as slots.ErrNoSavedData.
func (s *Store) ReadRecord(ctx context.Context) (slots.Record, error) {
	if s == nil || s.sqlDB == nil {
		return slots.Record{}, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, cells FROM slots ORDER BY id`)
	if err != nil {
		return slots.Record{}, fmt.Errorf("query slots: %w", err)
	}
	defer rows.Close()

	var rec slots.Record
	count := 0
	for rows.Next() {
		var (
			id    int
			cells string
		)
		if err := rows.Scan(&id, &cells); err != nil {
			return slots.Record{}, fmt.Errorf("scan slot: %w", err)
		}
		if id < 1 || id > slots.NumSlots {
			return slots.Record{}, fmt.Errorf("%w: unexpected slot id %d", slots.ErrNoSavedData, id)
		}
		points, err := slots.UnmarshalPoints([]byte(cells))
		if err != nil {
			return slots.Record{}, fmt.Errorf("%w: decode slot %d: %w", slots.ErrNoSavedData, id, err)
		}
		rec[id-1] = points
		count++
	}
	if err := rows.Err(); err != nil {
		return slots.Record{}, fmt.Errorf("iterate slots: %w", err)
	}
	if count != slots.NumSlots {
		return slots.Record{}, fmt.Errorf("%w: table holds %d slots, want %d", slots.ErrNoSavedData, count, slots.NumSlots)
	}
	return rec, nil
}

// WriteRecord replaces every row with rec in a single transaction.
func (s *Store) WriteRecord(ctx context.Context, rec slots.Record) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin slots transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM slots`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear slots: %w", err)
	}
	for _, id := range slots.IDs() {
		cells, err := slots.MarshalPoints(rec.Slot(id))
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("encode slot %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO slots (id, cells) VALUES (?, ?)`, int(id), string(cells)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert slot %s: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit slots: %w", err)
	}
	return nil
}
