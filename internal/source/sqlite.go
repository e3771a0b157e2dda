package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/vecscan/internal/config"
)

// SQLite reads a collection from a table of (id, vector BLOB, group) rows.
type SQLite struct {
	db  *sql.DB
	cfg config.SourceConfig
}

// OpenSQLite opens the database at path read-only. Table and column names come
// from cfg and must already be validated identifiers.
func OpenSQLite(path string, cfg config.SourceConfig) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &SQLite{db: db, cfg: cfg}, nil
}

// Load returns every vector in the table, or only those of group when group is
// not empty. Rows are ordered by id so indices are stable between calls.
func (s *SQLite) Load(ctx context.Context, group string) (*Collection, error) {
	q := fmt.Sprintf("SELECT %s, %s FROM %s", s.cfg.IDColumn, s.cfg.VectorColumn, s.cfg.Table)
	var args []any
	if group != "" {
		q += fmt.Sprintf(" WHERE %s = ?", s.cfg.GroupColumn)
		args = append(args, group)
	}
	q += fmt.Sprintf(" ORDER BY %s", s.cfg.IDColumn)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vectors: %w", err)
	}
	defer rows.Close()

	c := &Collection{IDs: []string{}, Items: [][]byte{}}
	for rows.Next() {
		var id string
		var blob []byte
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan vector: %w", err)
		}
		c.IDs = append(c.IDs, id)
		c.Items = append(c.Items, blob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vectors: %w", err)
	}
	return c, nil
}

// Groups returns the distinct group names in the table.
func (s *SQLite) Groups(ctx context.Context) ([]string, error) {
	q := fmt.Sprintf("SELECT DISTINCT %[1]s FROM %[2]s WHERE %[1]s IS NOT NULL ORDER BY %[1]s",
		s.cfg.GroupColumn, s.cfg.Table)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()
	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
