package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"sched/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS lookups (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    query      TEXT NOT NULL,
    code       TEXT NOT NULL,
    url        TEXT NOT NULL,
    fetched_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lookups_fetched_at ON lookups(fetched_at);
`

// Repository implements domain.LookupStore using SQLite.
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository, initializing the schema if
// needed.
func New(dbPath string) (*Repository, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Record inserts a lookup and fills in its ID.
func (r *Repository) Record(ctx context.Context, l *domain.Lookup) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO lookups (query, code, url, fetched_at) VALUES (?, ?, ?, ?)`,
		l.Query, l.Code, l.URL, l.FetchedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

// Recent returns the newest lookups first, up to limit.
func (r *Repository) Recent(ctx context.Context, limit int) ([]domain.Lookup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, query, code, url, fetched_at
		 FROM lookups ORDER BY fetched_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []domain.Lookup
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.ID, &l.Query, &l.Code, &l.URL, &l.FetchedAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
