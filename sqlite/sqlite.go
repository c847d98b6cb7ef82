// Package sqlite provides SQLite-based storage for spy bookmarks.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/fwojciec/spy"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to open database")
	}

	// SQLite only supports one writer at a time.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return spy.WrapError(spy.EINTERNAL, err, "failed to connect to database %s", db.path)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	// WAL is not supported for in-memory databases.
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return spy.WrapError(spy.EINTERNAL, err, "failed to apply %q", p)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return spy.WrapError(spy.EINTERNAL, err, "failed to create schema")
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			page_title TEXT NOT NULL DEFAULT '',
			site_title TEXT NOT NULL DEFAULT '',
			authors TEXT NOT NULL DEFAULT '[]',
			description TEXT NOT NULL DEFAULT '',
			thumbnail TEXT NOT NULL DEFAULT '',
			full_text TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bookmark_tags (
			bookmark_id TEXT NOT NULL REFERENCES bookmarks(id) ON DELETE CASCADE,
			tag TEXT NOT NULL,
			PRIMARY KEY (bookmark_id, tag)
		);

		CREATE INDEX IF NOT EXISTS idx_bookmark_tags_tag ON bookmark_tags(tag);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_created_at ON bookmarks(created_at);
	`

	_, err := db.db.Exec(schema)
	return err
}
