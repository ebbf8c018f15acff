package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// DriverName is the sqlite3 driver variant with the REGEXP function registered.
const DriverName = "sqlite3_quran"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// X REGEXP Y is evaluated by SQLite as regexp(Y, X)
			return conn.RegisterFunc("regexp", regexpMatch, true)
		},
	})
}

// New opens a SQLite database connection at the given path.
// It registers the REGEXP function on every connection and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the corpus tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS suras (
			id TEXT PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			name_arabic TEXT NOT NULL DEFAULT '',
			name_simple TEXT NOT NULL DEFAULT '',
			name_complex TEXT NOT NULL DEFAULT '',
			name_translated TEXT NOT NULL DEFAULT '',
			revelation_place TEXT NOT NULL DEFAULT '',
			revelation_order INTEGER NOT NULL DEFAULT 0,
			bismillah_pre INTEGER NOT NULL DEFAULT 0,
			verse_count INTEGER NOT NULL DEFAULT 0,
			page_start INTEGER NOT NULL DEFAULT 0,
			page_end INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_suras_revelation_order ON suras (revelation_order);`,
		`CREATE TABLE IF NOT EXISTS verses (
			id TEXT PRIMARY KEY,
			sura INTEGER NOT NULL,
			aya INTEGER NOT NULL,
			text_ar TEXT NOT NULL DEFAULT '',
			text_fr TEXT NOT NULL DEFAULT '',
			text_tl TEXT NOT NULL DEFAULT '',
			segments TEXT NOT NULL DEFAULT '[]',
			UNIQUE (sura, aya)
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			id TEXT PRIMARY KEY,
			sura INTEGER NOT NULL,
			aya INTEGER NOT NULL,
			pos INTEGER NOT NULL,
			root TEXT NOT NULL DEFAULT '',
			UNIQUE (sura, aya, pos)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_root ON words (root);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// Ping reports whether the database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func count(ctx context.Context, q queryer, query string, args []any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
