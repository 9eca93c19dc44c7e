// Package store provides a SQLite snapshot of raw stream records.
//
// The dashboard never writes here; snapshots are produced by `sb import` and
// read back through the fetch.Source interface.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abelbrown/signalboard/internal/signal"
	_ "modernc.org/sqlite"
)

// Store handles SQLite access. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex // Protects all database operations
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db, path: dbPath}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables if they don't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		stream TEXT NOT NULL,
		seq INTEGER NOT NULL,
		body TEXT NOT NULL,
		PRIMARY KEY (stream, seq)
	);

	CREATE TABLE IF NOT EXISTS imports (
		stream TEXT PRIMARY KEY,
		imported_at DATETIME NOT NULL,
		record_count INTEGER NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Name identifies the store as a record source.
func (s *Store) Name() string {
	return "sqlite:" + s.path
}

// Put replaces the snapshot of stream t with bodies, in order.
// Each body must be one JSON object; it is stored verbatim.
// Thread-safe: acquires write lock.
func (s *Store) Put(ctx context.Context, t signal.Type, bodies []json.RawMessage) error {
	if !t.Valid() {
		return fmt.Errorf("put: unknown stream %q", t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE stream = ?", string(t)); err != nil {
		return fmt.Errorf("clear %s: %w", t, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO records (stream, seq, body) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, body := range bodies {
		if !json.Valid(body) {
			return fmt.Errorf("%s record %d: invalid JSON", t, i)
		}
		if _, err := stmt.ExecContext(ctx, string(t), i, string(body)); err != nil {
			return fmt.Errorf("insert %s record %d: %w", t, i, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO imports (stream, imported_at, record_count) VALUES (?, ?, ?)
		ON CONFLICT(stream) DO UPDATE SET
			imported_at = excluded.imported_at,
			record_count = excluded.record_count
	`, string(t), time.Now().UTC(), len(bodies))
	if err != nil {
		return fmt.Errorf("record import: %w", err)
	}

	return tx.Commit()
}

// Raw returns the stored bodies of stream t in import order.
// A stream that was never imported is reported as unavailable.
// Thread-safe: acquires read lock.
func (s *Store) Raw(ctx context.Context, t signal.Type) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM imports WHERE stream = ?", string(t)).Scan(&n)
	if err != nil {
		return nil, fmt.Errorf("lookup %s import: %w", t, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", t, ErrNotImported)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT body FROM records WHERE stream = ? ORDER BY seq", string(t))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t, err)
	}
	defer rows.Close()

	bodies := []json.RawMessage{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t, err)
		}
		bodies = append(bodies, json.RawMessage(body))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bodies, nil
}

// Import describes the last snapshot of one stream.
type Import struct {
	Stream     signal.Type
	ImportedAt time.Time
	Records    int
}

// Imports lists the last import of every stream, in signal.StreamOrder.
// Streams never imported are omitted.
// Thread-safe: acquires read lock.
func (s *Store) Imports(ctx context.Context) ([]Import, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT stream, imported_at, record_count FROM imports")
	if err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}
	defer rows.Close()

	byStream := make(map[signal.Type]Import)
	for rows.Next() {
		var imp Import
		var stream string
		if err := rows.Scan(&stream, &imp.ImportedAt, &imp.Records); err != nil {
			return nil, fmt.Errorf("scan import: %w", err)
		}
		imp.Stream = signal.Type(stream)
		byStream[imp.Stream] = imp
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []Import
	for _, t := range signal.StreamOrder {
		if imp, ok := byStream[t]; ok {
			out = append(out, imp)
		}
	}
	return out, nil
}
