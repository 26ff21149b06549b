package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// dialect captures the SQL differences between the supported store drivers.
type dialect struct {
	driver      string
	schema      []string
	lockForSeed string // statement run inside the seed transaction before counting, empty if the driver locks on BEGIN
	placeholder func(n int) string
}

var dialects = map[string]dialect{
	"sqlite": {
		driver: "sqlite",
		schema: []string{
			`CREATE TABLE IF NOT EXISTS products (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				description TEXT NOT NULL,
				price REAL NOT NULL,
				category TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS ix_products_name ON products (name)`,
		},
		placeholder: func(int) string { return "?" },
	},
	"postgres": {
		driver: "postgres",
		schema: []string{
			`CREATE TABLE IF NOT EXISTS products (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT NOT NULL,
				price DOUBLE PRECISION NOT NULL,
				category TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS ix_products_name ON products (name)`,
		},
		lockForSeed: `LOCK TABLE products IN EXCLUSIVE MODE`,
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	},
}

// Store is the relational database holding the products table.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to the store and verifies it is reachable.
// For SQLite the database file is created if absent.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	if driver == "sqlite" {
		dsn = withImmediateTxLock(dsn)
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening %s store: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging %s store: %w", driver, err)
	}

	return &Store{db: db, dialect: d}, nil
}

// withImmediateTxLock makes SQLite transactions take the write lock on BEGIN,
// so the seed count and insert cannot interleave with another writer.
func withImmediateTxLock(dsn string) string {
	if strings.Contains(dsn, "_txlock=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_txlock=immediate"
	}
	return dsn + "?_txlock=immediate"
}

// EnsureSchema creates the products table and its indexes if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range s.dialect.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// withConn acquires a dedicated connection for the duration of fn and
// returns it to the pool on every exit path.
func (s *Store) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}
