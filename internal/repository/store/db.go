package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rrens/jusoor-api/internal/config"

	// database/sql drivers, one per supported config.Database.Driver
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection pool
type DB struct {
	conn    *sql.DB
	dialect dialect
}

// NewDB opens a connection pool for the configured driver and verifies it
func NewDB(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(d.driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		conn.SetMaxIdleConns(cfg.MinConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// Verify connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn: conn, dialect: d}, nil
}

// Close closes the database connection pool
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping verifies database connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.dialect.name
}

// reader returns a handle bound to the pool for single-statement reads.
func (db *DB) reader() handle {
	return handle{q: db.conn, d: db.dialect}
}
