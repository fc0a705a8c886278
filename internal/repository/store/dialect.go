package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Rrens/jusoor-api/internal/config"
)

// dialect captures the few places where the supported engines disagree.
type dialect struct {
	name       string
	driverName string
	// numbered placeholders ($1, $2) instead of ?
	numbered bool
	// INSERT ... RETURNING id instead of LastInsertId
	returning bool
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return dialect{name: driver, driverName: "pgx", numbered: true, returning: true}, nil
	case config.DriverMySQL:
		return dialect{name: driver, driverName: "mysql"}, nil
	case config.DriverSQLite:
		return dialect{name: driver, driverName: "sqlite"}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// rebind rewrites ? placeholders into the dialect's native form.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isUniqueViolation reports whether err is a unique constraint failure on any engine.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// handle executes rebound statements against a pool or a transaction.
type handle struct {
	q DBTX
	d dialect
}

func (h handle) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := h.q.ExecContext(ctx, h.d.rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (h handle) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return h.q.QueryContext(ctx, h.d.rebind(query), args...)
}

func (h handle) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return h.q.QueryRowContext(ctx, h.d.rebind(query), args...)
}

// insert runs an INSERT and returns the generated id.
func (h handle) insert(ctx context.Context, query string, args ...any) (int64, error) {
	if h.d.returning {
		var id int64
		err := h.q.QueryRowContext(ctx, h.d.rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := h.q.ExecContext(ctx, h.d.rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
