package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rrens/jusoor-api/internal/config"
	"github.com/Rrens/jusoor-api/internal/domain"
)

// newTestDB migrates a fresh sqlite file and opens it.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "jusoor_test.db"),
		MaxConns: 4,
	}
	require.NoError(t, RunMigrations(cfg, Up))

	db, err := NewDB(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func createUser(t *testing.T, db *DB, email string, role domain.Role) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:             email,
		PasswordHash:      "hash",
		FullName:          "Test User",
		Role:              role,
		PreferredLanguage: "en",
		IsActive:          true,
		CreatedAt:         time.Now().UTC(),
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}
