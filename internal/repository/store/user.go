package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// UserRepository handles user data access
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, role, preferred_language, is_active, last_login, created_at`

// Create inserts the user and its default accessibility settings in one transaction
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	defaults := domain.DefaultAccessibilitySettings()

	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		id, err := h.insert(ctx, `
			INSERT INTO users (email, password_hash, full_name, role, preferred_language, is_active, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			user.Email,
			user.PasswordHash,
			user.FullName,
			string(user.Role),
			user.PreferredLanguage,
			user.IsActive,
			user.CreatedAt,
		)
		if err != nil {
			return err
		}

		_, err = h.exec(ctx, `
			INSERT INTO accessibility_settings (
				user_id, font_size, contrast_mode, color_theme, colorblind_mode,
				text_to_speech_enabled, keyboard_navigation_hints, reduced_motion
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			defaults.FontSize,
			defaults.ContrastMode,
			defaults.ColorTheme,
			defaults.ColorblindMode,
			defaults.TextToSpeechEnabled,
			defaults.KeyboardNavigationHints,
			defaults.ReducedMotion,
		)
		if err != nil {
			return err
		}

		user.ID = id
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		return storeErr("create user", err)
	}

	return nil
}

// GetByID retrieves a user by ID regardless of its active flag
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "get user",
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetActiveByID retrieves an active user by ID
func (r *UserRepository) GetActiveByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "get active user",
		`SELECT `+userColumns+` FROM users WHERE id = ? AND is_active = ?`, id, true)
}

// GetActiveByEmail retrieves an active user by email
func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "get user by email",
		`SELECT `+userColumns+` FROM users WHERE email = ? AND is_active = ?`, email, true)
}

// EmailExists checks whether any account, active or not, uses the email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.reader().queryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	if err != nil {
		return false, storeErr("check email", err)
	}
	return count > 0, nil
}

// UpdateLastLogin records a successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		_, err := h.exec(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, at, id)
		return err
	})
	if err != nil {
		return storeErr("update last login", err)
	}
	return nil
}

// UpdateByAdmin changes role and/or active flag
func (r *UserRepository) UpdateByAdmin(ctx context.Context, id int64, update domain.UserAdminUpdate) error {
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		var count int64
		if err := h.queryRow(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, id).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}

		if update.Role != nil {
			if _, err := h.exec(ctx, `UPDATE users SET role = ? WHERE id = ?`, string(*update.Role), id); err != nil {
				return err
			}
		}
		if update.IsActive != nil {
			if _, err := h.exec(ctx, `UPDATE users SET is_active = ? WHERE id = ?`, *update.IsActive, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return storeErr("update user", err)
	}
	return nil
}

// List returns every account, newest first
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.reader().query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, storeErr("scan user", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list users", err)
	}

	return users, nil
}

func (r *UserRepository) getOne(ctx context.Context, op, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(r.db.reader().queryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(op, err)
	}
	return user, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*domain.User, error) {
	var (
		user      domain.User
		role      string
		lastLogin sql.NullTime
	)
	err := s.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&role,
		&user.PreferredLanguage,
		&user.IsActive,
		&lastLogin,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = domain.Role(role)
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}
	return &user, nil
}
