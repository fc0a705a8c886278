package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/security"
)

func newAuthService(repo *MockUserRepository, now time.Time) (*AuthService, *security.JWTManager) {
	jwtManager := security.NewJWTManager("test-secret", time.Hour, security.WithClock(fixedClock(now)))
	svc := NewAuthService(repo, jwtManager)
	svc.now = fixedClock(now)
	return svc, jwtManager
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtManager := newAuthService(repo, now)

		repo.On("EmailExists", ctx, "a@x.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.User).ID = 1 }).
			Return(nil)

		result, err := svc.Register(ctx, domain.UserCreate{Email: "a@x.com", Password: "secret1", FullName: "Ann"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.User.ID)
		assert.Equal(t, domain.RoleUser, result.User.Role)
		assert.Equal(t, "en", result.User.PreferredLanguage)
		assert.True(t, result.User.IsActive)
		assert.True(t, security.CheckPassword(result.User.PasswordHash, "secret1"))

		claims, err := jwtManager.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)

		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newAuthService(repo, now)

		repo.On("EmailExists", ctx, "a@x.com").Return(true, nil)

		_, err := svc.Register(ctx, domain.UserCreate{Email: "a@x.com", Password: "secret1", FullName: "Ann"})
		assert.ErrorIs(t, err, domain.ErrConflict)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("race lost in store", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newAuthService(repo, now)

		repo.On("EmailExists", ctx, "a@x.com").Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrConflict)

		_, err := svc.Register(ctx, domain.UserCreate{Email: "a@x.com", Password: "secret1", FullName: "Ann"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)
	stored := func() *domain.User {
		return &domain.User{ID: 1, Email: "a@x.com", PasswordHash: hash, FullName: "Ann", Role: domain.RoleUser, IsActive: true}
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtManager := newAuthService(repo, now)

		repo.On("GetActiveByEmail", ctx, "a@x.com").Return(stored(), nil)
		repo.On("UpdateLastLogin", ctx, int64(1), now).Return(nil)

		result, err := svc.Login(ctx, domain.UserLogin{Email: "a@x.com", Password: "secret1"})
		require.NoError(t, err)
		require.NotNil(t, result.User.LastLogin)
		assert.Equal(t, now, *result.User.LastLogin)

		claims, err := jwtManager.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)

		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newAuthService(repo, now)

		repo.On("GetActiveByEmail", ctx, "a@x.com").Return(stored(), nil)

		_, err := svc.Login(ctx, domain.UserLogin{Email: "a@x.com", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown or inactive user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newAuthService(repo, now)

		repo.On("GetActiveByEmail", ctx, "ghost@x.com").Return(nil, nil)

		_, err := svc.Login(ctx, domain.UserLogin{Email: "ghost@x.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newAuthService(repo, now)

		repo.On("GetActiveByEmail", ctx, "a@x.com").Return(nil, domain.ErrStoreFailure)

		_, err := svc.Login(ctx, domain.UserLogin{Email: "a@x.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrStoreFailure)
		assert.False(t, errors.Is(err, domain.ErrInvalidCredentials))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	repo := new(MockUserRepository)
	svc, jwtManager := newAuthService(repo, now)

	token, err := jwtManager.Issue(1, "a@x.com")
	require.NoError(t, err)
	inactiveToken, err := jwtManager.Issue(2, "b@x.com")
	require.NoError(t, err)

	user := &domain.User{ID: 1, Email: "a@x.com", Role: domain.RoleUser, IsActive: true}
	repo.On("GetActiveByID", ctx, int64(1)).Return(user, nil)
	repo.On("GetActiveByID", ctx, int64(2)).Return(nil, nil)

	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.Authenticate(ctx, inactiveToken)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
