package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rrens/jusoor-api/internal/domain"
)

const recentWindow = 7 * 24 * time.Hour

// AdminService backs the admin dashboard
type AdminService struct {
	userRepo  domain.UserRepository
	statsRepo domain.StatsRepository
	cache     StatsCache
	now       func() time.Time
}

// NewAdminService creates a new admin service. cache may be nil.
func NewAdminService(userRepo domain.UserRepository, statsRepo domain.StatsRepository, cache StatsCache) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		cache:     cache,
		now:       time.Now,
	}
}

// ListUsers returns every account, newest first
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// UpdateUser changes another account's role or active flag
func (s *AdminService) UpdateUser(ctx context.Context, actor *domain.User, userID int64, update domain.UserAdminUpdate) (*domain.User, error) {
	if update.Role == nil && update.IsActive == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}
	if update.Role != nil && !update.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be user or admin", domain.ErrInvalidInput)
	}
	if actor.ID == userID {
		demote := update.Role != nil && *update.Role != domain.RoleAdmin
		deactivate := update.IsActive != nil && !*update.IsActive
		if demote || deactivate {
			return nil, fmt.Errorf("%w: admins cannot demote or deactivate themselves", domain.ErrInvalidInput)
		}
	}

	if err := s.userRepo.UpdateByAdmin(ctx, userID, update); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}

	log.Info().
		Int64("admin_id", actor.ID).
		Int64("user_id", userID).
		Str("role", string(user.Role)).
		Bool("is_active", user.IsActive).
		Msg("user updated by admin")

	return user, nil
}

// Stats returns dashboard counts, served from cache when available
func (s *AdminService) Stats(ctx context.Context) (*domain.Stats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.statsRepo.Collect(ctx, s.now().UTC().Add(-recentWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			log.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	return stats, nil
}
