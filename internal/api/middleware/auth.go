package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/jusoor-api/internal/api/response"
	"github.com/Rrens/jusoor-api/internal/domain"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
)

// Authenticator resolves a bearer token to an active user.
// *service.AuthService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	auth Authenticator
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate attaches the active user named by the bearer token to the
// request context. Nothing downstream runs unless every step succeeds.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := ParseAuthorization(r.Header.Get("Authorization"))
		if err != nil {
			unauthorized(w, err)
			return
		}

		user, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidToken):
				unauthorized(w, domain.ErrInvalidToken)
			case errors.Is(err, domain.ErrUserNotFound):
				unauthorized(w, domain.ErrUserNotFound)
			default:
				log.Error().
					Err(err).
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("path", r.URL.Path).
					Msg("failed to authenticate request")
				response.InternalError(w, "internal server error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), user)))
	})
}

// ParseAuthorization extracts the token from an "Authorization: Bearer <token>"
// header. The header must hold exactly two whitespace-separated fields and the
// scheme is matched case-insensitively.
func ParseAuthorization(header string) (string, error) {
	if header == "" {
		return "", domain.ErrMissingHeader
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
		return "", domain.ErrMalformedHeader
	}

	return fields[1], nil
}

// RequireAdmin rejects authenticated users that do not hold the admin role.
// It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetPrincipal(r.Context())
		if !ok {
			unauthorized(w, domain.ErrUserNotFound)
			return
		}
		if !user.IsAdmin() {
			response.Forbidden(w, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithPrincipal stores the authenticated user in the context
func WithPrincipal(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, PrincipalKey, user)
}

// GetPrincipal gets the authenticated user from context
func GetPrincipal(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(PrincipalKey).(*domain.User)
	return user, ok && user != nil
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	response.Unauthorized(w, err.Error())
}
