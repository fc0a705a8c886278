package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/jusoor-api/internal/api/handler"
	customMiddleware "github.com/Rrens/jusoor-api/internal/api/middleware"
	"github.com/Rrens/jusoor-api/internal/config"
	"github.com/Rrens/jusoor-api/internal/repository/redis"
	"github.com/Rrens/jusoor-api/internal/repository/store"
	"github.com/Rrens/jusoor-api/internal/security"
	"github.com/Rrens/jusoor-api/internal/service"
	"github.com/Rrens/jusoor-api/internal/translator"
)

// NewRouter creates and configures the HTTP router. redisClient may be nil,
// in which case rate limiting and stats caching are disabled.
func NewRouter(cfg *config.Config, db *store.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		security.WithIssuer(cfg.Auth.Issuer),
	)

	// Initialize repositories
	userRepo := store.NewUserRepository(db)
	translationRepo := store.NewTranslationRepository(db)
	sessionRepo := store.NewSessionRepository(db)
	feedbackRepo := store.NewFeedbackRepository(db)
	settingsRepo := store.NewSettingsRepository(db)
	statsRepo := store.NewStatsRepository(db)

	// Translation engine
	var engine translator.Engine = translator.NewMockEngine(cfg.Translator.SimulateLatency)
	if cfg.Translator.Gemini.APIKey != "" {
		log.Info().Str("model", cfg.Translator.Gemini.Model).Msg("Using Gemini for text translation")
		engine = translator.NewGeminiEngine(engine, cfg.Translator.Gemini.APIKey, cfg.Translator.Gemini.Model)
	}
	dispatcher := translator.NewDispatcher(engine)

	// Optional redis-backed components
	var statsCache service.StatsCache
	var rateLimitMiddleware *customMiddleware.RateLimitMiddleware
	if redisClient != nil {
		statsCache = redis.NewStatsCache(redisClient, cfg.Security.StatsCacheTTL)
		rateLimiter := redis.NewRateLimiter(
			redisClient,
			cfg.Security.RateLimit.RequestsPerMinute,
			cfg.Security.RateLimit.Burst,
		)
		rateLimitMiddleware = customMiddleware.NewRateLimitMiddleware(rateLimiter)
	} else {
		log.Warn().Msg("Redis disabled, rate limiting and stats cache are off")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	translationService := service.NewTranslationService(dispatcher, translationRepo)
	sessionService := service.NewSessionService(sessionRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	adminService := service.NewAdminService(userRepo, statsRepo, statsCache)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	translationHandler := handler.NewTranslationHandler(translationService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	adminHandler := handler.NewAdminHandler(adminService, feedbackService)

	authMiddleware := customMiddleware.NewAuthMiddleware(authService)

	readiness := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		readiness["redis"] = redisClient
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handler.Root)
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(readiness))

		// Auth routes (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Group(func(r chi.Router) {
				if rateLimitMiddleware != nil {
					r.Use(rateLimitMiddleware.Limit)
				}
				r.Post("/translate", translationHandler.Translate)
			})

			r.Route("/translations", func(r chi.Router) {
				r.Get("/history", translationHandler.History)
				r.Delete("/{id}", translationHandler.Delete)
			})

			r.Route("/live-session", func(r chi.Router) {
				r.Post("/start", sessionHandler.Start)
				r.Post("/{id}/message", sessionHandler.AddMessage)
				r.Post("/{id}/end", sessionHandler.End)
				r.Get("/{id}/messages", sessionHandler.Messages)
			})

			r.Post("/feedback", feedbackHandler.Submit)
			r.Get("/feedback", feedbackHandler.List)

			r.Get("/settings/accessibility", settingsHandler.Get)
			r.Put("/settings/accessibility", settingsHandler.Update)

			// Admin routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(customMiddleware.RequireAdmin)

				r.Get("/users", adminHandler.Users)
				r.Patch("/users/{id}", adminHandler.UpdateUser)
				r.Get("/stats", adminHandler.Stats)
				r.Get("/feedback", adminHandler.Feedback)
				r.Put("/feedback/{id}/status", adminHandler.UpdateFeedbackStatus)
			})
		})
	})

	return r
}
