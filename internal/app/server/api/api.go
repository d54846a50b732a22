//POST   /api/auth/sign-up/email       # Register (public, origin-checked)
//POST   /api/auth/sign-in/email       # Sign in (public, origin-checked)
//POST   /api/auth/sign-out            # Sign out (auth)
//GET    /api/auth/get-session         # Current session (auth)
//GET    /api/service-records          # List records (auth)
//POST   /api/service-records          # Create record (auth)
//GET    /api/service-records/{id}     # Get record (auth)
//PUT    /api/service-records/{id}     # Update record (auth)
//DELETE /api/service-records/{id}     # Delete record (auth)
//GET    /api/v1/health                # Health check (public)

package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	authAPI "servicelog/internal/app/server/api/http/auth"
	healthAPI "servicelog/internal/app/server/api/http/health"
	"servicelog/internal/app/server/api/http/middleware"
	authMW "servicelog/internal/app/server/api/http/middleware/auth"
	loggerMW "servicelog/internal/app/server/api/http/middleware/logger"
	originMW "servicelog/internal/app/server/api/http/middleware/origin"
	recordsAPI "servicelog/internal/app/server/api/http/records"
	"servicelog/internal/app/server/config"
	"servicelog/internal/domain/servicerecord"
	"servicelog/internal/domain/session"
	"servicelog/internal/domain/user"
	"servicelog/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Auth    *authAPI.Handler
	Records *recordsAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Origin"},
		AllowCredentials: true,
	}))

	humaConfig := huma.DefaultConfig("ServiceLog API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookie": {Type: "apiKey", In: "cookie", Name: authMW.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Records.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, cfg.Session.TTL, log)

	authMiddleware := authMW.New(sessionService, log)
	originMiddleware := originMW.New(log, cfg.Server.FrontendURL)
	loggerMiddleware := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMiddleware.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMiddleware.Middleware())
	middlewares.Add(originMiddleware.Middleware())
	authPublic := middlewares.GetAllAndClear()
	middlewares.Add(loggerMiddleware.Middleware())
	middlewares.Add(originMiddleware.Middleware())
	middlewares.Add(authMiddleware.Middleware())
	authProtected := middlewares.GetAllAndClear()
	authHandler := authAPI.NewHandler(userService, sessionService, log, authPublic, authProtected)

	recordRepo := postgres.NewRecordRepository(pool, log)
	recordService := servicerecord.NewService(recordRepo, log)
	middlewares.Add(loggerMiddleware.Middleware())
	middlewares.Add(authMiddleware.Middleware())
	recordsHandler := recordsAPI.NewHandler(recordService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Auth:    authHandler,
		Records: recordsHandler,
	}
}
