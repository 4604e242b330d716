package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vendly/auction-api/internal/api/handler"
	"github.com/vendly/auction-api/internal/api/middleware"
	"github.com/vendly/auction-api/internal/core/domain"
	"github.com/vendly/auction-api/internal/core/service"
	mongodb "github.com/vendly/auction-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vendly/auction-api/internal/infrastructure/db/redis"
	"github.com/vendly/auction-api/internal/infrastructure/queue"
	"github.com/vendly/auction-api/internal/pkg/config"
	"github.com/vendly/auction-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Background audit workers run until ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vendly"))

	// --- Dependencies ---
	codec, err := token.NewCodec(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTAlgorithm,
		time.Duration(cfg.Auth.TokenExpireHours)*time.Hour,
	)
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewClientProfileRepository(db)
	eventRepo := mongodb.NewAuthEventRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	auditService := service.NewAuditService(eventRepo)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, profileRepo, codec, throttle, dispatcher, log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo)
	authMiddleware := middleware.Auth(authService)

	// --- Root & auth routes ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/", healthHandler.Welcome)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/users/me", userHandler.Me, authMiddleware)
	e.GET("/users", userHandler.List, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Probes & metrics (no auth required) ---
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
