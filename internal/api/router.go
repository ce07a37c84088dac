package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gamegestor/catalog-api/docs"
	"github.com/gamegestor/catalog-api/internal/api/handler"
	"github.com/gamegestor/catalog-api/internal/api/middleware"
	"github.com/gamegestor/catalog-api/internal/core/auth"
	"github.com/gamegestor/catalog-api/internal/core/domain"
	"github.com/gamegestor/catalog-api/internal/core/service"
	"github.com/gamegestor/catalog-api/internal/infrastructure/config"
	mongodb "github.com/gamegestor/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gamegestor/catalog-api/internal/infrastructure/db/redis"
	"github.com/gamegestor/catalog-api/internal/infrastructure/upload"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *auth.TokenService, uploads *upload.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("gamegestor"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	gameRepo := mongodb.NewGameRepository(db)
	userService := service.NewUserService(userRepo, tokens, log)
	gameService := service.NewGameService(gameRepo, log)
	userHandler := handler.NewUserHandler(userService, uploads)
	gameHandler := handler.NewGameHandler(gameService)

	authRequired := middleware.Auth(tokens, log)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	limiter := redisdb.NewRateLimitStore(rdb, cfg.RateLimit.Window)
	throttled := middleware.RateLimit(limiter, cfg.RateLimit.Max, log)

	// --- Root banner ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "GameGestor API"})
	})

	// --- User routes ---
	e.POST("/usuarios/login", userHandler.Login, throttled)
	e.POST("/usuarios", userHandler.Register, throttled)
	e.GET("/usuarios", userHandler.List, authRequired)
	e.GET("/usuarios/:username", userHandler.Get, authRequired)
	e.PUT("/usuarios/:username", userHandler.Update, authRequired)
	e.DELETE("/usuarios/:username", userHandler.Delete, authRequired, adminOnly)

	// --- Game routes ---
	e.POST("/juegos", gameHandler.Create, authRequired)
	e.GET("/juegos", gameHandler.List, authRequired)
	e.GET("/juegos/:titulo", gameHandler.Get, authRequired)
	e.PUT("/juegos/:titulo", gameHandler.Update, authRequired)
	e.DELETE("/juegos/:titulo", gameHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
