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

	"github.com/retailrelay/commerce-api/internal/api/handler"
	"github.com/retailrelay/commerce-api/internal/api/middleware"
	"github.com/retailrelay/commerce-api/internal/core/domain"
	"github.com/retailrelay/commerce-api/internal/core/service"
	mongodb "github.com/retailrelay/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/retailrelay/commerce-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/retailrelay/commerce-api/internal/infrastructure/http/handlers"
	"github.com/retailrelay/commerce-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	requireAuth := middleware.Auth(tokenService)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)
	limiter := redisdb.NewRateLimiter(rdb, log)
	authThrottle := middleware.RateLimit(limiter, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow)

	// --- API routes ---
	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register, authThrottle)
	auth.POST("/login", authHandler.Login, authThrottle)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/profile", authHandler.Profile, requireAuth)

	products := v1.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, requireAuth, requireAdmin)
	products.PUT("/:id", productHandler.Update, requireAuth, requireAdmin)
	products.DELETE("/:id", productHandler.Delete, requireAuth, requireAdmin)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
