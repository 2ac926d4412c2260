package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/audiomart/catalog-api/docs"
	"github.com/audiomart/catalog-api/internal/api/handler"
	"github.com/audiomart/catalog-api/internal/api/middleware"
	"github.com/audiomart/catalog-api/internal/core/service"
	catalogmongo "github.com/audiomart/catalog-api/internal/infrastructure/db/mongo"
	catalogredis "github.com/audiomart/catalog-api/internal/infrastructure/db/redis"
)

// Options carries everything the router needs to wire its dependencies.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	productRepo := catalogmongo.NewProductRepository(db)
	userRepo := catalogmongo.NewUserRepository(db)
	idemStore := catalogredis.NewIdempotencyStore(rdb)

	productService := service.NewProductService(productRepo, idemStore, opts.Logger)
	userService := service.NewUserService(userRepo, opts.Logger)
	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL, opts.Logger)

	productHandler := handler.NewProductHandler(productService)
	reviewHandler := handler.NewReviewHandler(productService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(opts.JWTSecret)

	// --- Products ---
	e.POST("/add", productHandler.Create, authRequired)
	e.GET("/earphone", productHandler.Search)
	e.GET("/earphone/:id", productHandler.Get)
	e.PUT("/earphone/:id", productHandler.Update, authRequired)
	e.DELETE("/earphone/:id", productHandler.Delete, authRequired)

	// --- Reviews (nested under a product) ---
	e.POST("/earphone/:id/review", reviewHandler.Create)
	e.GET("/earphone/:id/review", reviewHandler.List)
	e.PUT("/earphone/:id/review/:reviewid", reviewHandler.Update)
	e.DELETE("/earphone/:id/review/:reviewid", reviewHandler.Delete)

	// --- Users & auth ---
	e.GET("/user", userHandler.List)
	e.GET("/user/:id", userHandler.Get)
	e.GET("/user/:id/:email/review", userHandler.Reviews)
	e.PUT("/user/:id", userHandler.Update, authRequired)
	e.DELETE("/user/:id", userHandler.Delete, authRequired)
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Operability ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
