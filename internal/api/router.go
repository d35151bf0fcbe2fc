package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/roomly/storefront-api/internal/api/handler"
	"github.com/roomly/storefront-api/internal/api/middleware"
	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
	"github.com/roomly/storefront-api/internal/core/service"
	pgrepo "github.com/roomly/storefront-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/roomly/storefront-api/internal/infrastructure/db/redis"
)

// Deps carries the externally constructed clients the router wires into
// handlers. Everything is built once at startup and passed down; no handler
// reaches for a global.
type Deps struct {
	PG        *pgxpool.Pool
	Redis     *redis.Client
	Identity  ports.IdentityClient
	Catalog   ports.CatalogClient
	Store     ports.ObjectStore
	Mailer    ports.Mailer
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	authRepo := pgrepo.NewAuthRepository(deps.PG)
	eventRepo := pgrepo.NewEventRepository(deps.PG)
	accessRepo := pgrepo.NewAccessRepository(deps.PG)
	searchCache := redisinfra.NewSearchCache(deps.Redis)

	authService := service.NewAuthService(deps.Identity, authRepo, deps.Mailer, deps.JWTSecret, 24*time.Hour, deps.Logger)
	catalogService := service.NewCatalogService(deps.Catalog, searchCache, deps.Logger)
	eventService := service.NewEventService(eventRepo, deps.Logger)
	accessService := service.NewAccessService(accessRepo, deps.Logger)
	mediaService := service.NewMediaService(deps.Store, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	eventHandler := handler.NewEventHandler(eventService)
	accessHandler := handler.NewAccessHandler(accessService)
	mediaHandler := handler.NewMediaHandler(mediaService)

	authMW := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RequireCapability(domain.CapabilityAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)

	// --- Catalog routes (public read) ---
	e.GET("/api/search", catalogHandler.Search)
	e.GET("/api/productDetails", catalogHandler.Detail)

	// --- Event routes: public listing, admin-gated mutation ---
	e.GET("/api/events", eventHandler.List)
	e.POST("/api/events", eventHandler.Create, authMW, adminOnly)
	e.PUT("/api/events/:id", eventHandler.Update, authMW, adminOnly)
	e.DELETE("/api/events/:id", eventHandler.Delete, authMW, adminOnly)

	// --- Premium access gate ---
	e.GET("/api/premium-access/check", accessHandler.Check, authMW)

	// --- Media ---
	e.POST("/api/mediaUploader", mediaHandler.SignUpload, authMW)
	e.GET("/api/mediaDownloader", mediaHandler.List, authMW)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.PG, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
