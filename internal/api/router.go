package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bluecart/logistics-api/internal/api/handler"
	"github.com/bluecart/logistics-api/internal/api/middleware"
	"github.com/bluecart/logistics-api/internal/core/domain"
)

// Deps holds everything the router needs. Handlers are constructed by the
// caller so the wiring (repositories, services, transaction runner, event
// dispatcher) stays in one place in main.
type Deps struct {
	Shipments *handler.ShipmentHandler
	Hubs      *handler.HubHandler
	Routes    *handler.RouteHandler
	Users     *handler.UserHandler
	Auth      *handler.AuthHandler
	Events    *handler.EventHandler
	Analytics *handler.AnalyticsHandler

	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bluecart"))

	// --- Operational endpoints (no auth) ---
	health := handler.NewHealthHandler()
	ready := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", health.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", ready.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public routes ---
	e.POST("/auth/login", d.Auth.Login)
	e.GET("/v1/track/:tracking_number", d.Shipments.Track)
	e.GET("/v1/shipments/quote", d.Shipments.Quote)

	// --- Authenticated routes ---
	auth := middleware.Auth(d.JWTSecret)
	v1 := e.Group("/v1", auth)

	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleHubManager, domain.RoleOperations)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	shipments := v1.Group("/shipments")
	shipments.POST("", d.Shipments.Create)
	shipments.GET("", d.Shipments.List)
	shipments.GET("/:id", d.Shipments.Get)
	shipments.PATCH("/:id", d.Shipments.Update)
	shipments.DELETE("/:id", d.Shipments.Delete, staff)
	shipments.POST("/:id/events", d.Shipments.RecordEvent)

	hubs := v1.Group("/hubs")
	hubs.POST("", d.Hubs.Create, staff)
	hubs.GET("", d.Hubs.List)
	hubs.GET("/:id", d.Hubs.Get)
	hubs.PATCH("/:id", d.Hubs.Update, staff)
	hubs.DELETE("/:id", d.Hubs.Delete, adminOnly)
	hubs.POST("/:id/shipments/:shipment_id", d.Hubs.Assign, staff)
	hubs.DELETE("/:id/shipments/:shipment_id", d.Hubs.Release, staff)

	routes := v1.Group("/routes")
	routes.POST("", d.Routes.Create, staff)
	routes.GET("", d.Routes.List)
	routes.GET("/:id", d.Routes.Get)
	routes.DELETE("/:id", d.Routes.Delete, staff)
	routes.POST("/:id/stops/:index/complete", d.Routes.AdvanceStop)
	routes.PATCH("/:id/driver", d.Routes.ReassignDriver, staff)

	users := v1.Group("/users", adminOnly)
	users.POST("", d.Users.Create)
	users.GET("", d.Users.List)
	users.GET("/:id", d.Users.Get)
	users.PATCH("/:id", d.Users.Update)
	users.DELETE("/:id", d.Users.Delete)

	events := v1.Group("/events")
	events.POST("", d.Events.Receive)
	events.POST("/batch", d.Events.ReceiveBatch)

	v1.GET("/analytics/dashboard", d.Analytics.Dashboard, staff)

	return e
}
