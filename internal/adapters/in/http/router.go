package http

import (
	"context"
	"log/slog"
	"net/http"

	"fleetdispatch/internal/generated/servers"
	"fleetdispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig holds everything NewRouter wires into echo.
type RouterConfig struct {
	Server   servers.ServerInterface
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Verifier *TokenVerifier

	// OpenAPI is the JSON form of the API description, served at
	// /openapi.json and through the Swagger UI.
	OpenAPI []byte

	// Health reports whether dependencies are reachable. Nil means always healthy.
	Health func(ctx context.Context) error

	// AllowOrigins for CORS. Empty disables the CORS middleware.
	AllowOrigins []string
}

// NewRouter builds the echo instance serving the task API and the ops endpoints.
func NewRouter(cfg RouterConfig) *echo.Echo {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = httpErrorHandler()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(scopedLogger(logger.With("component", "http")))
	e.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		e.Use(observeRequests(cfg.Metrics))
	}
	if len(cfg.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.AllowOrigins,
			AllowCredentials: true,
		}))
	}
	e.Use(AdminOnly(cfg.Verifier))

	e.GET("/health", func(c echo.Context) error {
		if cfg.Health != nil {
			if err := cfg.Health(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, servers.Error{
					Code:    http.StatusServiceUnavailable,
					Message: "Unhealthy",
				})
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})

	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	if len(cfg.OpenAPI) > 0 {
		doc := cfg.OpenAPI
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, doc)
		})

		registerSwaggerDoc(doc)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	servers.RegisterHandlers(e, cfg.Server)
	return e
}

// swaggerDoc feeds the Swagger UI from the embedded OpenAPI document.
type swaggerDoc struct {
	doc []byte
}

func (d swaggerDoc) ReadDoc() string {
	return string(d.doc)
}

func registerSwaggerDoc(doc []byte) {
	// swag keeps a process-wide registry and panics on duplicate names, so
	// repeated router construction (tests) only registers once.
	if _, err := swag.ReadDoc(swag.Name); err == nil {
		return
	}
	swag.Register(swag.Name, swaggerDoc{doc: doc})
}
