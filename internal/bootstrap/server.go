package bootstrap

import (
	"context"
	"net/http"
	"time"

	"flightdesk/api"
	"flightdesk/config"
	"flightdesk/pkg/logger"
	"flightdesk/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers bundles every route group the server mounts.
type Handlers struct {
	Flights  *api.FlightHandler
	Airports *api.AirportHandler
	Users    *api.UserHandler
	Admins   *api.AdminHandler
	Bookings *api.BookingHandler
	States   *api.StateHandler
	Events   *api.EventHandler
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Metrics, h Handlers) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, log, m, h),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter assembles the gin engine: middleware, the /api route groups,
// metrics and the swagger UI.
func NewRouter(cfg *config.Config, log logger.Logger, m *metrics.Metrics, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log))
	if m != nil {
		router.Use(Measure(m))
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Flight API!")
	})

	apiGroup := router.Group("/api")
	h.Flights.Register(apiGroup.Group("/flights"))
	h.Airports.Register(apiGroup.Group("/iata-codes"))
	h.Bookings.Register(apiGroup.Group("/bookings"))
	h.States.Register(apiGroup.Group("/states"))
	h.Events.Register(apiGroup.Group("/events"))
	// users and admins register their own subpaths: they also own the
	// /api/login and /api/admin/login routes.
	h.Users.Register(apiGroup)
	h.Admins.Register(apiGroup)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
