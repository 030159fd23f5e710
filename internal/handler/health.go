package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/middleware"
	"github.com/gracelogistics/backend/internal/server"
)

// HealthHandler reports whether the service is up and whether its store is
// reachable. Monitors and the frontend's connectivity banner poll it.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth always answers 200: the process being able to respond is the
// health signal. The store's state is reported in the body so a MongoDB
// outage shows as "disconnected" instead of taking the endpoint down.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	timeout := h.server.Config.Observability.HealthChecks.Timeout

	start := time.Now()
	mongoState := "connected"
	if !h.server.DB.Connected(c.Request().Context(), timeout) {
		mongoState = "disconnected"

		logger.Warn().
			Dur("response_time", time.Since(start)).
			Msg("database health check failed")

		if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
			h.server.LoggerService.GetApplication().RecordCustomEvent(
				"HealthCheckError",
				map[string]interface{}{
					"check_type":       "database",
					"operation":        "health_check",
					"error_type":       "database_unhealthy",
					"response_time_ms": time.Since(start).Milliseconds(),
				},
			)
		}
	} else {
		logger.Debug().
			Dur("response_time", time.Since(start)).
			Msg("database health check passed")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"mongodb":   mongoState,
		"timestamp": time.Now().UTC(),
	})
}
