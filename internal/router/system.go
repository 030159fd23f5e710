package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/handler"
	"github.com/gracelogistics/backend/internal/server"
)

// registerSystemRoutes registers endpoints that are not business logic.
// The health endpoint lives under /api so the frontend can reach it through
// the same reverse-proxy rule as everything else. It can be switched off
// entirely via the health_checks config block.
func registerSystemRoutes(e *echo.Echo, s *server.Server, h *handler.Handlers) {
	if !s.Config.Observability.HealthChecks.Enabled {
		return
	}
	e.GET("/api/health", h.Health.CheckHealth)
}
