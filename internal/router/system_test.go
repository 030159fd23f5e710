package router

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/gracelogistics/backend/internal/config"
	"github.com/gracelogistics/backend/internal/handler"
	"github.com/gracelogistics/backend/internal/server"
)

func healthRouteRegistered(e *echo.Echo) bool {
	for _, r := range e.Routes() {
		if r.Path == "/api/health" {
			return true
		}
	}
	return false
}

func TestSystemRoutesRespectHealthCheckToggle(t *testing.T) {
	newServer := func(enabled bool) *server.Server {
		cfg := &config.Config{Observability: config.DefaultObservabilityConfig()}
		cfg.Observability.HealthChecks.Enabled = enabled
		return &server.Server{Config: cfg}
	}

	h := &handler.Handlers{Health: handler.NewHealthHandler(&server.Server{})}

	on := echo.New()
	registerSystemRoutes(on, newServer(true), h)
	assert.True(t, healthRouteRegistered(on))

	off := echo.New()
	registerSystemRoutes(off, newServer(false), h)
	assert.False(t, healthRouteRegistered(off))
}
