// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/handler"
	"github.com/gracelogistics/backend/internal/middleware"
	"github.com/gracelogistics/backend/internal/server"
)

// New builds the Echo instance: global middlewares first (ordering matters,
// tracing must wrap the context enhancer so trace ids are available to the
// request logger), then the route tables.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())

	registerAPIRoutes(e, h)
	registerSystemRoutes(e, s, h)

	return e
}
