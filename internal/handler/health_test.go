package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelogistics/backend/internal/config"
	"github.com/gracelogistics/backend/internal/database"
	"github.com/gracelogistics/backend/internal/server"
)

func TestCheckHealthReportsDisconnectedStore(t *testing.T) {
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Mongo: config.MongoConfig{
			URI:            "mongodb://127.0.0.1:1",
			Database:       "gracelog_test",
			ConnectTimeout: 1,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.HealthChecks.Timeout = 100 * time.Millisecond

	log := zerolog.Nop()
	db, err := database.New(cfg, &log)
	require.NoError(t, err)

	h := NewHealthHandler(&server.Server{Config: cfg, Logger: &log, DB: db})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	start := time.Now()
	require.NoError(t, h.CheckHealth(c))
	elapsed := time.Since(start)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "disconnected", body["mongodb"])
	assert.NotEmpty(t, body["timestamp"])

	// The probe is bounded by the configured health-check timeout, not by
	// the driver's server selection timeout.
	assert.Less(t, elapsed, 700*time.Millisecond)
}
