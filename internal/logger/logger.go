// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for structured logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/gracelogistics/backend/internal/config"
)

// LoggerService owns the New Relic application instance.
//
// When New Relic is not configured (empty license key) the service still
// exists but GetApplication returns nil, and every consumer degrades to a
// no-op.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic agent from config.
//
// Agent init failure is reported but never fatal: observability must not be
// able to take the API down.
func NewLoggerService(cfg *config.Config, log *zerolog.Logger) *LoggerService {
	nr := cfg.Observability.NewRelic
	if nr.LicenseKey == "" {
		log.Info().Msg("New Relic license key not set, APM disabled")
		return &LoggerService{}
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"env": cfg.Observability.Environment}
		},
	}
	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize New Relic, continuing without APM")
		return &LoggerService{}
	}

	return &LoggerService{app: app}
}

// GetApplication returns the New Relic application, or nil when disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.app
}

// Shutdown flushes pending telemetry. Safe to call when APM is disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.app != nil {
		s.app.Shutdown(timeout)
	}
}

// New builds the application logger from the observability config.
//
// Console format is meant for local development; JSON everywhere else so log
// pipelines can parse output. When a New Relic application is provided and
// log forwarding is on, the JSON writer is wrapped so logs ship with linking
// metadata.
func New(cfg *config.Config, service *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	} else if service != nil && service.GetApplication() != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		out = zerologWriter.New(os.Stdout, service.GetApplication())
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Logger()
}

// WithTraceContext returns a child logger carrying the transaction's trace
// and span ids so log lines can be correlated with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}
	md := txn.GetTraceMetadata()
	return log.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}
