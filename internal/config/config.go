// Package config manages environment variables.
//
// It reads variables from the environment (optionally seeded from a `.env`
// file), maps them into structured Go types, and validates that required
// values are present so the app fails fast on bad or missing config.
//
// Env vars use the GRACELOG_ prefix and dot-nesting, e.g.
// GRACELOG_SERVER.PORT -> Config.Server.Port.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if one
	// exists, before anything reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// Observability and Email are pointers because both are optional; defaults
// are injected at load time when they are missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Mongo         MongoConfig          `koanf:"mongo" validate:"required"`
	Email         *EmailConfig         `koanf:"email"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// MongoConfig contains the document-store connection parameters.
//
// ConnectTimeout bounds server selection during startup only; individual
// queries are not given per-request deadlines beyond what callers set.
type MongoConfig struct {
	URI            string `koanf:"uri" validate:"required"`
	Database       string `koanf:"database" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"required"`
}

// EmailConfig configures submission-notification emails via Resend.
// When absent or without an API key, notifications are disabled and
// submissions are unaffected.
type EmailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	From         string `koanf:"from"`
	NotifyTo     string `koanf:"notify_to"`
}

// Enabled reports whether notification emails should be sent.
func (e *EmailConfig) Enabled() bool {
	return e != nil && e.ResendAPIKey != "" && e.NotifyTo != ""
}

// Load reads configuration from the environment, unmarshals it into Config,
// validates it, and applies defaults.
//
// It logs fatally on malformed or incomplete configuration: the process has
// no useful degraded mode without its config.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("GRACELOG_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GRACELOG_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so telemetry stays consistently
	// labeled no matter what the env provides.
	mainConfig.Observability.ServiceName = "gracelog"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
