// Package config loads the blockscan configuration from BLOCKSCAN_* environment
// variables and validates it.
package config

import (
	"time"

	"github.com/gabapcia/blockscan/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every environment variable name.
const envPrefix = "BLOCKSCAN"

// Config holds every runtime setting of the application.
type Config struct {
	// ExplorerURL is the base URL of the Esplora-compatible explorer.
	ExplorerURL string `envconfig:"EXPLORER_URL" default:"https://mempool.space" validate:"required,http_url"`

	// HTTPTimeout bounds a single upstream request.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s" validate:"gt=0"`

	// HTTPRetryMax is the number of transport-level retries per request.
	HTTPRetryMax int `envconfig:"HTTP_RETRY_MAX" default:"0" validate:"gte=0,lte=10"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=console json"`

	// TelemetryEnabled turns on OTLP/gRPC export of traces and metrics.
	// The exporters read the standard OTEL_EXPORTER_OTLP_* variables.
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"blockscan" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
