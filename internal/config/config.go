package config

import (
	"crowdfund/internal/config/configs"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the transaction journal database. Environment
	// variables prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Ledger configures the node and the contract module. Environment
	// variables prefixed with LEDGER_ will populate this struct.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`

	// Metrics configures the Prometheus endpoint. Environment variables
	// prefixed with METRICS_ will populate this struct.
	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config. It
// fails when a required variable such as LEDGER_MODULE_ADDRESS is missing
// or a value does not parse.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
