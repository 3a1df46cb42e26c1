package configs

// Metrics configures the Prometheus endpoint of the HTTP server.
type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}
