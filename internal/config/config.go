package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration. Environment variables are
// parsed from the TURTLE_TRACK_ prefix, e.g. TURTLE_TRACK_HTTP_PORT.
type Config struct {
	// BuildTarget selects the deployment shape: "local" runs against
	// the in-memory seeded store, "cloud" against Postgres.
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// StoreDriver overrides the store implementation; "auto" derives
	// it from BuildTarget.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"auto"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// PostgresDSN is required when StoreDriver resolves to "postgres".
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// LocalStatePath is the SQLite file backing durable local state
	// (session, volunteer registry, nests). Empty derives a default
	// under the user home directory.
	LocalStatePath string `envconfig:"LOCAL_STATE_PATH" default:""`

	// Simulated CRUD latency, matching the mock delays of the UI this
	// service backs. Zero disables the delay (tests).
	TurtleLatencyMs int `envconfig:"TURTLE_LATENCY_MS" default:"300"`
	NestLatencyMs   int `envconfig:"NEST_LATENCY_MS" default:"500"`

	HealthIntervalSeconds   int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	BootstrapTimeoutSeconds int `envconfig:"BOOTSTRAP_TIMEOUT_SECONDS" default:"5"`
}

// ResolveDefaults validates BuildTarget and derives StoreDriver when
// set to "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDriver string
	switch c.BuildTarget {
	case "local":
		defaultDriver = "memory"
	case "cloud":
		defaultDriver = "postgres"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.StoreDriver == "" || c.StoreDriver == "auto" {
		c.StoreDriver = defaultDriver
	}
	switch c.StoreDriver {
	case "memory":
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("TURTLE_TRACK_POSTGRES_DSN is required for the postgres store")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	return nil
}

// New parses the environment and resolves derived defaults.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TURTLE_TRACK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HTTPAddr returns the HTTP listen address.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
