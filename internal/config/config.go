package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the process-level application configuration surface.
// Simulation parameters live in Params; this struct only covers wiring
// concerns sourced from the environment.
type Config struct {
	Server     ServerConfig
	Simulation SimulationConfig
	Model      ModelConfig
	Reporting  ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// SimulationConfig holds options for the demand engine.
type SimulationConfig struct {
	// OverridesPath optionally points at a JSON document merged over the
	// default parameter set at startup.
	OverridesPath string
	// Seed overrides the parameter-set RNG seed when non-zero.
	Seed int64
}

// ModelConfig holds settings for the external regression model server. An
// empty BaseURL disables model-backed predictions.
type ModelConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	seed, err := strconv.ParseInt(getenvWithDefault("SIMULATION_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SIMULATION_SEED must be an integer: %w", err)
	}

	timeout, err := time.ParseDuration(getenvWithDefault("MODEL_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("MODEL_TIMEOUT must be a duration: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Simulation: SimulationConfig{
			OverridesPath: os.Getenv("SIMULATION_OVERRIDES_PATH"),
			Seed:          seed,
		},
		Model: ModelConfig{
			BaseURL: os.Getenv("MODEL_SERVER_URL"),
			Timeout: timeout,
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 6 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Los_Angeles"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Model.Timeout <= 0 {
		return errors.New("MODEL_TIMEOUT must be positive")
	}

	return nil
}

// BuildParams materializes the immutable simulation parameter set described
// by this configuration: defaults, then the override file, then the seed.
func (c *Config) BuildParams() (*Params, error) {
	params, err := DefaultParams().WithOverrideFile(c.Simulation.OverridesPath)
	if err != nil {
		return nil, err
	}
	if c.Simulation.Seed != 0 {
		withSeed := *params
		withSeed.Seed = c.Simulation.Seed
		params = &withSeed
	}
	return params, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
