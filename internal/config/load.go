package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Environment variable names read by Load. They match the variables the
// deployment environment has always provided (PORT, DATABASE_URL, ...).
const (
	envPort                 = "PORT"
	envLogLevel             = "LOG_LEVEL"
	envDatabaseURL          = "DATABASE_URL"
	envJWTSecret            = "JWT_SECRET"
	envTokenLifetimeMinutes = "JWT_EXPIRATION_MINUTES"
)

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults: the original deployment listened on 3000 and issued
	// one-hour tokens.
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	// Bind each config key to its environment variable.
	bindings := map[string]string{
		"server.port":                 envPort,
		"server.log_level":            envLogLevel,
		"database.url":                envDatabaseURL,
		"auth.jwt_secret":             envJWTSecret,
		"auth.token_lifetime_minutes": envTokenLifetimeMinutes,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
