// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - An optional .env file in the working directory is read once, on the
//     first Load. LoadEnv reads additional files explicitly.
//   - Load parses the environment into a struct using `env` field tags.
//   - Each configuration type is parsed once and cached by type; Reload
//     re-parses after the environment changed.
//
// # Usage
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Errors
//
// Sentinel errors can be matched with errors.Is: ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer and ErrLoadingEnvFile.
//
// ResetCache drops every cached value and is meant for tests.
package config
