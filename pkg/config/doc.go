// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for tag-driven parsing:
//
//	type Config struct {
//	    Env      string `env:"STRKIT_ENV" envDefault:"development"`
//	    LogLevel string `env:"STRKIT_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once and cached for the life of the
// process; ResetCache clears the cache in tests. Failed parses are not cached.
//
// Errors are joined with a package sentinel, so callers can check them with
// errors.Is(err, config.ErrParsingConfig).
package config
