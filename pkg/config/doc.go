// Package config provides a type-safe, cached way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// values are read from the process environment (with an optional .env file
// fallback) and parsed into any annotated Go struct. Each configuration type
// is parsed once per process and served from an in-memory cache afterwards.
//
// # Usage
//
// Annotate a struct with `env` tags and load it:
//
//	type APIConfig struct {
//	    BaseURL string        `env:"API_BASE_URL,required"`
//	    Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg APIConfig
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Sentinel errors can be matched with errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrNilPointer    – nil pointer passed to Load.
//
// Use ResetCache in tests that change the environment between loads.
package config
