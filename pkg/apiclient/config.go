package apiclient

import "time"

// Config holds the shared REST client configuration.
// BaseURL is required: constructing a client without it is a configuration
// error surfaced before any network call is attempted.
type Config struct {
	BaseURL string        `env:"API_BASE_URL,required"` // e.g. "https://api.example.com/api"
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}
