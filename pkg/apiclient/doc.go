// Package apiclient provides the shared HTTP core for the deskkit service
// wrappers: URL construction from a single configured base URL, bearer token
// authentication via an injected TokenProvider, JSON encoding/decoding, and
// uniform error mapping for non-2xx responses.
//
// # Configuration
//
// The base URL is resolved once at startup; its absence is a fatal
// configuration error raised before any network call:
//
//	var cfg apiclient.Config
//	config.MustLoad(&cfg)
//
//	client, err := apiclient.New(cfg,
//	    apiclient.WithTokenProvider(tokens),
//	)
//
// # Error Mapping
//
// Non-2xx responses are parsed as JSON first; the body's "message" field (if
// present) becomes the error text, otherwise the per-call fallback applies:
//
//	var user User
//	err := client.Get(ctx, "/profile/me", nil, &user, "Failed to fetch profile")
//	var apiErr *apiclient.APIError
//	if errors.As(err, &apiErr) {
//	    // apiErr.StatusCode, apiErr.Message
//	}
//
// No retries and no backoff: every call is all-or-nothing and failures
// propagate directly to the caller.
package apiclient
