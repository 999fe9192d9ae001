package tokenstore

import (
	"context"

	"github.com/dmitrymomot/deskkit/pkg/apiclient"
)

// Chain checks a fixed ordered list of providers and returns the first
// non-empty token. Providers that fail or hold no token are skipped, so a
// broken primary store degrades to the next one instead of failing the call.
// When no provider yields a token, Chain returns an empty token and no error:
// requests simply go out unauthenticated.
type Chain []apiclient.TokenProvider

// NewChain creates a provider chain preserving the given fallback order.
func NewChain(providers ...apiclient.TokenProvider) Chain {
	return Chain(providers)
}

// Token returns the first non-empty token in chain order.
func (c Chain) Token(ctx context.Context) (string, error) {
	for _, p := range c {
		if p == nil {
			continue
		}
		token, err := p.Token(ctx)
		if err != nil {
			continue
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}
