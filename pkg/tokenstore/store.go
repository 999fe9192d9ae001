package tokenstore

import (
	"context"
	"sync"
)

// Static is a fixed token. Useful for tests and single-session tools.
type Static string

// Token returns the static token value.
func (s Static) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// Memory is a mutable in-process token holder, safe for concurrent use.
// It plays the role of a session-scoped store: set after login, cleared on
// logout.
type Memory struct {
	mu    sync.RWMutex
	token string
}

// NewMemory creates an in-memory token store.
func NewMemory() *Memory {
	return &Memory{}
}

// Token returns the currently stored token, empty when unset.
func (m *Memory) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

// Set replaces the stored token.
func (m *Memory) Set(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

// Clear removes the stored token.
func (m *Memory) Clear() {
	m.Set("")
}
