// Package tokenstore provides implementations of apiclient.TokenProvider,
// decoupling the HTTP wrappers from any particular persistence mechanism.
//
// Available stores:
//
//   - Static — fixed token, handy for tests and one-shot tools.
//   - Memory — mutable in-process holder, set after login, cleared on logout.
//   - RedisStore — token persisted in Redis across process restarts.
//   - Chain — fixed fallback order over other providers; the first non-empty
//     token wins, and an empty result means requests go out unauthenticated.
//
// # Usage
//
//	session := tokenstore.NewMemory()
//	persisted, _ := tokenstore.NewRedisStore(redisClient, "deskkit:session_token")
//
//	tokens := tokenstore.NewChain(session, persisted)
//	client := apiclient.MustNew(cfg, apiclient.WithTokenProvider(tokens))
package tokenstore
