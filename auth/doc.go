// Package auth implements the OAuth2 authorization-code flow against the
// Spotify accounts service: token exchange, refresh, persistence, and the
// expiry gate that guards every authenticated API call.
//
// The central type is [Manager]. A Manager owns exactly one [Token] at a
// time, loads it from a [Store] at construction, and re-persists it after
// every successful exchange or refresh. Callers never touch the token
// directly; they pass operations through [Manager.WithValidToken], which
// refreshes an expired token before running the operation.
package auth
