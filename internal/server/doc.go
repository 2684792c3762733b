// Package server provides the short-lived HTTP surface for the OAuth2
// authorization-code round-trip in the spotline CLI.
//
// [CallbackHandler] receives the provider's redirect, validates the state
// parameter (CSRF protection), and sends the captured authorization code
// through a channel. It processes exactly one callback; replays are
// rejected. The code exchange itself stays with auth.Manager so the token
// lifecycle has a single owner.
//
// [NewMux] assembles the server's routes from method-qualified patterns
// declared by each [Handler]. When the user runs `spotline auth login`, a
// temporary server starts on the configured host and port, captures the
// code, and shuts down.
package server
