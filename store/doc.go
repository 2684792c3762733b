// Package store provides the persistence backends for [auth.Manager]: a
// JSON-file store that patches token fields into an existing document, a
// SQLite-backed preference store keeping the token under a fixed key, and a
// loader for application credentials with an optional fallback path.
//
// All backends follow the same contract: Load reports absence or corruption
// as nil (never an error), Save reports write failures and leaves the
// handling policy to the Manager.
package store
