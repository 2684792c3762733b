// Package catalog exposes typed operations against the Spotify Web API:
// search, item lookup, and the user's saved-tracks library. Every
// authenticated call is gated through [auth.Manager.WithValidToken], so a
// request is never dispatched with a known-expired token.
//
// Catalog item categories (track, album, artist, playlist) are modeled as
// closed capability values — [Tracks], [Albums], [Artists], [Playlists] —
// that carry their type tag, URL templates, and response decoding.
package catalog
