package catalog

import (
	"context"
	"net/http"
)

// GetTrack retrieves a single track by ID.
func (c *Client) GetTrack(ctx context.Context, id string) (*Track, error) {
	var track Track
	if err := c.do(ctx, http.MethodGet, lookupPath(KindTrack, "", id), nil, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// GetAlbum retrieves a single album by ID.
func (c *Client) GetAlbum(ctx context.Context, id string) (*Album, error) {
	var album Album
	if err := c.do(ctx, http.MethodGet, lookupPath(KindAlbum, "", id), nil, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// GetArtist retrieves a single artist by ID.
func (c *Client) GetArtist(ctx context.Context, id string) (*Artist, error) {
	var artist Artist
	if err := c.do(ctx, http.MethodGet, lookupPath(KindArtist, "", id), nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetPlaylist retrieves a playlist by owner and ID. Playlists are the one
// category addressed through their owning user.
func (c *Client) GetPlaylist(ctx context.Context, ownerID, id string) (*Playlist, error) {
	var playlist Playlist
	if err := c.do(ctx, http.MethodGet, lookupPath(KindPlaylist, ownerID, id), nil, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}
