package catalog

import (
	"context"
	"net/http"
)

// Search runs a keyword search within one item category.
func (c *Client) Search(ctx context.Context, item SearchItem, keyword string) ([]Entity, error) {
	var body []byte
	if err := c.do(ctx, http.MethodGet, "/search", searchQuery(item, keyword), &body); err != nil {
		return nil, err
	}
	return item.decodeSearch(body)
}

// SearchTracks searches the track catalog.
func (c *Client) SearchTracks(ctx context.Context, keyword string) ([]Track, error) {
	entities, err := c.Search(ctx, Tracks, keyword)
	if err != nil {
		return nil, err
	}

	tracks := make([]Track, len(entities))
	for i, e := range entities {
		tracks[i] = e.(Track)
	}
	return tracks, nil
}

// SearchAlbums searches the album catalog.
func (c *Client) SearchAlbums(ctx context.Context, keyword string) ([]Album, error) {
	entities, err := c.Search(ctx, Albums, keyword)
	if err != nil {
		return nil, err
	}

	albums := make([]Album, len(entities))
	for i, e := range entities {
		albums[i] = e.(Album)
	}
	return albums, nil
}

// SearchArtists searches the artist catalog.
func (c *Client) SearchArtists(ctx context.Context, keyword string) ([]Artist, error) {
	entities, err := c.Search(ctx, Artists, keyword)
	if err != nil {
		return nil, err
	}

	artists := make([]Artist, len(entities))
	for i, e := range entities {
		artists[i] = e.(Artist)
	}
	return artists, nil
}

// SearchPlaylists searches the playlist catalog.
func (c *Client) SearchPlaylists(ctx context.Context, keyword string) ([]Playlist, error) {
	entities, err := c.Search(ctx, Playlists, keyword)
	if err != nil {
		return nil, err
	}

	playlists := make([]Playlist, len(entities))
	for i, e := range entities {
		playlists[i] = e.(Playlist)
	}
	return playlists, nil
}
