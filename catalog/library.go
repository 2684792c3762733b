package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Library lists the user's saved items of one category.
func (c *Client) Library(ctx context.Context, item LibraryItem) ([]Entity, error) {
	var body []byte
	if err := c.do(ctx, http.MethodGet, item.libraryPath(), nil, &body); err != nil {
		return nil, err
	}
	return item.decodeLibrary(body)
}

// SavedTracks retrieves a page of the user's saved tracks. limit is clamped
// to the provider's 1..50 window.
func (c *Client) SavedTracks(ctx context.Context, limit, offset int) (*SavedTracksPage, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxIDsPerRequest {
		limit = maxIDsPerRequest
	}

	query := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}

	var page SavedTracksPage
	if err := c.do(ctx, http.MethodGet, "/me/tracks", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SaveTracks adds tracks to the user's library.
func (c *Client) SaveTracks(ctx context.Context, ids ...string) error {
	query, err := idsQuery(ids)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/me/tracks", query, nil)
}

// RemoveTracks removes tracks from the user's library.
func (c *Client) RemoveTracks(ctx context.Context, ids ...string) error {
	query, err := idsQuery(ids)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/me/tracks", query, nil)
}

// ContainsTracks reports library membership for each id, in input order.
func (c *Client) ContainsTracks(ctx context.Context, ids ...string) ([]bool, error) {
	query, err := idsQuery(ids)
	if err != nil {
		return nil, err
	}

	var contained []bool
	if err := c.do(ctx, http.MethodGet, "/me/tracks/contains", query, &contained); err != nil {
		return nil, err
	}

	if len(contained) != len(ids) {
		return nil, fmt.Errorf("%w: expected %d membership flags, got %d", ErrDecodeFailed, len(ids), len(contained))
	}
	return contained, nil
}

// ContainsTrack reports whether a single track is in the user's library.
func (c *Client) ContainsTrack(ctx context.Context, id string) (bool, error) {
	contained, err := c.ContainsTracks(ctx, id)
	if err != nil {
		return false, err
	}
	if len(contained) == 0 {
		return false, ErrEmptyResult
	}
	return contained[0], nil
}
