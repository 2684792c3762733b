package catalog

import (
	"encoding/json"
	"fmt"
)

// Kind tags the four catalog item categories.
type Kind int

const (
	KindTrack Kind = iota
	KindAlbum
	KindArtist
	KindPlaylist
)

// String returns the canonical provider spelling of the kind, as used in
// the search `type` parameter.
func (k Kind) String() string {
	switch k {
	case KindTrack:
		return "track"
	case KindAlbum:
		return "album"
	case KindArtist:
		return "artist"
	case KindPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Plural returns the path segment used by lookup and library URLs.
func (k Kind) Plural() string {
	switch k {
	case KindTrack:
		return "tracks"
	case KindAlbum:
		return "albums"
	case KindArtist:
		return "artists"
	case KindPlaylist:
		return "playlists"
	default:
		return "unknown"
	}
}

// SearchItem is a searchable item category: a type tag plus decoding of the
// provider's search envelope for that category. The set of implementations
// is closed: [Tracks], [Albums], [Artists], [Playlists].
type SearchItem interface {
	Kind() Kind
	decodeSearch(data []byte) ([]Entity, error)
}

// LibraryItem is an item category that can appear in the user's library:
// a type tag, the library collection path, and decoding of the library
// listing. The set of implementations is closed: [Tracks], [Albums],
// [Playlists].
type LibraryItem interface {
	Kind() Kind
	libraryPath() string
	decodeLibrary(data []byte) ([]Entity, error)
}

var (
	// Tracks is the track item category.
	Tracks trackItem
	// Albums is the album item category.
	Albums albumItem
	// Artists is the artist item category. Artists are searchable and
	// addressable but have no library collection in this client.
	Artists artistItem
	// Playlists is the playlist item category.
	Playlists playlistItem
)

var (
	_ SearchItem  = Tracks
	_ SearchItem  = Albums
	_ SearchItem  = Artists
	_ SearchItem  = Playlists
	_ LibraryItem = Tracks
	_ LibraryItem = Albums
	_ LibraryItem = Playlists
)

type trackItem struct{}

func (trackItem) Kind() Kind          { return KindTrack }
func (trackItem) libraryPath() string { return "/me/tracks" }

func (trackItem) decodeSearch(data []byte) ([]Entity, error) {
	var envelope struct {
		Tracks struct {
			Items []Track `json:"items"`
		} `json:"tracks"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entities := make([]Entity, len(envelope.Tracks.Items))
	for i, item := range envelope.Tracks.Items {
		entities[i] = item
	}
	return entities, nil
}

func (trackItem) decodeLibrary(data []byte) ([]Entity, error) {
	var page SavedTracksPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entities := make([]Entity, len(page.Items))
	for i, item := range page.Items {
		entities[i] = item.Track
	}
	return entities, nil
}

type albumItem struct{}

func (albumItem) Kind() Kind          { return KindAlbum }
func (albumItem) libraryPath() string { return "/me/albums" }

func (albumItem) decodeSearch(data []byte) ([]Entity, error) {
	var envelope struct {
		Albums struct {
			Items []Album `json:"items"`
		} `json:"albums"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entities := make([]Entity, len(envelope.Albums.Items))
	for i, item := range envelope.Albums.Items {
		entities[i] = item
	}
	return entities, nil
}

func (albumItem) decodeLibrary(data []byte) ([]Entity, error) {
	var page struct {
		Items []SavedAlbum `json:"items"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entities := make([]Entity, len(page.Items))
	for i, item := range page.Items {
		entities[i] = item.Album
	}
	return entities, nil
}

type artistItem struct{}

func (artistItem) Kind() Kind { return KindArtist }

func (artistItem) decodeSearch(data []byte) ([]Entity, error) {
	var envelope struct {
		Artists struct {
			Items []Artist `json:"items"`
		} `json:"artists"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entities := make([]Entity, len(envelope.Artists.Items))
	for i, item := range envelope.Artists.Items {
		entities[i] = item
	}
	return entities, nil
}

type playlistItem struct{}

func (playlistItem) Kind() Kind          { return KindPlaylist }
func (playlistItem) libraryPath() string { return "/me/playlists" }

func (playlistItem) decodeSearch(data []byte) ([]Entity, error) {
	var envelope struct {
		Playlists struct {
			Items []Playlist `json:"items"`
		} `json:"playlists"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entities := make([]Entity, len(envelope.Playlists.Items))
	for i, item := range envelope.Playlists.Items {
		entities[i] = item
	}
	return entities, nil
}

func (playlistItem) decodeLibrary(data []byte) ([]Entity, error) {
	var page struct {
		Items []Playlist `json:"items"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entities := make([]Entity, len(page.Items))
	for i, item := range page.Items {
		entities[i] = item
	}
	return entities, nil
}
