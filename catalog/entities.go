package catalog

// Entity is any decoded catalog object. The concrete types are [Track],
// [Album], [Artist], and [Playlist].
type Entity interface {
	EntityKind() Kind
}

// Image represents an image resource attached to an entity.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type externalIDs struct {
	ISRC string `json:"isrc"`
}

// Artist represents a catalog artist.
type Artist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
	Images []Image  `json:"images"`
	URI    string   `json:"uri"`
}

func (Artist) EntityKind() Kind { return KindArtist }

// Album represents a catalog album.
type Album struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []Artist `json:"artists"`
	ReleaseDate string   `json:"release_date"`
	TotalTracks int      `json:"total_tracks"`
	Images      []Image  `json:"images"`
	URI         string   `json:"uri"`
}

func (Album) EntityKind() Kind { return KindAlbum }

// Track represents a catalog track.
type Track struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Artists     []Artist    `json:"artists"`
	Album       Album       `json:"album"`
	DurationMS  int         `json:"duration_ms"`
	Explicit    bool        `json:"explicit"`
	ExternalIDs externalIDs `json:"external_ids"`
	Popularity  int         `json:"popularity"`
	URI         string      `json:"uri"`
}

func (Track) EntityKind() Kind { return KindTrack }

// Owner identifies the user owning a playlist.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type playlistTracks struct {
	Total int `json:"total"`
}

// Playlist represents a catalog playlist.
type Playlist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       Owner          `json:"owner"`
	Public      bool           `json:"public"`
	Tracks      playlistTracks `json:"tracks"`
	Images      []Image        `json:"images"`
	URI         string         `json:"uri"`
}

func (Playlist) EntityKind() Kind { return KindPlaylist }

// SavedTrack is a track in the user's library with its save timestamp.
type SavedTrack struct {
	AddedAt string `json:"added_at"`
	Track   Track  `json:"track"`
}

// SavedAlbum is an album in the user's library with its save timestamp.
type SavedAlbum struct {
	AddedAt string `json:"added_at"`
	Album   Album  `json:"album"`
}

// SavedTracksPage is a paginated slice of the user's saved tracks.
type SavedTracksPage struct {
	Items    []SavedTrack `json:"items"`
	Total    int          `json:"total"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
}
