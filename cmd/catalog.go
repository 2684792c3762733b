package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/thornlake/spotline/catalog"
	"github.com/thornlake/spotline/internal/shared"
	"github.com/urfave/cli/v3"
)

// searchItemFor resolves a category name to its [catalog.SearchItem].
func searchItemFor(name string) (catalog.SearchItem, error) {
	switch strings.ToLower(name) {
	case "track", "tracks":
		return catalog.Tracks, nil
	case "album", "albums":
		return catalog.Albums, nil
	case "artist", "artists":
		return catalog.Artists, nil
	case "playlist", "playlists":
		return catalog.Playlists, nil
	default:
		return nil, fmt.Errorf("%w: unknown item type %q", shared.ErrInvalidArgument, name)
	}
}

// libraryItemFor resolves a category name to its [catalog.LibraryItem].
// Artists have no library collection.
func libraryItemFor(name string) (catalog.LibraryItem, error) {
	switch strings.ToLower(name) {
	case "track", "tracks":
		return catalog.Tracks, nil
	case "album", "albums":
		return catalog.Albums, nil
	case "playlist", "playlists":
		return catalog.Playlists, nil
	default:
		return nil, fmt.Errorf("%w: no library collection for item type %q", shared.ErrInvalidArgument, name)
	}
}

// Search runs a keyword search and prints the results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	keyword := cmd.StringArg("keyword")
	if keyword == "" {
		return fmt.Errorf("%w: search keyword is required", shared.ErrMissingArgument)
	}

	item, err := searchItemFor(cmd.String("type"))
	if err != nil {
		return err
	}

	r.logger.Info("searching catalog", "type", item.Kind(), "keyword", keyword)

	entities, err := r.client.Search(ctx, item, keyword)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entities, cmd.Bool("pretty"))
	}

	r.writePlain("Found %d %s:\n\n", len(entities), item.Kind().Plural())
	for i, e := range entities {
		r.writeEntity(i+1, e)
	}

	return nil
}

// Get looks up a single catalog item by ID and prints it as JSON.
func (r *Runner) Get(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: item ID is required", shared.ErrMissingArgument)
	}

	pretty := cmd.Bool("pretty")

	switch strings.ToLower(cmd.String("type")) {
	case "track", "tracks":
		track, err := r.client.GetTrack(ctx, id)
		if err != nil {
			return err
		}
		return r.writeJSON(track, pretty)
	case "album", "albums":
		album, err := r.client.GetAlbum(ctx, id)
		if err != nil {
			return err
		}
		return r.writeJSON(album, pretty)
	case "artist", "artists":
		artist, err := r.client.GetArtist(ctx, id)
		if err != nil {
			return err
		}
		return r.writeJSON(artist, pretty)
	case "playlist", "playlists":
		owner := cmd.String("owner")
		if owner == "" {
			return fmt.Errorf("%w: --owner is required for playlist lookup", shared.ErrMissingArgument)
		}
		playlist, err := r.client.GetPlaylist(ctx, owner, id)
		if err != nil {
			return err
		}
		return r.writeJSON(playlist, pretty)
	default:
		return fmt.Errorf("%w: unknown item type %q", shared.ErrInvalidArgument, cmd.String("type"))
	}
}

// writeEntity prints one numbered entity in the list format.
func (r *Runner) writeEntity(n int, e catalog.Entity) {
	switch v := e.(type) {
	case catalog.Track:
		r.writePlain("%d. %s\n", n, v.Name)
		r.writePlain("   Artists: %s\n", artistNames(v.Artists))
		if v.Album.Name != "" {
			r.writePlain("   Album: %s\n", v.Album.Name)
		}
		r.writePlain("   ID: %s\n\n", v.ID)
	case catalog.Album:
		r.writePlain("%d. %s\n", n, v.Name)
		r.writePlain("   Artists: %s\n", artistNames(v.Artists))
		r.writePlain("   Tracks: %d\n", v.TotalTracks)
		r.writePlain("   ID: %s\n\n", v.ID)
	case catalog.Artist:
		r.writePlain("%d. %s\n", n, v.Name)
		if len(v.Genres) > 0 {
			r.writePlain("   Genres: %s\n", strings.Join(v.Genres, ", "))
		}
		r.writePlain("   ID: %s\n\n", v.ID)
	case catalog.Playlist:
		r.writePlain("%d. %s\n", n, v.Name)
		if v.Description != "" {
			r.writePlain("   Description: %s\n", v.Description)
		}
		r.writePlain("   Tracks: %d\n", v.Tracks.Total)
		r.writePlain("   ID: %s\n\n", v.ID)
	}
}

func artistNames(artists []catalog.Artist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
