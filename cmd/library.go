package main

import (
	"context"
	"fmt"

	"github.com/thornlake/spotline/internal/shared"
	"github.com/urfave/cli/v3"
)

// LibraryList lists the user's saved items of one category.
//
// Tracks page with --limit and --offset; other categories list the first
// page the provider returns.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	itemType := cmd.String("type")

	if itemType == "track" || itemType == "tracks" {
		page, err := r.client.SavedTracks(ctx, cmd.Int("limit"), cmd.Int("offset"))
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			return r.writeJSON(page, cmd.Bool("pretty"))
		}

		r.writePlain("Saved tracks %d-%d of %d:\n\n", page.Offset+1, page.Offset+len(page.Items), page.Total)
		for i, saved := range page.Items {
			r.writeEntity(page.Offset+i+1, saved.Track)
		}
		return nil
	}

	item, err := libraryItemFor(itemType)
	if err != nil {
		return err
	}

	entities, err := r.client.Library(ctx, item)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entities, cmd.Bool("pretty"))
	}

	r.writePlain("Saved %s (%d):\n\n", item.Kind().Plural(), len(entities))
	for i, e := range entities {
		r.writeEntity(i+1, e)
	}

	return nil
}

// LibrarySave adds tracks to the user's library.
func (r *Runner) LibrarySave(ctx context.Context, cmd *cli.Command) error {
	ids := cmd.StringArgs("ids")
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one track ID is required", shared.ErrMissingArgument)
	}

	if err := r.client.SaveTracks(ctx, ids...); err != nil {
		return err
	}

	return r.writePlain("✓ Saved %d track(s)\n", len(ids))
}

// LibraryRemove removes tracks from the user's library.
func (r *Runner) LibraryRemove(ctx context.Context, cmd *cli.Command) error {
	ids := cmd.StringArgs("ids")
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one track ID is required", shared.ErrMissingArgument)
	}

	if err := r.client.RemoveTracks(ctx, ids...); err != nil {
		return err
	}

	return r.writePlain("✓ Removed %d track(s)\n", len(ids))
}

// LibraryContains reports library membership for each track ID.
func (r *Runner) LibraryContains(ctx context.Context, cmd *cli.Command) error {
	ids := cmd.StringArgs("ids")
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one track ID is required", shared.ErrMissingArgument)
	}

	contained, err := r.client.ContainsTracks(ctx, ids...)
	if err != nil {
		return err
	}

	for i, id := range ids {
		if contained[i] {
			r.writePlain("✓ %s is saved\n", id)
		} else {
			r.writePlain("✗ %s is not saved\n", id)
		}
	}

	return nil
}
