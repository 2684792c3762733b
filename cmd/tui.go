package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thornlake/spotline/catalog"
	"github.com/thornlake/spotline/internal/shared"
	"github.com/thornlake/spotline/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive browser over search results or the saved library.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	var title string
	var fetch ui.Fetcher

	if cmd.Bool("library") {
		item, err := libraryItemFor(cmd.String("type"))
		if err != nil {
			return err
		}
		title = fmt.Sprintf("Saved %s", item.Kind().Plural())
		fetch = func(ctx context.Context) ([]catalog.Entity, error) {
			return r.client.Library(ctx, item)
		}
	} else {
		keyword := cmd.StringArg("keyword")
		if keyword == "" {
			return fmt.Errorf("%w: search keyword is required (or pass --library)", shared.ErrMissingArgument)
		}
		item, err := searchItemFor(cmd.String("type"))
		if err != nil {
			return err
		}
		title = fmt.Sprintf("%s: %q", item.Kind().Plural(), keyword)
		fetch = func(ctx context.Context) ([]catalog.Entity, error) {
			return r.client.Search(ctx, item, keyword)
		}
	}

	model := ui.NewModel(ctx, title, fetch)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return model.Err()
}
