// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand initializes a config file in the working directory
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a starter config.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles the OAuth2 token lifecycle
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authorization and token management",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Authorize with the provider using OAuth2",
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show the current token state",
				Action: r.AuthStatus,
			},
			{
				Name:   "refresh",
				Usage:  "Force a token refresh",
				Action: r.AuthRefresh,
			},
		},
	}
}

// searchCommand runs keyword searches within one item category
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "keyword",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Item category: track, album, artist, or playlist",
				Value:   "track",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Search,
	}
}

// getCommand looks up a single catalog item by ID
func getCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Look up a catalog item by ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Item category: track, album, artist, or playlist",
				Value:   "track",
			},
			&cli.StringFlag{
				Name:  "owner",
				Usage: "Owner user ID (playlists only)",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Get,
	}
}

// libraryCommand manages the user's saved items
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Saved library operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved items",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Item category: track, album, or playlist",
						Value:   "track",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Page size for saved tracks (1-50)",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Page offset for saved tracks",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.LibraryList,
			},
			{
				Name:  "save",
				Usage: "Save tracks to the library",
				Arguments: []cli.Argument{
					&cli.StringArgs{
						Name: "ids",
						Max:  -1,
					},
				},
				Action: r.LibrarySave,
			},
			{
				Name:  "remove",
				Usage: "Remove tracks from the library",
				Arguments: []cli.Argument{
					&cli.StringArgs{
						Name: "ids",
						Max:  -1,
					},
				},
				Action: r.LibraryRemove,
			},
			{
				Name:  "contains",
				Usage: "Check whether tracks are saved",
				Arguments: []cli.Argument{
					&cli.StringArgs{
						Name: "ids",
						Max:  -1,
					},
				},
				Action: r.LibraryContains,
			},
		},
	}
}

// tuiCommand launches the interactive browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse search results or the saved library interactively",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "keyword",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Item category: track, album, artist, or playlist",
				Value:   "track",
			},
			&cli.BoolFlag{
				Name:  "library",
				Usage: "Browse the saved library instead of searching",
			},
		},
		Action: r.TUI,
	}
}
