package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/thornlake/spotline/auth"
	"github.com/thornlake/spotline/catalog"
	"github.com/thornlake/spotline/internal/shared"
	"github.com/thornlake/spotline/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var app *auth.Application
	if loaded, err := store.LoadApplication(config.Credentials.Path, config.Credentials.FallbackPath); err == nil {
		app = loaded
	} else {
		logger.Debug("no application credentials loaded", "error", err)
	}

	manager := auth.NewManager(auth.Opts{
		Application: app,
		Store:       openStore(config, logger),
		Logger:      logger,
	})

	client := catalog.NewClient(catalog.ClientOpts{
		Manager: manager,
		Logger:  logger,
	})

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Manager: manager,
		Client:  client,
		Logger:  logger,
	})

	cmd := &cli.Command{
		Name:     "spotline",
		Usage:    "Search the music catalog and manage your saved library",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// openStore builds the token persistence backend selected by the config.
//
// A backend that fails to open degrades to no persistence rather than
// aborting startup: the manager then holds tokens in memory only.
func openStore(config *shared.Config, logger *log.Logger) auth.Store {
	switch config.Token.Backend {
	case "preferences":
		db, err := store.OpenDB(config.Token.Path)
		if err != nil {
			logger.Warn("failed to open preferences database", "path", config.Token.Path, "error", err)
			return nil
		}
		prefs, err := store.NewPrefStore(db)
		if err != nil {
			logger.Warn("failed to prepare preferences store", "error", err)
			return nil
		}
		return prefs
	default:
		return store.NewFileStore(config.Token.Path)
	}
}
