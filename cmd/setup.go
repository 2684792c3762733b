package main

import (
	"context"

	"github.com/thornlake/spotline/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter configuration file.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("✓ Created %s\n\n", path)
	r.writePlain("Edit it to point at your application credentials, then run: spotline auth login\n")

	return nil
}
