package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/dailyworkout/internal/cli"
	"github.com/julianstephens/dailyworkout/internal/storage"
	"github.com/julianstephens/dailyworkout/internal/storage/sqlite"
)

type InitCmd struct {
	Force bool `help:"Delete an existing database file before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized workout storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

// reset removes a file-backed store. Server backends are left alone.
func (c *InitCmd) reset(ctx *cli.Context) error {
	switch ctx.Store.(type) {
	case *sqlite.Store, *storage.JSONStore:
	default:
		return fmt.Errorf("--force only applies to file storage, not %s", ctx.Store.GetConfigPath())
	}

	path := ctx.Store.GetConfigPath()

	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}
