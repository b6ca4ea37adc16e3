package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/mealweek/internal/config"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

// Run writes the effective config, flag overrides included, and reports
// where plans are stored.
func (c *InitCmd) Run(ctx *Context) error {
	path := config.ExpandPath(ctx.ConfigPath)
	if path == "" {
		return fmt.Errorf("no config path given")
	}

	if _, err := os.Stat(path); err == nil && !c.Force {
		fmt.Fprintf(ctx.Out, "Config already exists at %s (use --force to overwrite)\n", path)
	} else {
		if err := ctx.Config.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(ctx.Out, "Wrote config to %s\n", path)
	}

	fmt.Fprintf(ctx.Out, "Plans are stored at %s\n", ctx.Store.GetConfigPath())
	return nil
}
