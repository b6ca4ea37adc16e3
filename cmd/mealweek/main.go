package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/mealweek/internal/cli"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/errors"
)

var CLI struct {
	cli.Globals `embed:""`
	Version     kong.VersionFlag

	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive planner." default:"1"`
	Init      cli.InitCmd      `cmd:"" help:"Write a config file and create the plan store."`
	Generate  cli.GenerateCmd  `cmd:"" help:"Generate a fresh plan for the week."`
	Reshuffle cli.ReshuffleCmd `cmd:"" help:"Re-pick every unlocked slot."`
	Swap      cli.SwapCmd      `cmd:"" help:"Swap one pick for the most novel alternative."`
	Lock      cli.LockCmd      `cmd:"" help:"Lock or unlock a pick."`
	Clear     cli.ClearCmd     `cmd:"" help:"Delete the plan for the week."`
	Show      cli.ShowCmd      `cmd:"" help:"Show the plan for the week."`
	Shop      cli.ShopCmd      `cmd:"" help:"Print the shopping list for the week."`
	History   cli.HistoryCmd   `cmd:"" help:"List saved weeks, newest first."`
	Recipes   cli.RecipesCmd   `cmd:"" help:"Search and filter the recipe catalog."`
	Recipe    cli.RecipeCmd    `cmd:"" help:"Show one recipe card."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage plan store backups."`
	Doctor  cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Inspect cli.DebugCmd  `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly rice-cooker meal planner with a shopping list"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	appCtx, err := cli.NewContext(CLI.Globals)
	if err != nil {
		errors.Fatalf("failed to start %s: %v", constants.AppName, err)
	}
	defer appCtx.Close()

	if err := ctx.Run(appCtx); err != nil {
		appCtx.Close()
		errors.Fatal(err)
	}
}
