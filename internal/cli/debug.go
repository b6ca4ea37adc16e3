package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/mealweek/internal/utils"
)

type DebugCmd struct {
	StorePath *DebugStorePathCmd `cmd:"" help:"Show the store path."`
	DumpPlan  *DebugDumpPlanCmd  `cmd:"" help:"Dump the raw stored record for a week as JSON."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	return printJSON(ctx, map[string]string{
		"path":      ctx.Store.GetConfigPath(),
		"namespace": ctx.Config.Namespace,
	})
}

type DebugDumpPlanCmd struct {
	Date string `arg:"" help:"Any date inside the week (YYYY-MM-DD or 'today')." default:"today"`
}

func (cmd *DebugDumpPlanCmd) Run(ctx *Context) error {
	day, err := utils.ParseDate(cmd.Date, time.Now())
	if err != nil {
		return err
	}
	week := utils.WeekKey(day)

	raw, err := ctx.Store.Get(ctx.Plans.Key(week))
	if err != nil {
		return fmt.Errorf("no plan found for week %s", week)
	}
	var record any
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return fmt.Errorf("stored record for %s is not valid JSON: %w", week, err)
	}
	return printJSON(ctx, record)
}

func printJSON(ctx *Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.Out, string(data))
	return nil
}
