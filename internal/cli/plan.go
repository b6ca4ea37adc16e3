package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/session"
)

type GenerateCmd struct {
	FilterFlags `embed:""`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	filters, err := c.over(ctx.Session.Filters())
	if err != nil {
		return err
	}
	ctx.Session.SetFilters(filters)
	res := ctx.Session.Generate()
	return ctx.report("Generated a new plan", res)
}

type ReshuffleCmd struct {
	FilterFlags `embed:""`
}

// Run reshuffles under the plan's own constraints, or under the given
// filters when any filter flag is set.
func (c *ReshuffleCmd) Run(ctx *Context) error {
	var res session.Result
	if c.set() {
		filters, err := c.over(ctx.Session.Filters())
		if err != nil {
			return err
		}
		ctx.Session.SetFilters(filters)
		res = ctx.Session.UseCurrentFilters()
	} else {
		res = ctx.Session.Reshuffle()
	}
	return ctx.report("Reshuffled unlocked picks", res)
}

type SwapCmd struct {
	Pick int `arg:"" help:"Pick to swap (1-3)."`
}

func (c *SwapCmd) Run(ctx *Context) error {
	index, err := pickIndex(c.Pick)
	if err != nil {
		return err
	}
	res := ctx.Session.Swap(index)
	if !res.Changed && !res.Conflict {
		return swapRefusal(ctx, index)
	}
	return ctx.report(fmt.Sprintf("Swapped pick %d", c.Pick), res)
}

func swapRefusal(ctx *Context, index int) error {
	plan := ctx.Session.Current()
	switch {
	case plan == nil:
		return fmt.Errorf("no plan for this week, run 'mealweek generate' first")
	case plan.Slots[index].Locked:
		return fmt.Errorf("pick %d is locked", index+1)
	default:
		return fmt.Errorf("no other recipe fits pick %d", index+1)
	}
}

type LockCmd struct {
	Pick int `arg:"" help:"Pick to lock or unlock (1-3)."`
}

func (c *LockCmd) Run(ctx *Context) error {
	index, err := pickIndex(c.Pick)
	if err != nil {
		return err
	}
	res := ctx.Session.ToggleLock(index)
	if !res.Changed && !res.Conflict {
		return fmt.Errorf("no plan for this week, run 'mealweek generate' first")
	}
	verb := "Unlocked"
	if res.Plan != nil && res.Plan.Slots[index].Locked {
		verb = "Locked"
	}
	return ctx.report(fmt.Sprintf("%s pick %d", verb, c.Pick), res)
}

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if ctx.Session.Current() == nil {
		fmt.Fprintln(ctx.Out, "No plan for this week.")
		return nil
	}

	if !c.Yes {
		fmt.Fprintf(ctx.Out, "Clear the plan for %s? [y/N]: ", ctx.Session.WeekKey())
		response, err := bufio.NewReader(ctx.In).ReadString('\n')
		if err != nil && response == "" {
			fmt.Fprintln(ctx.Out, "\nClear cancelled.")
			return nil
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(ctx.Out, "Clear cancelled.")
			return nil
		}
	}

	res := ctx.Session.Clear()
	if !res.Saved {
		return fmt.Errorf("failed to clear the stored plan")
	}
	fmt.Fprintf(ctx.Out, "✓ Cleared the plan for %s\n", ctx.Session.WeekKey())
	return nil
}

// report prints the outcome of a mutation followed by the resulting plan.
func (ctx *Context) report(done string, res session.Result) error {
	switch {
	case res.Conflict:
		fmt.Fprintln(ctx.Out, "⚠ The plan was changed elsewhere; showing the latest version. Run the command again to apply it.")
	case res.Changed && !res.Saved:
		logger.Warn("plan not saved", "week", ctx.Session.WeekKey())
		fmt.Fprintln(ctx.Out, "⚠ "+done+", but it could not be saved.")
	case res.Changed:
		fmt.Fprintln(ctx.Out, "✓ "+done)
	}
	if res.Plan == nil {
		return nil
	}
	fmt.Fprintln(ctx.Out)
	ctx.printPlan(*res.Plan)
	return nil
}
