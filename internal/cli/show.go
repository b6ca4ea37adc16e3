package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/quest"
	"github.com/julianstephens/mealweek/internal/shopping"
	"github.com/julianstephens/mealweek/internal/spice"
	"github.com/julianstephens/mealweek/internal/utils"
)

type ShowCmd struct {
	JSON bool `help:"Print the stored plan record as JSON."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	plan := ctx.Session.Current()
	if plan == nil {
		fmt.Fprintf(ctx.Out, "No plan for %s.\n", utils.WeekLabel(ctx.Session.WeekKey()))
		fmt.Fprintln(ctx.Out, "Run 'mealweek generate' to create one.")
		return nil
	}
	if c.JSON {
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal plan: %w", err)
		}
		fmt.Fprintln(ctx.Out, string(data))
		return nil
	}
	ctx.printPlan(*plan)
	return nil
}

func (ctx *Context) printPlan(plan models.WeekPlan) {
	fmt.Fprintf(ctx.Out, "%s\n", plan.WeekLabel)
	fmt.Fprintf(ctx.Out, "Filters: %s · updated %s\n", describeConstraints(plan.Constraints), humanize.Time(plan.UpdatedAt))
	if plan.UsedFallback {
		fmt.Fprintln(ctx.Out, "Not enough recipes matched the filters, so picks come from the whole catalog.")
	}
	fmt.Fprintln(ctx.Out)

	for i, slot := range plan.Slots {
		id, ok := slot.RecipeID()
		r, found := ctx.Catalog.ByID(id)
		if !ok || !found {
			fmt.Fprintf(ctx.Out, "  %s  (empty)%s\n", shopping.PickLabel(i), slotBadges(slot))
			continue
		}
		fmt.Fprintf(ctx.Out, "  %s  %s %s%s\n", shopping.PickLabel(i), catalog.CuisineEmoji(r.Cuisine), r.Name, slotBadges(slot))
		fmt.Fprintf(ctx.Out, "          %s · %s %s · %s\n", r.Cuisine, catalog.ProteinEmoji(r.ProteinType), r.ProteinType, spice.Classify(r).Label)
		q := quest.ForSlot(plan, i, r)
		fmt.Fprintf(ctx.Out, "          %s %s: %s\n", q.Emoji, q.Title, q.Description)
	}
}

func slotBadges(slot models.Slot) string {
	var badges []string
	if slot.Locked {
		badges = append(badges, "🔒 locked")
	}
	if slot.Swaps > 0 {
		badges = append(badges, fmt.Sprintf("%s swapped", humanize.Ordinal(slot.Swaps)))
	}
	if len(badges) == 0 {
		return ""
	}
	return "  [" + strings.Join(badges, ", ") + "]"
}

func describeConstraints(c models.Constraints) string {
	c = c.Normalize()
	return fmt.Sprintf("protein=%s cuisine=%s spice=%s", c.Protein, c.Cuisine, c.Spice)
}

type ShopCmd struct {
	JSON bool `help:"Print the grouped list as JSON."`
}

func (c *ShopCmd) Run(ctx *Context) error {
	sections := ctx.Session.Shopping()
	if c.JSON {
		data, err := json.MarshalIndent(sections, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal shopping list: %w", err)
		}
		fmt.Fprintln(ctx.Out, string(data))
		return nil
	}

	n := shopping.Count(sections)
	if n == 0 {
		fmt.Fprintln(ctx.Out, "Nothing to buy yet. Generate a plan first.")
		return nil
	}
	fmt.Fprintf(ctx.Out, "Shopping list for %s (%s)\n\n", utils.WeekLabel(ctx.Session.WeekKey()), pluralize(n, "item"))
	fmt.Fprint(ctx.Out, shopping.Text(sections))
	return nil
}

type HistoryCmd struct{}

func (c *HistoryCmd) Run(ctx *Context) error {
	weeks := ctx.Session.History()
	if len(weeks) == 0 {
		fmt.Fprintln(ctx.Out, "No saved plans.")
		return nil
	}
	for _, week := range weeks {
		plan := ctx.Plans.Load(week)
		if plan == nil {
			fmt.Fprintf(ctx.Out, "  %s  (unreadable)\n", week)
			continue
		}
		var names []string
		for _, id := range plan.RecipeIDs() {
			if r, ok := ctx.Catalog.ByID(id); ok {
				names = append(names, r.Name)
			}
		}
		fmt.Fprintf(ctx.Out, "  %s  %s\n", week, strings.Join(names, " · "))
	}
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), noun)
}
