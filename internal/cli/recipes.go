package cli

import (
	"fmt"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/planner"
	"github.com/julianstephens/mealweek/internal/spice"
)

type RecipesCmd struct {
	Query       string `arg:"" optional:"" help:"Text to search for in name, protein, veggies, sauces and tags."`
	FilterFlags `embed:""`
}

func (c *RecipesCmd) Run(ctx *Context) error {
	filters, err := c.over(models.Constraints{})
	if err != nil {
		return err
	}
	matches := planner.Filter(ctx.Catalog.Search(c.Query), filters)
	if len(matches) == 0 {
		fmt.Fprintln(ctx.Out, "No recipes match.")
		return nil
	}
	for _, r := range matches {
		fmt.Fprintf(ctx.Out, "%4d  %s %-40s %s %-10s %s\n",
			r.ID, catalog.CuisineEmoji(r.Cuisine), r.Name,
			catalog.ProteinEmoji(r.ProteinType), r.ProteinType, spice.Classify(r).Label)
	}
	fmt.Fprintf(ctx.Out, "\n%s of %d\n", pluralize(len(matches), "recipe"), ctx.Catalog.Len())
	return nil
}

type RecipeCmd struct {
	ID    int    `arg:"" help:"Recipe id."`
	Batch string `help:"Batch size in rice-cooker cups." enum:"1,2" default:"2"`
	Copy  bool   `help:"Print only the plain-text ingredient block."`
}

func (c *RecipeCmd) Run(ctx *Context) error {
	r, ok := ctx.Catalog.ByID(c.ID)
	if !ok {
		return fmt.Errorf("recipe not found: %d", c.ID)
	}
	if c.Copy {
		fmt.Fprintln(ctx.Out, catalog.CopyText(r, c.Batch))
		return nil
	}

	level := spice.Classify(r)
	fmt.Fprintf(ctx.Out, "%s %s\n", catalog.CuisineEmoji(r.Cuisine), r.Name)
	fmt.Fprintf(ctx.Out, "%s · %s %s · %s · %s\n\n", r.Cuisine, catalog.ProteinEmoji(r.ProteinType), r.ProteinType, level.Label, catalog.BatchLabel(c.Batch))
	rows := []struct{ label, value string }{
		{"Rice", r.RiceType},
		{"Setting", r.Setting},
		{"Amount", catalog.AdjustForBatch(r.RiceAmount, c.Batch)},
		{"Liquid", catalog.AdjustForBatch(r.Liquid, c.Batch)},
		{"Protein", r.Protein},
		{"Veggies", r.Veggies},
		{"Sauces", r.Sauces},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(ctx.Out, "  %-8s %s\n", row.label+":", row.value)
	}
	if c.Batch != constants.BatchStandard {
		fmt.Fprintln(ctx.Out, "\nProtein, veggies and sauces are listed for a standard batch.")
	}
	return nil
}
