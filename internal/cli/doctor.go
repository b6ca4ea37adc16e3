package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/mealweek/internal/storage"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*Context) error
	warning bool // failures only warn
}

var doctorChecks = []check{
	{name: "Store reachable", run: checkStoreReachable},
	{name: "Schema version", run: checkSchema},
	{name: "Catalog", run: checkCatalog},
	{name: "Stored plans", run: checkStoredPlans},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Clock/timezone", run: checkClock},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false
	for _, c := range doctorChecks {
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Fprintf(ctx.Out, "✓ %s: OK\n", c.name)
		case c.warning:
			fmt.Fprintf(ctx.Out, "⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			fmt.Fprintf(ctx.Out, "❌ %s: FAIL\n   Error: %v\n", c.name, err)
			hasError = true
		}
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if s, ok := ctx.Store.(*storage.SQLiteStore); ok {
		if err := s.Ping(); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	if _, err := ctx.Store.Keys(""); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func checkSchema(ctx *Context) error {
	s, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}
	runner, err := s.MigrationRunner()
	if err != nil {
		return err
	}
	if err := runner.Validate(); err != nil {
		return err
	}
	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkCatalog(ctx *Context) error {
	if ctx.Catalog.Len() < 3 {
		return fmt.Errorf("catalog has %d recipes, at least 3 are needed for a full plan", ctx.Catalog.Len())
	}
	for _, r := range ctx.Catalog.All() {
		if r.Name == "" || r.Cuisine == "" || r.ProteinType == "" {
			return fmt.Errorf("recipe %d is missing a name, cuisine or protein type", r.ID)
		}
	}
	return nil
}

// checkStoredPlans flags stored weeks that no longer load or that point at
// recipes missing from the catalog.
func checkStoredPlans(ctx *Context) error {
	for _, week := range ctx.Plans.Weeks() {
		plan := ctx.Plans.Load(week)
		if plan == nil {
			return fmt.Errorf("plan for %s is unreadable", week)
		}
		for _, id := range plan.RecipeIDs() {
			if _, ok := ctx.Catalog.ByID(id); !ok {
				return fmt.Errorf("plan for %s references unknown recipe %d", week, id)
			}
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	if ctx.Backups == nil {
		return fmt.Errorf("in-memory store, backups disabled")
	}
	backups, err := ctx.Backups.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'mealweek backup create'")
	}
	return nil
}

func checkClock(ctx *Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		fmt.Fprintln(ctx.Out, "   Note: timezone is UTC, weeks start at UTC midnight")
	}
	return nil
}
