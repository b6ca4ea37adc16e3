package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/storage"
)

func TestGenerateAndShow(t *testing.T) {
	ctx, out := newTestContext(t)

	run(t, ctx, &GenerateCmd{})
	text := out.String()
	if !strings.Contains(text, "✓ Generated a new plan") {
		t.Errorf("missing confirmation in %q", text)
	}
	for _, label := range []string{"Pick 1", "Pick 2", "Pick 3"} {
		if !strings.Contains(text, label) {
			t.Errorf("output missing %s", label)
		}
	}
	if !strings.Contains(text, "Week of Oct 19") {
		t.Errorf("output missing week label: %q", text)
	}

	out.Reset()
	run(t, ctx, &ShowCmd{JSON: true})
	var plan models.WeekPlan
	if err := json.Unmarshal(out.Bytes(), &plan); err != nil {
		t.Fatalf("show --json is not a plan: %v", err)
	}
	if plan.WeekKey != "2026-10-19" || len(plan.Slots) != 3 {
		t.Errorf("unexpected plan: %+v", plan)
	}
}

func TestShowWithoutPlan(t *testing.T) {
	ctx, out := newTestContext(t)
	run(t, ctx, &ShowCmd{})
	if !strings.Contains(out.String(), "No plan for Week of Oct 19") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestGenerateWithFilters(t *testing.T) {
	ctx, _ := newTestContext(t)
	run(t, ctx, &GenerateCmd{FilterFlags{Cuisine: "Thai"}})

	plan := ctx.Session.Current()
	if plan.Constraints.Cuisine != "Thai" {
		t.Errorf("constraints = %+v", plan.Constraints)
	}
	if !plan.UsedFallback {
		t.Error("a single Thai recipe should trigger the fallback")
	}

	if err := (&GenerateCmd{FilterFlags{Spice: "volcanic"}}).Run(ctx); err == nil {
		t.Error("an unknown spice level should be rejected")
	}
}

func TestSwapAndLock(t *testing.T) {
	ctx, out := newTestContext(t)

	if err := (&SwapCmd{Pick: 1}).Run(ctx); err == nil || !strings.Contains(err.Error(), "generate") {
		t.Errorf("swap without a plan: %v", err)
	}
	if err := (&SwapCmd{Pick: 4}).Run(ctx); err == nil {
		t.Error("pick 4 should be rejected")
	}

	run(t, ctx, &GenerateCmd{})
	run(t, ctx, &LockCmd{Pick: 2})
	if !strings.Contains(out.String(), "✓ Locked pick 2") {
		t.Errorf("missing lock confirmation in %q", out.String())
	}
	if err := (&SwapCmd{Pick: 2}).Run(ctx); err == nil || !strings.Contains(err.Error(), "locked") {
		t.Errorf("swap on a locked pick: %v", err)
	}

	out.Reset()
	run(t, ctx, &SwapCmd{Pick: 1})
	if !strings.Contains(out.String(), "1st swapped") {
		t.Errorf("swap badge missing in %q", out.String())
	}

	run(t, ctx, &LockCmd{Pick: 2})
	if ctx.Session.Current().Slots[1].Locked {
		t.Error("second lock should unlock")
	}
}

func TestReshuffleWithFilterFlagsUsesThem(t *testing.T) {
	ctx, _ := newTestContext(t)
	run(t, ctx, &GenerateCmd{})
	run(t, ctx, &ReshuffleCmd{})
	if got := ctx.Session.Current().ShuffleCount; got != 1 {
		t.Errorf("ShuffleCount = %d, want 1", got)
	}

	run(t, ctx, &ReshuffleCmd{FilterFlags{Protein: "Tofu"}})
	plan := ctx.Session.Current()
	if plan.Constraints.Protein != "Tofu" || plan.ShuffleCount != 2 {
		t.Errorf("unexpected plan after filtered reshuffle: %+v", plan)
	}
}

func TestClear(t *testing.T) {
	ctx, out := newTestContext(t)
	run(t, ctx, &GenerateCmd{})

	ctx.In = strings.NewReader("n\n")
	run(t, ctx, &ClearCmd{})
	if ctx.Session.Current() == nil {
		t.Fatal("declining the prompt should keep the plan")
	}

	ctx.In = strings.NewReader("yes\n")
	run(t, ctx, &ClearCmd{})
	if ctx.Session.Current() != nil {
		t.Error("plan should be gone after confirming")
	}

	out.Reset()
	run(t, ctx, &ClearCmd{Yes: true})
	if !strings.Contains(out.String(), "No plan for this week.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestShop(t *testing.T) {
	ctx, out := newTestContext(t)
	run(t, ctx, &ShopCmd{})
	if !strings.Contains(out.String(), "Nothing to buy yet") {
		t.Errorf("unexpected output %q", out.String())
	}

	run(t, ctx, &GenerateCmd{})
	out.Reset()
	run(t, ctx, &ShopCmd{})
	text := out.String()
	if !strings.Contains(text, "Rice & Liquid") || !strings.Contains(text, "(Pick ") {
		t.Errorf("shopping list missing sections or citations:\n%s", text)
	}

	out.Reset()
	run(t, ctx, &ShopCmd{JSON: true})
	var sections []models.ShoppingSection
	if err := json.Unmarshal(out.Bytes(), &sections); err != nil {
		t.Fatalf("shop --json: %v", err)
	}
	if len(sections) != len(models.ShoppingGroups) {
		t.Errorf("got %d sections", len(sections))
	}
}

func TestHistory(t *testing.T) {
	ctx, out := newTestContext(t)
	run(t, ctx, &HistoryCmd{})
	if !strings.Contains(out.String(), "No saved plans.") {
		t.Errorf("unexpected output %q", out.String())
	}

	run(t, ctx, &GenerateCmd{})
	out.Reset()
	run(t, ctx, &HistoryCmd{})
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "2026-10-19") {
		t.Errorf("unexpected history %q", out.String())
	}
}

func TestRecipes(t *testing.T) {
	ctx, out := newTestContext(t)

	run(t, ctx, &RecipesCmd{Query: "KIMCHI"})
	if !strings.Contains(out.String(), "Kimchi Pork Rice") || !strings.Contains(out.String(), "1 recipe of 5") {
		t.Errorf("unexpected search output:\n%s", out.String())
	}

	out.Reset()
	run(t, ctx, &RecipesCmd{FilterFlags: FilterFlags{Spice: "medium"}})
	text := out.String()
	if !strings.Contains(text, "Kimchi Pork Rice") || !strings.Contains(text, "Green Curry Tofu") || strings.Contains(text, "Teriyaki") {
		t.Errorf("unexpected spice filter output:\n%s", text)
	}

	out.Reset()
	run(t, ctx, &RecipesCmd{Query: "nothing-like-this"})
	if !strings.Contains(out.String(), "No recipes match.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRecipeCard(t *testing.T) {
	ctx, out := newTestContext(t)

	run(t, ctx, &RecipeCmd{ID: 1, Batch: "1"})
	text := out.String()
	for _, want := range []string{"Half batch (1 cup)", "1 rice-cooker cup jasmine", "Water to the 1-cup line"} {
		if !strings.Contains(text, want) {
			t.Errorf("recipe card missing %q:\n%s", want, text)
		}
	}

	out.Reset()
	run(t, ctx, &RecipeCmd{ID: 2, Batch: "2", Copy: true})
	want := "Kimchi Pork Rice\nProtein: pork belly\nVeggies: kimchi, scallions\nSauces: gochujang, sesame oil\nRice: 2 rice-cooker cups short grain\nLiquid: 2 cups water\n"
	if out.String() != want {
		t.Errorf("copy text = %q, want %q", out.String(), want)
	}

	if err := (&RecipeCmd{ID: 99, Batch: "2"}).Run(ctx); err == nil {
		t.Error("unknown recipe should fail")
	}
}

func TestDoctorOnHealthyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mealweek.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx, out := newTestContext(t)
	ctx.Store = store
	ctx.Plans = storage.NewPlanStore(store, "")

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed:\n%s", out.String())
	}
	for _, want := range []string{"✓ Store reachable: OK", "✓ Schema version: OK", "⚠ Backups present: WARNING"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("doctor output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDoctorFlagsUnknownRecipes(t *testing.T) {
	ctx, out := newTestContext(t)
	run(t, ctx, &GenerateCmd{})

	plan := ctx.Session.Current()
	plan.Slots[0] = plan.Slots[0].WithRecipe(404)
	ctx.Plans.Save(*plan)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor should fail for a plan with unknown recipes")
	}
	if !strings.Contains(out.String(), "unknown recipe 404") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestDebugDumpPlan(t *testing.T) {
	ctx, out := newTestContext(t)
	if err := (&DebugDumpPlanCmd{Date: "2026-10-21"}).Run(ctx); err == nil {
		t.Error("dump without a plan should fail")
	}

	run(t, ctx, &GenerateCmd{})
	out.Reset()
	run(t, ctx, &DebugDumpPlanCmd{Date: "2026-10-25"})
	var record map[string]any
	if err := json.Unmarshal(out.Bytes(), &record); err != nil {
		t.Fatalf("dump is not JSON: %v", err)
	}
	if record["weekKey"] != "2026-10-19" {
		t.Errorf("weekKey = %v", record["weekKey"])
	}

	out.Reset()
	run(t, ctx, &DebugStorePathCmd{})
	if !strings.Contains(out.String(), storage.MemoryPath) {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestInitWritesConfig(t *testing.T) {
	ctx, out := newTestContext(t)
	ctx.ConfigPath = filepath.Join(t.TempDir(), "mealweek", "config.yaml")
	ctx.Config.Filters = models.Constraints{Protein: "Tofu"}.Normalize()

	run(t, ctx, &InitCmd{})
	if !strings.Contains(out.String(), "Wrote config to "+ctx.ConfigPath) {
		t.Errorf("missing write confirmation in %q", out.String())
	}
	if !strings.Contains(out.String(), "Plans are stored at "+storage.MemoryPath) {
		t.Errorf("missing store path in %q", out.String())
	}

	loaded, err := config.Load(ctx.ConfigPath)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if loaded.Filters.Protein != "Tofu" {
		t.Errorf("saved protein filter = %q, want Tofu", loaded.Filters.Protein)
	}

	t.Run("existing file is kept", func(t *testing.T) {
		before, err := os.ReadFile(ctx.ConfigPath)
		if err != nil {
			t.Fatalf("failed to read config: %v", err)
		}
		out.Reset()
		ctx.Config.Filters.Protein = "Beef"
		run(t, ctx, &InitCmd{})
		if !strings.Contains(out.String(), "already exists") {
			t.Errorf("missing notice in %q", out.String())
		}
		after, err := os.ReadFile(ctx.ConfigPath)
		if err != nil {
			t.Fatalf("failed to read config: %v", err)
		}
		if string(after) != string(before) {
			t.Error("config was rewritten without --force")
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		ctx.Config.Filters.Protein = "Beef"
		run(t, ctx, &InitCmd{Force: true})
		loaded, err := config.Load(ctx.ConfigPath)
		if err != nil {
			t.Fatalf("config.Load() error = %v", err)
		}
		if loaded.Filters.Protein != "Beef" {
			t.Errorf("saved protein filter = %q, want Beef", loaded.Filters.Protein)
		}
	})
}
