package cli

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/planner"
	"github.com/julianstephens/mealweek/internal/storage"
)

var testDay = time.Date(2026, 10, 21, 18, 0, 0, 0, time.UTC)

func testRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: 1, Name: "Teriyaki Chicken Rice", Cuisine: "Japanese", ProteinType: "Chicken",
			RiceAmount: "2 rice-cooker cups jasmine", Liquid: "Water to the 2-cup line",
			Protein: "1 lb chicken thighs", Veggies: "broccoli, 2 cloves garlic", Sauces: "soy sauce, mirin"},
		{ID: 2, Name: "Kimchi Pork Rice", Cuisine: "Korean", ProteinType: "Pork",
			RiceAmount: "2 rice-cooker cups short grain", Liquid: "2 cups water",
			Protein: "pork belly", Veggies: "kimchi, scallions", Sauces: "gochujang, sesame oil"},
		{ID: 3, Name: "Green Curry Tofu", Cuisine: "Thai", ProteinType: "Tofu",
			RiceAmount: "2 rice-cooker cups jasmine", Liquid: "coconut milk to the 2-cup line",
			Protein: "firm tofu", Veggies: "bell pepper, Thai basil", Sauces: "green curry paste, fish sauce"},
		{ID: 4, Name: "Black Bean Beef", Cuisine: "Chinese", ProteinType: "Beef",
			RiceAmount: "2 rice-cooker cups jasmine", Liquid: "2 cups chicken stock",
			Protein: "flank steak", Veggies: "onion, ginger", Sauces: "black bean sauce, oyster sauce"},
		{ID: 5, Name: "Chana Masala Rice", Cuisine: "Indian", ProteinType: "Vegan",
			RiceAmount: "2 rice-cooker cups basmati", Liquid: "2 cups vegetable broth",
			Protein: "chickpeas", Veggies: "tomato, spinach", Sauces: "garam masala, lime to finish"},
	}
}

func newTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	cat, err := catalog.New(testRecipes())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	var out bytes.Buffer
	store := storage.NewMemoryStore()
	ctx := &Context{
		Config:  config.DefaultConfig(),
		Store:   store,
		Plans:   storage.NewPlanStore(store, ""),
		Catalog: cat,
		Out:     &out,
		In:      strings.NewReader(""),
	}
	ids := 0
	ctx.Session = ctx.newSession(func() time.Time { return testDay },
		planner.WithRand(rand.New(rand.NewPCG(1, 2))),
		planner.WithClock(func() time.Time { return testDay }),
		planner.WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("plan-%d", ids)
		}),
	)
	return ctx, &out
}

func run(t *testing.T, ctx *Context, cmd interface{ Run(*Context) error }) {
	t.Helper()
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("%T.Run() error = %v", cmd, err)
	}
}
