package planner

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/models"
)

const testWeek = "2026-10-19"

var testNow = time.Date(2026, 10, 21, 18, 0, 0, 0, time.UTC)

type fakeHistory map[string]*models.WeekPlan

func (h fakeHistory) Load(weekKey string) *models.WeekPlan {
	return h[weekKey]
}

func recipe(id int, cuisine, protein, sauces string) models.Recipe {
	return models.Recipe{ID: id, Name: cuisine + " " + protein, Cuisine: cuisine, ProteinType: protein, Sauces: sauces}
}

// mixedRecipes has distinct cuisine/protein/spice spreads for diversity checks.
func mixedRecipes() []models.Recipe {
	return []models.Recipe{
		recipe(1, "Japanese", "Chicken", "soy sauce"),
		recipe(2, "Japanese", "Seafood", "miso"),
		recipe(3, "Korean", "Pork", "gochujang"),
		recipe(4, "Korean", "Tofu", "spicy gochujang"),
		recipe(5, "Thai", "Chicken", "green curry paste"),
		recipe(6, "Chinese", "Beef", "oyster sauce"),
		recipe(7, "Indian", "Vegan", "garam masala"),
		recipe(8, "Mexican", "Vegan", "chipotle"),
	}
}

func newCatalog(t *testing.T, recipes []models.Recipe) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(recipes)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

func newTestPlanner(t *testing.T, recipes []models.Recipe, history History, seed uint64) *Planner {
	t.Helper()
	ids := 0
	return New(newCatalog(t, recipes), history,
		WithRand(rand.New(rand.NewPCG(seed, seed+1))),
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("plan-%d", ids)
		}),
	)
}

func intPtr(v int) *int {
	return &v
}

func slotIDs(plan models.WeekPlan) []int {
	out := make([]int, len(plan.Slots))
	for i, s := range plan.Slots {
		if id, ok := s.RecipeID(); ok {
			out[i] = id
		} else {
			out[i] = -1
		}
	}
	return out
}
