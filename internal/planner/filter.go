package planner

import (
	"strings"

	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/spice"
)

// Matches reports whether r satisfies every non-"all" field of c.
func Matches(r models.Recipe, c models.Constraints) bool {
	c = c.Normalize()
	if c.Protein != models.All && r.ProteinType != c.Protein {
		return false
	}
	if c.Cuisine != models.All && r.Cuisine != c.Cuisine {
		return false
	}
	if c.Spice != models.All && !strings.EqualFold(c.Spice, string(spice.Classify(r).Label)) {
		return false
	}
	return true
}

// Filter returns the recipes matching c in their original order. An empty
// result is valid.
func Filter(recipes []models.Recipe, c models.Constraints) []models.Recipe {
	var out []models.Recipe
	for _, r := range recipes {
		if Matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}
