package planner

import (
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/spice"
)

// NoveltyScore is the integer part of the diversity score: 3 for a cuisine not
// yet selected, 2 for a new protein type, 1 for a new spice label.
func NoveltyScore(candidate models.Recipe, selected []models.Recipe) int {
	cuisines := make(map[string]bool, len(selected))
	proteins := make(map[string]bool, len(selected))
	spices := make(map[models.SpiceLabel]bool, len(selected))
	for _, r := range selected {
		cuisines[r.Cuisine] = true
		proteins[r.ProteinType] = true
		spices[spice.Classify(r).Label] = true
	}

	score := 0
	if !cuisines[candidate.Cuisine] {
		score += constants.CuisineWeight
	}
	if !proteins[candidate.ProteinType] {
		score += constants.ProteinWeight
	}
	if !spices[spice.Classify(candidate).Label] {
		score += constants.SpiceWeight
	}
	return score
}

// PickBest returns the candidate that adds the most novelty relative to
// selected. Candidates within TieTolerance of the best perturbed score form a
// tie set and one of them is drawn uniformly. ok is false for an empty pool.
func PickBest(pool, selected []models.Recipe, rng Rand) (best models.Recipe, ok bool) {
	if len(pool) == 0 {
		return models.Recipe{}, false
	}

	scores := make([]float64, len(pool))
	top := -1.0
	for i, r := range pool {
		// jitter stays below 0.01 so it can never reorder integer scores
		scores[i] = float64(NoveltyScore(r, selected)) + rng.Float64()*constants.TieBreakJitter
		if scores[i] > top {
			top = scores[i]
		}
	}

	var tied []int
	for i, s := range scores {
		if top-s <= constants.TieTolerance {
			tied = append(tied, i)
		}
	}
	return pool[tied[rng.IntN(len(tied))]], true
}
