package planner

import (
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/utils"
)

// Build fills a week plan for weekKey under constraints c. When existing is
// non-nil its locks, swap counters, id, createdAt and shuffleCount carry over;
// locked slots keep their recipe. Unfillable slots stay empty.
func (p *Planner) Build(weekKey string, c models.Constraints, existing *models.WeekPlan) models.WeekPlan {
	c = c.Normalize()
	pool, usedFallback := p.candidatePool(weekKey, c)

	slots := seedSlots(existing)
	chosen := make(map[int]bool, constants.SlotCount)
	var selected []models.Recipe

	for _, s := range slots {
		id, ok := s.RecipeID()
		if !s.Locked || !ok {
			continue
		}
		chosen[id] = true
		if r, found := p.catalog.ByID(id); found {
			selected = append(selected, r)
		}
	}

	for i, s := range slots {
		if s.Locked {
			continue
		}
		r, ok := PickBest(available(pool, chosen), selected, p.rng)
		if !ok {
			s.ID = nil
			slots[i] = s
			continue
		}
		slots[i] = s.WithRecipe(r.ID)
		chosen[r.ID] = true
		selected = append(selected, r)
	}

	now := p.timestamp()
	plan := models.WeekPlan{
		ID:           p.newID(),
		WeekKey:      weekKey,
		WeekLabel:    utils.WeekLabel(weekKey),
		CreatedAt:    now,
		UpdatedAt:    now,
		Constraints:  c,
		UsedFallback: usedFallback,
		Slots:        slots,
	}
	if existing != nil {
		if existing.ID != "" {
			plan.ID = existing.ID
		}
		plan.CreatedAt = existing.CreatedAt
		plan.ShuffleCount = existing.ShuffleCount
	}
	return plan
}

// candidatePool narrows the catalog by c, widens to the whole catalog when
// fewer than three recipes match, then drops last week's picks if that still
// leaves at least three candidates.
func (p *Planner) candidatePool(weekKey string, c models.Constraints) ([]models.Recipe, bool) {
	all := p.catalog.All()
	pool := Filter(all, c)
	usedFallback := false
	if len(pool) < constants.MinPoolSize {
		pool = all
		usedFallback = true
	}

	last := p.lastWeekIDs(weekKey)
	if len(last) == 0 {
		return pool, usedFallback
	}
	fresh := make([]models.Recipe, 0, len(pool))
	for _, r := range pool {
		if !last[r.ID] {
			fresh = append(fresh, r)
		}
	}
	if len(fresh) >= constants.MinPoolSize {
		pool = fresh
	}
	return pool, usedFallback
}

func (p *Planner) lastWeekIDs(weekKey string) map[int]bool {
	ids := make(map[int]bool)
	if p.history == nil {
		return ids
	}
	prev, err := utils.PreviousWeekKey(weekKey)
	if err != nil {
		return ids
	}
	plan := p.history.Load(prev)
	if plan == nil {
		return ids
	}
	for _, id := range plan.RecipeIDs() {
		ids[id] = true
	}
	return ids
}

func seedSlots(existing *models.WeekPlan) []models.Slot {
	slots := make([]models.Slot, constants.SlotCount)
	if existing == nil {
		return slots
	}
	seed := existing.Clone()
	copy(slots, seed.Slots)
	return slots
}

func available(pool []models.Recipe, chosen map[int]bool) []models.Recipe {
	out := make([]models.Recipe, 0, len(pool))
	for _, r := range pool {
		if !chosen[r.ID] {
			out = append(out, r)
		}
	}
	return out
}
