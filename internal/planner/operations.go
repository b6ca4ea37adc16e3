package planner

import (
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
)

// Generate builds a fresh plan for weekKey, discarding any history for it.
func (p *Planner) Generate(weekKey string, c models.Constraints) models.WeekPlan {
	plan := p.Build(weekKey, c, nil)
	plan.ShuffleCount = 0
	return plan
}

// Reshuffle rebuilds current under its stored constraints, keeping locked
// slots. Without a current plan for weekKey it behaves like Generate.
func (p *Planner) Reshuffle(weekKey string, current *models.WeekPlan) models.WeekPlan {
	if !isCurrent(current, weekKey) {
		return p.Generate(weekKey, models.Constraints{})
	}
	return p.reshuffle(weekKey, current, current.Constraints)
}

// UseCurrentFilters is Reshuffle with live filter state in place of the
// plan's stored constraints.
func (p *Planner) UseCurrentFilters(weekKey string, current *models.WeekPlan, live models.Constraints) models.WeekPlan {
	if !isCurrent(current, weekKey) {
		return p.Generate(weekKey, live)
	}
	return p.reshuffle(weekKey, current, live)
}

func (p *Planner) reshuffle(weekKey string, current *models.WeekPlan, c models.Constraints) models.WeekPlan {
	plan := p.Build(weekKey, c, current)
	plan.ShuffleCount = current.ShuffleCount + 1
	return plan
}

// Swap replaces the recipe in one unlocked slot with the most novel candidate
// relative to the other two picks. ok is false, and the plan unchanged, when
// the plan is missing or stale, the index is out of range, the slot is locked,
// or no candidate remains.
func (p *Planner) Swap(weekKey string, current *models.WeekPlan, index int) (plan models.WeekPlan, ok bool) {
	if !canMutate(current, weekKey, index) || current.Slots[index].Locked {
		return unchanged(current), false
	}

	pool, _ := p.candidatePool(weekKey, current.Constraints.Normalize())

	others := make(map[int]bool, constants.SlotCount-1)
	var selected []models.Recipe
	for i, s := range current.Slots {
		id, filled := s.RecipeID()
		if i == index || !filled {
			continue
		}
		others[id] = true
		if r, found := p.catalog.ByID(id); found {
			selected = append(selected, r)
		}
	}

	r, found := PickBest(available(pool, others), selected, p.rng)
	if !found {
		return unchanged(current), false
	}

	slot := current.Slots[index].WithRecipe(r.ID)
	slot.Swaps++
	return current.WithSlot(index, slot), true
}

// ToggleLock flips the locked flag of one slot without touching its recipe.
func (p *Planner) ToggleLock(weekKey string, current *models.WeekPlan, index int) (plan models.WeekPlan, ok bool) {
	if !canMutate(current, weekKey, index) {
		return unchanged(current), false
	}
	slot := current.Slots[index]
	slot.Locked = !slot.Locked
	return current.WithSlot(index, slot), true
}

// IsStale reports whether plan belongs to a week other than weekKey.
func IsStale(plan *models.WeekPlan, weekKey string) bool {
	return plan != nil && plan.WeekKey != weekKey
}

func isCurrent(plan *models.WeekPlan, weekKey string) bool {
	return plan != nil && plan.WeekKey == weekKey && len(plan.Slots) == constants.SlotCount
}

func canMutate(plan *models.WeekPlan, weekKey string, index int) bool {
	return isCurrent(plan, weekKey) && index >= 0 && index < constants.SlotCount
}

func unchanged(plan *models.WeekPlan) models.WeekPlan {
	if plan == nil {
		return models.WeekPlan{}
	}
	return plan.Clone()
}
