package models

import (
	"slices"
	"time"
)

// All is the wildcard value for every Constraints field.
const All = "all"

type Constraints struct {
	Protein string `json:"protein" yaml:"protein"`
	Cuisine string `json:"cuisine" yaml:"cuisine"`
	Spice   string `json:"spice" yaml:"spice"` // lowercase spice label
}

// Normalize replaces empty fields with "all" so downstream code never sees a
// partially specified constraint set.
func (c Constraints) Normalize() Constraints {
	if c.Protein == "" {
		c.Protein = All
	}
	if c.Cuisine == "" {
		c.Cuisine = All
	}
	if c.Spice == "" {
		c.Spice = All
	}
	return c
}

type Slot struct {
	ID     *int `json:"id"`
	Locked bool `json:"locked"`
	Swaps  int  `json:"swaps"`
}

// RecipeID returns the slot's recipe id and whether one is set.
func (s Slot) RecipeID() (int, bool) {
	if s.ID == nil {
		return 0, false
	}
	return *s.ID, true
}

// WithRecipe returns a copy of the slot pointing at id.
func (s Slot) WithRecipe(id int) Slot {
	s.ID = &id
	return s
}

type WeekPlan struct {
	ID           string      `json:"id,omitempty"`
	WeekKey      string      `json:"weekKey"` // YYYY-MM-DD of the Monday
	WeekLabel    string      `json:"weekLabel"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Constraints  Constraints `json:"constraints"`
	UsedFallback bool        `json:"usedFallback"`
	ShuffleCount int         `json:"shuffleCount"`
	Slots        []Slot      `json:"slots"`
}

// Clone returns a deep copy. Slot ids are re-allocated so the copy shares no
// memory with the original.
func (p WeekPlan) Clone() WeekPlan {
	out := p
	out.Slots = make([]Slot, len(p.Slots))
	for i, s := range p.Slots {
		if id, ok := s.RecipeID(); ok {
			s = s.WithRecipe(id)
		}
		out.Slots[i] = s
	}
	return out
}

// WithSlot returns a copy of the plan with slot i replaced.
func (p WeekPlan) WithSlot(i int, slot Slot) WeekPlan {
	out := p.Clone()
	out.Slots[i] = slot
	return out
}

// RecipeIDs lists the filled slot ids in slot order.
func (p WeekPlan) RecipeIDs() []int {
	ids := make([]int, 0, len(p.Slots))
	for _, s := range p.Slots {
		if id, ok := s.RecipeID(); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Contains reports whether any slot holds recipe id.
func (p WeekPlan) Contains(id int) bool {
	return slices.Contains(p.RecipeIDs(), id)
}

// Equal reports whether two plans hold the same record. Timestamps are
// compared with time.Time.Equal.
func (p WeekPlan) Equal(o WeekPlan) bool {
	if p.ID != o.ID || p.WeekKey != o.WeekKey || p.WeekLabel != o.WeekLabel ||
		!p.CreatedAt.Equal(o.CreatedAt) || !p.UpdatedAt.Equal(o.UpdatedAt) ||
		p.Constraints != o.Constraints || p.UsedFallback != o.UsedFallback ||
		p.ShuffleCount != o.ShuffleCount || len(p.Slots) != len(o.Slots) {
		return false
	}
	for i, s := range p.Slots {
		t := o.Slots[i]
		a, aok := s.RecipeID()
		b, bok := t.RecipeID()
		if aok != bok || a != b || s.Locked != t.Locked || s.Swaps != t.Swaps {
			return false
		}
	}
	return true
}
