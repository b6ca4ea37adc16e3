package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func testPlan() WeekPlan {
	ts := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return WeekPlan{
		ID:        "p1",
		WeekKey:   "2026-10-19",
		CreatedAt: ts,
		UpdatedAt: ts,
		Slots:     []Slot{{ID: intPtr(1)}, {ID: intPtr(2), Locked: true}, {}},
	}
}

func TestConstraintsNormalize(t *testing.T) {
	got := Constraints{Cuisine: "Thai"}.Normalize()
	want := Constraints{Protein: All, Cuisine: "Thai", Spice: All}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := testPlan()
	c := p.Clone()
	*c.Slots[0].ID = 99
	c.Slots[1].Locked = false

	if *p.Slots[0].ID != 1 || !p.Slots[1].Locked {
		t.Error("Clone() shares memory with the original")
	}
	if c.Slots[2].ID != nil {
		t.Error("Clone() filled an empty slot")
	}
}

func TestWithSlotLeavesOriginal(t *testing.T) {
	p := testPlan()
	next := p.WithSlot(2, Slot{}.WithRecipe(5))

	if p.Slots[2].ID != nil {
		t.Error("WithSlot() mutated the original plan")
	}
	if id, ok := next.Slots[2].RecipeID(); !ok || id != 5 {
		t.Errorf("slot 2 = %v, %v; want 5", id, ok)
	}
}

func TestRecipeIDsAndContains(t *testing.T) {
	p := testPlan()
	ids := p.RecipeIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("RecipeIDs() = %v, want [1 2]", ids)
	}
	if !p.Contains(2) || p.Contains(3) {
		t.Error("Contains() mismatch")
	}
}

func TestEqual(t *testing.T) {
	p := testPlan()
	if !p.Equal(p.Clone()) {
		t.Error("a plan should equal its clone")
	}

	tests := map[string]func(*WeekPlan){
		"id":        func(q *WeekPlan) { q.ID = "p2" },
		"updatedAt": func(q *WeekPlan) { q.UpdatedAt = q.UpdatedAt.Add(time.Second) },
		"recipe":    func(q *WeekPlan) { q.Slots[0] = q.Slots[0].WithRecipe(3) },
		"empty":     func(q *WeekPlan) { q.Slots[0].ID = nil },
		"swaps":     func(q *WeekPlan) { q.Slots[2].Swaps++ },
		"shuffles":  func(q *WeekPlan) { q.ShuffleCount++ },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			q := p.Clone()
			mutate(&q)
			if p.Equal(q) {
				t.Error("Equal() missed a difference")
			}
		})
	}

	local := p.Clone()
	local.CreatedAt = local.CreatedAt.In(time.FixedZone("EST", -5*3600))
	if !p.Equal(local) {
		t.Error("Equal() should ignore the time zone of equal instants")
	}
}

func TestSlotJSONUsesNullForEmpty(t *testing.T) {
	data, err := json.Marshal(testPlan())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `{"id":null,"locked":false,"swaps":0}`) {
		t.Errorf("empty slot not encoded with a null id: %s", data)
	}
	if !strings.Contains(string(data), `"weekKey":"2026-10-19"`) {
		t.Errorf("unexpected encoding: %s", data)
	}
}

func TestShoppingGroupTitles(t *testing.T) {
	want := []string{"Rice & Liquid", "Protein", "Produce & Aromatics", "Sauces & Pantry", "Finishers"}
	for i, g := range ShoppingGroups {
		if g.Title() != want[i] {
			t.Errorf("%s.Title() = %q, want %q", g, g.Title(), want[i])
		}
	}
}
