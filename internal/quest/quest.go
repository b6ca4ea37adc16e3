// Package quest suggests one finishing technique per plan slot.
//
// The suggestion fills whatever the recipe is missing (acid, crunch, fat,
// umami, heat) and is a pure function of the plan identity and the slot, so
// the same pick always shows the same quest until it is shuffled or swapped.
package quest

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/spice"
)

const (
	Acid   = "acid"
	Crunch = "crunch"
	Fat    = "fat"
	Umami  = "umami"
	Heat   = "heat"
	Herbs  = "herbs"
	Egg    = "egg"
)

var catalog = []models.Quest{
	{ID: Acid, Emoji: "🍋", Title: "Brighten it", Description: "Finish with a squeeze of lime or lemon, or a splash of rice vinegar, right before serving."},
	{ID: Crunch, Emoji: "🥜", Title: "Add crunch", Description: "Top with toasted sesame seeds, crushed peanuts or fried shallots."},
	{ID: Fat, Emoji: "🧈", Title: "Make it glossy", Description: "Stir a knob of butter or a drizzle of sesame oil through the rice once it's done."},
	{ID: Umami, Emoji: "🍄", Title: "Deepen it", Description: "Season with a dash of soy sauce, fish sauce or a spoon of miso at the end."},
	{ID: Heat, Emoji: "🌶️", Title: "Bring the heat", Description: "Spoon over chili crisp or scatter sliced fresh chili to taste."},
	{ID: Herbs, Emoji: "🌿", Title: "Go green", Description: "Shower with chopped scallions, cilantro or Thai basil."},
	{ID: Egg, Emoji: "🍳", Title: "Put an egg on it", Description: "Crown each bowl with a jammy soft-boiled or crispy fried egg."},
}

// signals lists words whose presence means the recipe already covers a quest.
var signals = []struct {
	id    string
	words []string
}{
	{Acid, []string{"lemon", "lime", "vinegar", "yuzu", "ponzu", "tamarind", "pickled", "kimchi"}},
	{Crunch, []string{"sesame seed", "peanut", "cashew", "crispy", "fried shallot", "nuts", "furikake", "panko"}},
	{Fat, []string{"butter", "oil", "coconut milk", "cream", "mayo", "ghee"}},
	{Umami, []string{"soy", "miso", "fish sauce", "oyster", "mushroom", "dashi", "parmesan", "msg", "anchovy", "kombu"}},
}

// Catalog returns every quest in display order.
func Catalog() []models.Quest {
	return slices.Clone(catalog)
}

// Candidates lists the quest ids offered for r, in a stable order.
func Candidates(r models.Recipe) []string {
	text := strings.ToLower(strings.Join([]string{
		r.Name, r.Protein, r.Veggies, r.Sauces, r.Liquid, strings.Join(r.Tags, " "),
	}, " "))

	var ids []string
	for _, s := range signals {
		if !containsAny(text, s.words) {
			ids = append(ids, s.id)
		}
	}
	if spice.Classify(r).Label == models.SpiceMild {
		ids = append(ids, Heat)
	}
	ids = append(ids, Herbs, Egg)
	return dedupe(ids)
}

// Assign picks the quest for one slot. Identical arguments always yield the
// identical quest.
func Assign(weekKey string, shuffleCount, slotIndex int, r models.Recipe, swaps int) models.Quest {
	options := lookup(Candidates(r))
	if len(options) == 0 {
		options = catalog
	}
	h := Hash(fmt.Sprintf("%s|%d|%d|%d|%d", weekKey, shuffleCount, slotIndex, r.ID, swaps))
	return options[h%uint32(len(options))]
}

// ForSlot is Assign with the identity fields taken from plan.
func ForSlot(plan models.WeekPlan, slotIndex int, r models.Recipe) models.Quest {
	swaps := 0
	if slotIndex >= 0 && slotIndex < len(plan.Slots) {
		swaps = plan.Slots[slotIndex].Swaps
	}
	return Assign(plan.WeekKey, plan.ShuffleCount, slotIndex, r, swaps)
}

// Hash is 32-bit FNV-1a over s.
func Hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func lookup(ids []string) []models.Quest {
	out := make([]models.Quest, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(catalog, func(q models.Quest) bool { return q.ID == id })
		if i >= 0 {
			out = append(out, catalog[i])
		}
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
