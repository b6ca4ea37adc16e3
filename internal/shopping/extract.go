// Package shopping derives a grouped shopping list from a week plan.
//
// Each recipe field runs through its own cleanup and an ordered RuleTable.
// The rules are heuristics: a phrase no rule recognises is kept as
// capitalised free text rather than dropped, so the list errs on the side of
// showing too much.
package shopping

import (
	"slices"
	"strings"

	"github.com/julianstephens/mealweek/internal/models"
)

// Lookup resolves slot recipe ids. *catalog.Catalog satisfies it.
type Lookup interface {
	ByID(id int) (models.Recipe, bool)
}

// Extract builds the five shopping sections for plan in fixed group order.
// A nil plan yields five empty sections. Slots whose recipe is unknown to
// recipes are skipped.
func Extract(plan *models.WeekPlan, recipes Lookup) []models.ShoppingSection {
	m := newMerger()
	if plan != nil {
		for i, s := range plan.Slots {
			id, ok := s.RecipeID()
			if !ok {
				continue
			}
			r, found := recipes.ByID(id)
			if !found {
				continue
			}
			for _, item := range RecipeItems(r) {
				m.add(item, i)
			}
		}
	}
	return m.sections()
}

// RecipeItems lists the shopping items one recipe needs, without picks.
func RecipeItems(r models.Recipe) []models.ShoppingItem {
	var items []models.ShoppingItem
	items = append(items, riceItems(r)...)

	proteins, extras := proteinItems(r.Protein)
	items = append(items, proteins...)
	items = append(items, produceItems(r.Veggies)...)

	segments := append(splitTopLevel(r.Sauces, ",;"), extras...)
	items = append(items, pantryItems(segments)...)
	return items
}

func riceItems(r models.Recipe) []models.ShoppingItem {
	var items []models.ShoppingItem
	if t := tidy(r.RiceType); t != "" {
		label := capitalize(t)
		if !strings.Contains(strings.ToLower(t), "rice") {
			label += " rice"
		}
		items = append(items, item(models.GroupRice, "rice:"+strings.ToLower(label), label))
	}

	liquid := strings.ToLower(r.Liquid)
	for _, rule := range LiquidRules {
		if rule.Pattern.MatchString(liquid) {
			items = append(items, item(models.GroupRice, rule.Key(), rule.Label))
		}
	}
	for _, m := range stockRe.FindAllStringSubmatch(liquid, -1) {
		flavor := m[1]
		if flavor == "veggie" {
			flavor = "vegetable"
		}
		items = append(items, item(models.GroupRice, "stock:"+flavor, capitalize(flavor)+" stock / broth"))
	}
	return items
}

// proteinItems canonicalises the first clause of the protein field. Any later
// clauses ("marinated in soy sauce") are returned for the pantry pass.
func proteinItems(text string) ([]models.ShoppingItem, []string) {
	clauses := splitTopLevel(stripParens(text), ",;")
	if len(clauses) == 0 {
		return nil, nil
	}

	var items []models.ShoppingItem
	for _, part := range splitConjunctions(stripQuantities(clauses[0])) {
		phrase := tidy(stripPrep(part))
		if phrase == "" {
			continue
		}
		items = append(items, canonical(models.GroupProtein, ProteinRules, phrase))
	}
	return items, clauses[1:]
}

func produceItems(text string) []models.ShoppingItem {
	var items []models.ShoppingItem
	for _, segment := range splitTopLevel(stripParens(text), ",;") {
		for _, part := range splitConjunctions(segment) {
			phrase := clean(part)
			if phrase == "" {
				continue
			}
			items = append(items, canonical(models.GroupProduce, ProduceRules, phrase))
		}
	}
	return items
}

// pantryItems classifies sauce segments. The finish cue is read from the raw
// segment, parenthesised asides included, so "miso (stir in after cooking)"
// is a finisher.
func pantryItems(segments []string) []models.ShoppingItem {
	var items []models.ShoppingItem
	for _, raw := range segments {
		finish := finishRe.MatchString(raw)
		cleaned := tidy(stripQuantities(stripParens(raw)))
		if cleaned == "" || isInstruction(cleaned) {
			continue
		}

		for _, part := range splitConjunctions(cleaned) {
			phrase := tidy(stripPrep(firstAlternative(part)))
			if phrase == "" || genericRe.MatchString(phrase) || isInstruction(phrase) {
				continue
			}

			group := models.GroupPantry
			rule, ok := PantryRules.Find(phrase)
			if finish || (ok && rule.Finish) {
				group = models.GroupFinish
			}
			if ok {
				items = append(items, item(group, rule.Key(), rule.Label))
			} else {
				items = append(items, passthrough(group, phrase))
			}
		}
	}
	return items
}

// isInstruction reports whether s reads as a cooking step. A cooking verb
// anywhere in the text counts unless a pantry rule still names an ingredient
// in it, so "stir in 1 tbsp soy sauce" is kept.
func isInstruction(s string) bool {
	if !instructionRe.MatchString(toTasteRe.ReplaceAllString(s, " ")) {
		return false
	}
	_, named := PantryRules.Find(s)
	return !named
}

func canonical(group models.ShoppingGroup, table RuleTable, phrase string) models.ShoppingItem {
	if rule, ok := table.Find(phrase); ok {
		return item(group, rule.Key(), rule.Label)
	}
	return passthrough(group, phrase)
}

func passthrough(group models.ShoppingGroup, phrase string) models.ShoppingItem {
	label := capitalize(phrase)
	return item(group, strings.ToLower(label), label)
}

func item(group models.ShoppingGroup, key, label string) models.ShoppingItem {
	return models.ShoppingItem{Group: group, Key: key, Label: label}
}

// merger unions items that share a group and key, collecting the picks that
// need them.
type merger struct {
	groups map[models.ShoppingGroup]map[string]*models.ShoppingItem
}

func newMerger() *merger {
	return &merger{groups: make(map[models.ShoppingGroup]map[string]*models.ShoppingItem)}
}

func (m *merger) add(it models.ShoppingItem, pick int) {
	byKey, ok := m.groups[it.Group]
	if !ok {
		byKey = make(map[string]*models.ShoppingItem)
		m.groups[it.Group] = byKey
	}
	existing, ok := byKey[it.Key]
	if !ok {
		it.Picks = nil
		existing = &it
		byKey[it.Key] = existing
	}
	if !slices.Contains(existing.Picks, pick) {
		existing.Picks = append(existing.Picks, pick)
		slices.Sort(existing.Picks)
	}
}

func (m *merger) sections() []models.ShoppingSection {
	out := make([]models.ShoppingSection, 0, len(models.ShoppingGroups))
	for _, g := range models.ShoppingGroups {
		items := make([]models.ShoppingItem, 0, len(m.groups[g]))
		for _, it := range m.groups[g] {
			items = append(items, *it)
		}
		slices.SortFunc(items, func(a, b models.ShoppingItem) int {
			if c := strings.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label)); c != 0 {
				return c
			}
			return strings.Compare(a.Key, b.Key)
		})
		out = append(out, models.ShoppingSection{Group: g, Title: g.Title(), Items: items})
	}
	return out
}
