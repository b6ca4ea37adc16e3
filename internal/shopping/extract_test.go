package shopping

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/models"
)

type recipeMap map[int]models.Recipe

func (m recipeMap) ByID(id int) (models.Recipe, bool) {
	r, ok := m[id]
	return r, ok
}

func labels(items []models.ShoppingItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func byGroup(items []models.ShoppingItem, g models.ShoppingGroup) []string {
	var out []string
	for _, it := range items {
		if it.Group == g {
			out = append(out, it.Label)
		}
	}
	return out
}

func TestProduceStripsPrepAndQuantities(t *testing.T) {
	got := labels(produceItems("2 cups baby spinach, sliced scallions, 1 clove garlic"))
	want := []string{"Spinach", "Scallions / green onion", "Garlic"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("produceItems() mismatch (-want +got):\n%s", diff)
	}
}

func TestProduce(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"1 carrot, julienned; 4 shiitake mushrooms, sliced", []string{"Carrots", "Shiitake mushrooms"}},
		{"cucumber and pickled carrots to serve", []string{"Cucumber", "Pickled carrots"}},
		{"1 stalk lemongrass, minced; 1 lemon, zested", []string{"Lemongrass", "Lemons"}},
		{"2 scallions, cut in half", []string{"Scallions / green onion"}},
		{"1 red bell pepper & 1 handful Thai basil", []string{"Bell pepper", "Thai basil"}},
		{"2 cups frozen okra", []string{"Okra"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, labels(produceItems(tt.in)), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("produceItems(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestProtein(t *testing.T) {
	tests := []struct {
		in     string
		want   []string
		extras []string
	}{
		{"300 g boneless skinless chicken thighs (cut bite-size), marinated in soy sauce", []string{"Chicken thighs"}, []string{"marinated in soy sauce"}},
		{"1 block silken tofu and 100 g ground pork", []string{"Silken tofu", "Ground pork"}, nil},
		{"250 g thinly sliced beef (ribeye or sirloin)", []string{"Beef"}, nil},
		{"1 salmon fillet (skin on)", []string{"Salmon"}, nil},
		{"4 eggs (crack on top for the last 10 minutes)", []string{"Eggs"}, nil},
		{"2 Chinese sausages (lap cheong), sliced", []string{"Chinese sausage"}, []string{"sliced"}},
		{"1 cup cooked lentils", []string{"Lentils"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			items, extras := proteinItems(tt.in)
			if diff := cmp.Diff(tt.want, labels(items)); diff != "" {
				t.Errorf("proteinItems() labels mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.extras, extras, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("proteinItems() extras mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPantryFinishCueWins(t *testing.T) {
	items := pantryItems([]string{"1 tbsp miso (stir in after cooking)"})
	want := []models.ShoppingItem{{Group: models.GroupFinish, Key: "miso", Label: "Miso"}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("pantryItems() mismatch (-want +got):\n%s", diff)
	}
}

func TestPantry(t *testing.T) {
	segments := splitTopLevel("2 tbsp soy sauce, 1 tsp sugar, 1/2 tsp salt, water, 1 tbsp butter to finish, "+
		"sesame seeds, mix sauce well before adding, fill and shape once cooled, reduce sauce after cooking, "+
		"1 tsp Shaoxing wine, soy sauce or tamari, 1 grated pear, lime juice to serve", ",;")
	items := pantryItems(segments)

	if diff := cmp.Diff([]string{"Soy sauce", "Shaoxing wine", "Soy sauce", "Pear"}, byGroup(items, models.GroupPantry)); diff != "" {
		t.Errorf("pantry group mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Butter", "Sesame seeds", "Limes"}, byGroup(items, models.GroupFinish)); diff != "" {
		t.Errorf("finish group mismatch (-want +got):\n%s", diff)
	}
}

func TestPantryDropsInstructions(t *testing.T) {
	tests := []struct {
		name       string
		segment    string
		wantPantry []string
		wantFinish []string
	}{
		{"verb in the middle", "then stir well", nil, nil},
		{"verb after an adverb", "gently mix before adding", nil, nil},
		{"past tense with finish cue", "sauce reduced after cooking", nil, nil},
		{"leading verb", "let it rest 5 minutes", nil, nil},
		{"verb with a named ingredient", "stir in 1 tbsp soy sauce", []string{"Soy sauce"}, nil},
		{"finisher stirred in", "1 tbsp miso (stir in after cooking)", nil, []string{"Miso"}},
		{"to taste is not a step", "black pepper to taste", []string{"Black pepper"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := pantryItems([]string{tt.segment})
			if diff := cmp.Diff(tt.wantPantry, byGroup(items, models.GroupPantry)); diff != "" {
				t.Errorf("pantry group mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantFinish, byGroup(items, models.GroupFinish)); diff != "" {
				t.Errorf("finish group mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRiceItems(t *testing.T) {
	tests := []struct {
		name   string
		recipe models.Recipe
		want   []string
	}{
		{"plain water", models.Recipe{RiceType: "Jasmine", Liquid: "Water to the 2-cup line"}, []string{"Jasmine rice"}},
		{"already says rice", models.Recipe{RiceType: "Brown rice"}, []string{"Brown rice"}},
		{"coconut milk", models.Recipe{RiceType: "Jasmine", Liquid: "1 can coconut milk plus water"}, []string{"Jasmine rice", "Coconut milk"}},
		{"dashi", models.Recipe{RiceType: "Short-grain", Liquid: "Dashi to the 2-cup line"}, []string{"Short-grain rice", "Dashi"}},
		{"stock", models.Recipe{RiceType: "Basmati", Liquid: "Veggie broth to the 2-cup line"}, []string{"Basmati rice", "Vegetable stock / broth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, labels(riceItems(tt.recipe))); diff != "" {
				t.Errorf("riceItems() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func testRecipes() recipeMap {
	return recipeMap{
		1: {ID: 1, RiceType: "Jasmine", Liquid: "Chicken stock to the 2-cup line", Protein: "2 chicken thighs",
			Veggies: "3 cloves garlic, smashed; 2 cups spinach", Sauces: "1 tbsp soy sauce, chili oil to finish"},
		2: {ID: 2, RiceType: "Short-grain", Liquid: "Water to the 2-cup line", Protein: "1 block firm tofu",
			Veggies: "2 scallions", Sauces: "1 tbsp gochujang"},
		3: {ID: 3, RiceType: "Jasmine", Liquid: "Chicken broth to the 2-cup line", Protein: "300 g chicken thighs",
			Veggies: "2 cloves garlic; 1 onion", Sauces: "2 tbsp soy sauce"},
	}
}

func testPlan() *models.WeekPlan {
	one, two, three := 1, 2, 3
	return &models.WeekPlan{
		WeekKey: "2026-10-19",
		Slots:   []models.Slot{{ID: &one}, {ID: &two}, {ID: &three}},
	}
}

func TestExtractMergesAcrossPicks(t *testing.T) {
	sections := Extract(testPlan(), testRecipes())

	if len(sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(sections))
	}
	for i, g := range models.ShoppingGroups {
		if sections[i].Group != g || sections[i].Title != g.Title() {
			t.Errorf("section %d = %s/%q, want %s", i, sections[i].Group, sections[i].Title, g)
		}
	}

	want := map[models.ShoppingGroup][]string{
		models.GroupRice:    {"Chicken stock / broth (Pick 1, Pick 3)", "Jasmine rice (Pick 1, Pick 3)", "Short-grain rice (Pick 2)"},
		models.GroupProtein: {"Chicken thighs (Pick 1, Pick 3)", "Firm tofu (Pick 2)"},
		models.GroupProduce: {"Garlic (Pick 1, Pick 3)", "Onion (Pick 3)", "Scallions / green onion (Pick 2)", "Spinach (Pick 1)"},
		models.GroupPantry:  {"Gochujang (Pick 2)", "Soy sauce (Pick 1, Pick 3)"},
		models.GroupFinish:  {"Chili oil (Pick 1)"},
	}
	for _, s := range sections {
		var got []string
		for _, it := range s.Items {
			got = append(got, Line(it))
		}
		if diff := cmp.Diff(want[s.Group], got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", s.Title, diff)
		}
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	plan := testPlan()
	first := Extract(plan, testRecipes())
	second := Extract(plan, testRecipes())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Extract() is not idempotent (-first +second):\n%s", diff)
	}
}

func TestExtractWithoutPlan(t *testing.T) {
	sections := Extract(nil, testRecipes())
	if len(sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(sections))
	}
	if n := Count(sections); n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}
	if Text(sections) != "" {
		t.Error("Text() of an empty list should be empty")
	}
}

func TestExtractSkipsEmptyAndUnknownSlots(t *testing.T) {
	one, missing := 1, 99
	plan := &models.WeekPlan{Slots: []models.Slot{{}, {ID: &missing}, {ID: &one}}}
	sections := Extract(plan, testRecipes())
	for _, s := range sections {
		for _, it := range s.Items {
			if diff := cmp.Diff([]int{2}, it.Picks); diff != "" {
				t.Errorf("%s picks mismatch (-want +got):\n%s", it.Label, diff)
			}
		}
	}
}

func TestText(t *testing.T) {
	sections := Extract(testPlan(), testRecipes())
	text := Text(sections)
	for _, want := range []string{"Rice & Liquid\n", "- Garlic (Pick 1, Pick 3)\n", "Finishers\n- Chili oil (Pick 1)\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q in:\n%s", want, text)
		}
	}
}

func TestDefaultCatalogProducesCleanLists(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	for _, r := range cat.All() {
		items := RecipeItems(r)
		if len(byGroup(items, models.GroupRice)) == 0 {
			t.Errorf("recipe %d has no rice item", r.ID)
		}
		if len(byGroup(items, models.GroupProtein)) == 0 {
			t.Errorf("recipe %d has no protein item", r.ID)
		}
		for _, it := range items {
			if it.Label == "" || it.Key == "" {
				t.Errorf("recipe %d produced an empty item %+v", r.ID, it)
			}
			if isInstruction(it.Label) || genericRe.MatchString(it.Label) {
				t.Errorf("recipe %d produced %q, which should have been dropped", r.ID, it.Label)
			}
		}
	}
}
