// Package recipelist is a filterable list of catalog recipes.
package recipelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/spice"
)

type Item struct {
	Recipe models.Recipe
}

func (i Item) Title() string {
	return catalog.CuisineEmoji(i.Recipe.Cuisine) + " " + i.Recipe.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("#%d | %s | %s %s | %s", i.Recipe.ID, i.Recipe.Cuisine,
		catalog.ProteinEmoji(i.Recipe.ProteinType), i.Recipe.ProteinType, spice.Classify(i.Recipe).Label)
}

// FilterValue covers the same fields as the catalog text search.
func (i Item) FilterValue() string {
	r := i.Recipe
	return strings.Join([]string{r.Name, r.Protein, r.Veggies, r.Sauces, strings.Join(r.Tags, " ")}, " ")
}

type Model struct {
	list list.Model
}

func New(recipes []models.Recipe, width, height int) Model {
	l := list.New(items(recipes), list.NewDefaultDelegate(), width, height)
	l.Title = "Recipes"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

func items(recipes []models.Recipe) []list.Item {
	out := make([]list.Item, len(recipes))
	for i, r := range recipes {
		out[i] = Item{Recipe: r}
	}
	return out
}

func (m *Model) SetRecipes(recipes []models.Recipe) {
	m.list.SetItems(items(recipes))
}

// Filtering reports whether the list is capturing keys for its filter input.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No recipes match the current filters."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
