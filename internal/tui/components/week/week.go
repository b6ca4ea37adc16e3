// Package week renders the three picks of the current week plan.
package week

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/quest"
	"github.com/julianstephens/mealweek/internal/session"
	"github.com/julianstephens/mealweek/internal/shopping"
	"github.com/julianstephens/mealweek/internal/spice"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	flashCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("42"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	questStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")).
			Italic(true)
)

// Lookup resolves recipe ids. *catalog.Catalog satisfies it.
type Lookup interface {
	ByID(id int) (models.Recipe, bool)
}

type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

type Model struct {
	plan    *models.WeekPlan
	recipes Lookup
	flags   session.Flags
	keys    KeyMap
	cursor  int
	width   int
}

func New(recipes Lookup, up, down key.Binding) Model {
	return Model{recipes: recipes, keys: KeyMap{Up: up, Down: down}}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + constants.SlotCount - 1) % constants.SlotCount
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % constants.SlotCount
		}
	}
	return m, nil
}

// Cursor is the selected slot index.
func (m Model) Cursor() int {
	return m.cursor
}

func (m *Model) SetPlan(plan *models.WeekPlan, flags session.Flags) {
	m.plan = plan
	m.flags = flags
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m Model) View() string {
	if m.plan == nil {
		return "No plan for this week. Press 'g' to generate one."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", nameStyle.Render(m.plan.WeekLabel))
	if m.plan.UsedFallback {
		fmt.Fprintf(&b, "%s\n", metaStyle.Render("Not enough recipes matched the filters; picks come from the whole catalog."))
	}
	b.WriteString("\n")

	cards := make([]string, len(m.plan.Slots))
	for i, slot := range m.plan.Slots {
		cards[i] = m.card(i, slot)
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	return b.String()
}

func (m Model) card(i int, slot models.Slot) string {
	style := cardStyle
	switch {
	case m.flags.Generated || m.flags.Swapped[i]:
		style = flashCardStyle
	case i == m.cursor:
		style = selectedCardStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}

	header := shopping.PickLabel(i)
	if slot.Locked {
		header += " 🔒"
	}
	if slot.Swaps > 0 {
		header += fmt.Sprintf(" ↻%d", slot.Swaps)
	}

	id, ok := slot.RecipeID()
	r, found := m.recipes.ByID(id)
	if !ok || !found {
		return style.Render(metaStyle.Render(header) + "\n" + metaStyle.Render("(empty)"))
	}

	q := quest.ForSlot(*m.plan, i, r)
	lines := []string{
		metaStyle.Render(header),
		nameStyle.Render(catalog.CuisineEmoji(r.Cuisine) + " " + r.Name),
		metaStyle.Render(fmt.Sprintf("%s · %s %s · %s", r.Cuisine, catalog.ProteinEmoji(r.ProteinType), r.ProteinType, spice.Classify(r).Label)),
		questStyle.Render(fmt.Sprintf("%s %s: %s", q.Emoji, q.Title, q.Description)),
	}
	return style.Render(strings.Join(lines, "\n"))
}
