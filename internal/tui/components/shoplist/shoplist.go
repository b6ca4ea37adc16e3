// Package shoplist shows the grouped shopping list in a scrollable viewport.
package shoplist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/shopping"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pickStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	sections []models.ShoppingSection
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if shopping.Count(m.sections) == 0 {
		return "Nothing to buy yet. Generate a plan on the Week tab."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetSections(sections []models.ShoppingSection) {
	m.sections = sections
	m.Render()
}

func (m *Model) Render() {
	var b strings.Builder
	for _, s := range m.sections {
		if len(s.Items) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", sectionStyle.Render(s.Title))
		for _, it := range s.Items {
			picks := make([]string, len(it.Picks))
			for i, p := range it.Picks {
				picks[i] = shopping.PickLabel(p)
			}
			fmt.Fprintf(&b, "  ☐ %s %s\n", itemStyle.Render(it.Label), pickStyle.Render("("+strings.Join(picks, ", ")+")"))
		}
	}
	m.viewport.SetContent(b.String())
}
