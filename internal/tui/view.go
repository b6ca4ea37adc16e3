package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mealweek/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateWeek:
		content = docStyle.Render(m.weekModel.View())
	case StateShopping:
		content = docStyle.Render(m.shopModel.View())
	case StateRecipes:
		content = docStyle.Render(m.recipeModel.View())
	case StateFilters:
		content = docStyle.Render(headerStyle.Render("Filters") + "\n\n" + m.form.View())
	case StateConfirmClear:
		content = lipgloss.Place(m.width, m.height-4,
			lipgloss.Center, lipgloss.Center,
			dangerStyle.Render(m.form.View()),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, mutedStyle.Render(filterSummary(m.session.Filters())))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.warning != "":
		return warnStyle.Render("⚠ " + m.warning)
	case m.status != "":
		return statusStyle.Render(m.status)
	default:
		return ""
	}
}

func filterSummary(c models.Constraints) string {
	c = c.Normalize()
	return fmt.Sprintf("  filters: %s · %s · %s", c.Protein, c.Cuisine, c.Spice)
}
