package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.weekModel.SetWidth(msg.Width - 4)
		m.shopModel.SetSize(msg.Width-4, msg.Height-8)
		m.recipeModel.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case flagsExpiredMsg:
		m.refresh()
		return m, nil
	}

	if m.state == StateFilters || m.state == StateConfirmClear {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateActive(msg)
	}
	if m.state == StateRecipes && m.recipeModel.Filtering() {
		return m.updateActive(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Filters):
		return m, m.openFilters()
	}

	if m.state == StateWeek {
		return m.updateWeek(keyMsg)
	}
	return m.updateActive(msg)
}

func (m Model) updateWeek(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := m.weekModel.Cursor()
	switch {
	case key.Matches(msg, m.keys.Generate):
		return m, m.apply(m.session.Generate(), "New plan generated.")
	case key.Matches(msg, m.keys.Reshuffle):
		return m, m.apply(m.session.Reshuffle(), "Unlocked picks reshuffled.")
	case key.Matches(msg, m.keys.UseFilters):
		return m, m.apply(m.session.UseCurrentFilters(), "Reshuffled with the current filters.")
	case key.Matches(msg, m.keys.Swap):
		return m, m.apply(m.session.Swap(cursor), fmt.Sprintf("Swapped pick %d.", cursor+1))
	case key.Matches(msg, m.keys.Lock):
		res := m.session.ToggleLock(cursor)
		verb := "Unlocked"
		if res.Plan != nil && res.Plan.Slots[cursor].Locked {
			verb = "Locked"
		}
		return m, m.apply(res, fmt.Sprintf("%s pick %d.", verb, cursor+1))
	case key.Matches(msg, m.keys.Clear):
		if m.session.Current() == nil {
			return m, nil
		}
		return m, m.openConfirmClear()
	}

	var cmd tea.Cmd
	m.weekModel, cmd = m.weekModel.Update(msg)
	return m, cmd
}

// updateActive forwards msg to the component on the visible tab.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateWeek:
		m.weekModel, cmd = m.weekModel.Update(msg)
	case StateShopping:
		m.shopModel, cmd = m.shopModel.Update(msg)
	case StateRecipes:
		m.recipeModel, cmd = m.recipeModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateFilters:
			m.applyFilters()
		case StateConfirmClear:
			if *m.confirmClear {
				res := m.session.Clear()
				m.status = "This week's plan was cleared."
				if !res.Saved {
					m.warning = "Could not remove the stored plan."
				}
				m.refresh()
			}
		}
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.filterForm = nil
	m.confirmClear = nil
	m.state = m.previousState
}
