package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/planner"
	"github.com/julianstephens/mealweek/internal/session"
	"github.com/julianstephens/mealweek/internal/tui/components/recipelist"
	"github.com/julianstephens/mealweek/internal/tui/components/shoplist"
	"github.com/julianstephens/mealweek/internal/tui/components/week"
)

type SessionState int

const (
	StateWeek SessionState = iota
	StateShopping
	StateRecipes
	StateFilters
	StateConfirmClear
)

const tabCount = 3

var tabTitles = []string{"Week", "Shopping", "Recipes"}

// flagsExpiredMsg re-renders once transient highlights have been cleared.
type flagsExpiredMsg struct{}

type FilterFormModel struct {
	Protein string
	Cuisine string
	Spice   string
}

type Model struct {
	session       *session.Session
	catalog       *catalog.Catalog
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	weekModel     week.Model
	shopModel     shoplist.Model
	recipeModel   recipelist.Model
	form          *huh.Form
	filterForm    *FilterFormModel
	confirmClear  *bool
	status        string
	warning       string
	quitting      bool
	width         int
	height        int
}

func NewModel(s *session.Session, cat *catalog.Catalog) Model {
	keys := DefaultKeyMap()
	m := Model{
		session:     s,
		catalog:     cat,
		state:       StateWeek,
		keys:        keys,
		help:        help.New(),
		weekModel:   week.New(cat, keys.Up, keys.Down),
		shopModel:   shoplist.New(0, 0),
		recipeModel: recipelist.New(cat.All(), 0, 0),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateWeek {
		keys = append(keys, m.keys.Generate, m.keys.Swap, m.keys.Lock)
	}
	return append(keys, m.keys.Filters)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Filters}
	var actions []key.Binding
	if m.state == StateWeek {
		actions = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Generate, m.keys.Reshuffle, m.keys.UseFilters, m.keys.Swap, m.keys.Lock, m.keys.Clear}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(constants.AppName)
}

// refresh pulls the current plan, flags and filters from the session into
// the components.
func (m *Model) refresh() {
	m.weekModel.SetPlan(m.session.Current(), m.session.Flags())
	m.shopModel.SetSections(m.session.Shopping())
	m.recipeModel.SetRecipes(planner.Filter(m.catalog.All(), m.session.Filters()))
}

// apply records the outcome of a mutation and schedules a redraw for when
// its highlight expires.
func (m *Model) apply(res session.Result, done string) tea.Cmd {
	m.warning = ""
	switch {
	case res.Conflict:
		m.status = ""
		m.warning = "The plan changed in another window; showing the latest version."
	case res.Changed && !res.Saved:
		m.status = done
		m.warning = "Could not save; the change only lasts for this session."
	case res.Changed:
		m.status = done
	default:
		m.status = ""
	}
	m.refresh()
	if !res.Changed {
		return nil
	}
	return tea.Tick(m.session.AnimationDelay()+50*time.Millisecond, func(time.Time) tea.Msg {
		return flagsExpiredMsg{}
	})
}

func (m *Model) openFilters() tea.Cmd {
	current := m.session.Filters()
	m.filterForm = &FilterFormModel{Protein: current.Protein, Cuisine: current.Cuisine, Spice: current.Spice}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Protein").
				Options(options(catalog.ProteinOptions)...).
				Value(&m.filterForm.Protein),
			huh.NewSelect[string]().
				Title("Cuisine").
				Options(options(catalog.CuisineOptions)...).
				Value(&m.filterForm.Cuisine),
			huh.NewSelect[string]().
				Title("Heat").
				Options(options(catalog.SpiceOptions)...).
				Value(&m.filterForm.Spice),
		),
	).WithShowHelp(true)
	m.previousState = m.state
	m.state = StateFilters
	return m.form.Init()
}

func (m *Model) openConfirmClear() tea.Cmd {
	confirm := false
	m.confirmClear = &confirm
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear this week's plan?").
				Description("Other weeks are kept. A backup is taken first.").
				Affirmative("Clear").
				Negative("Keep").
				Value(m.confirmClear),
		),
	)
	m.previousState = m.state
	m.state = StateConfirmClear
	return m.form.Init()
}

func (m *Model) applyFilters() {
	m.session.SetFilters(models.Constraints{
		Protein: m.filterForm.Protein,
		Cuisine: m.filterForm.Cuisine,
		Spice:   m.filterForm.Spice,
	})
	m.status = "Filters set. Press 'g' for a new plan or 'u' to reshuffle with them."
	m.refresh()
}

func options(opts []catalog.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		out[i] = huh.NewOption(o.Emoji+" "+o.Label, o.Value)
	}
	return out
}
