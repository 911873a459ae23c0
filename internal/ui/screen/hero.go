package screen

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
)

// HeroScreen is the landing page.
type HeroScreen struct {
	base
	selected int
}

var heroActions = []struct {
	Label string
	To    ui.Route
}{
	{"Get started", ui.RouteHome},
	{"Log in →", ui.RouteLogin},
}

// NewHeroScreen creates the landing screen
func NewHeroScreen(app *ui.AppContext) *HeroScreen {
	return &HeroScreen{base: newBase(app, ui.RouteHero)}
}

// Init initializes the screen
func (m *HeroScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (m *HeroScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	keys := m.app.Keys
	switch {
	case key.Matches(keyMsg, keys.Left), key.Matches(keyMsg, keys.ShiftTab):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, keys.Right), key.Matches(keyMsg, keys.Tab):
		if m.selected < len(heroActions)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, keys.Enter):
		return m, ui.Navigate(ui.At(heroActions[m.selected].To))
	}
	return m, nil
}

// View renders the screen
func (m *HeroScreen) View() string {
	s := m.styles()

	buttons := make([]string, len(heroActions))
	for i, action := range heroActions {
		if i == m.selected {
			buttons[i] = s.ButtonActive.Render(action.Label)
		} else {
			buttons[i] = s.Button.Render(action.Label)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		s.Muted.Render("Start your journey in cryptocurrency."),
		"",
		s.Title.Render("Platform to enrich your crypto wallet"),
		s.Text.Render("CryptoLite is a platform for investors to buy, manage and sell cryptocurrencies."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
	)
	return m.frame(m.center(body))
}
