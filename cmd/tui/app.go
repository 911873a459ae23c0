package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
	"github.com/rovshanmuradov/coinfolio/internal/ui/screen"
)

// AppModel represents the main TUI application model. It owns the router,
// resolves navigation messages into screens and shows app-level alerts.
type AppModel struct {
	app    *ui.AppContext
	router *router.Router
	alert  component.Alert
	logger *zap.Logger
	width  int
	height int
}

// NewAppModel creates a new application model starting at loc
func NewAppModel(app *ui.AppContext, loc ui.Location) *AppModel {
	return &AppModel{
		app:    app,
		router: router.New(screen.ForLocation(app, loc)),
		logger: app.Named("app"),
	}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return m.router.Init()
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.forward(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.alert.HandleKey(msg.String()) {
			return m, nil
		}
		if cmd, ok := m.globalKey(msg); ok {
			return m, cmd
		}
		return m, m.forward(msg)

	case ui.RouterMsg:
		return m, m.navigate(msg)

	case ui.BackMsg:
		return m, m.router.Back()

	case ui.AlertMsg:
		m.alert.Show(msg.Title, msg.Message)
		return m, nil

	case ui.ToggleThemeMsg:
		dark := m.app.Theme.Toggle()
		m.logger.Debug("Theme toggled", zap.Bool("dark", dark))
		return m, nil
	}

	return m, m.forward(msg)
}

func (m *AppModel) forward(msg tea.Msg) tea.Cmd {
	updated, cmd := m.router.Update(msg)
	m.router = updated.(*router.Router)
	return cmd
}

// globalKey handles the shortcuts that work on every screen, unless the
// screen is taking text input.
func (m *AppModel) globalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if c, ok := m.router.Current().(router.InputCapturer); ok && c.CapturesInput() {
		return nil, false
	}

	keys := m.app.Keys
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, keys.Theme):
		return ui.ToggleTheme(), true
	case key.Matches(msg, keys.Home):
		return m.goTo(ui.RouteHome), true
	case key.Matches(msg, keys.Market):
		return m.goTo(ui.RouteTable), true
	case key.Matches(msg, keys.Portfolio):
		return m.goTo(ui.RoutePortfolio), true
	case key.Matches(msg, keys.Login):
		return m.goTo(ui.RouteLogin), true
	case key.Matches(msg, keys.Logs):
		return m.goTo(ui.RouteLogs), true
	}
	return nil, false
}

// goTo navigates to route unless it is already showing.
func (m *AppModel) goTo(route ui.Route) tea.Cmd {
	if m.router.CurrentRoute() == route {
		return nil
	}
	return ui.Navigate(ui.At(route))
}

func (m *AppModel) navigate(msg ui.RouterMsg) tea.Cmd {
	m.logger.Debug("Navigate", zap.String("to", msg.To.String()), zap.Bool("replace", msg.Replace))

	next := screen.ForLocation(m.app, msg.To)
	if msg.Replace {
		return m.router.Replace(next)
	}
	return m.router.Push(next)
}

// Alert returns the app-level alert
func (m *AppModel) Alert() *component.Alert {
	return &m.alert
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.alert.Open() {
		return component.Overlay(m.width, m.height, m.alert.View(m.app.Theme.Styles()))
	}
	return m.router.View()
}
