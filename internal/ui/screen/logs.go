package screen

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
)

const logsRefreshInterval = time.Second

// refreshLogsMsg is sent to trigger a refresh
type refreshLogsMsg struct{}

// LogsScreen shows the in-memory application log.
type LogsScreen struct {
	base
	view *component.LogView
}

// NewLogsScreen creates a new logs screen
func NewLogsScreen(app *ui.AppContext) *LogsScreen {
	return &LogsScreen{
		base: newBase(app, ui.RouteLogs),
		view: component.NewLogView(app.Logs, app.Theme.Styles()),
	}
}

func tickLogs() tea.Cmd {
	return tea.Tick(logsRefreshInterval, func(time.Time) tea.Msg {
		return refreshLogsMsg{}
	})
}

// Init initializes the screen
func (s *LogsScreen) Init() tea.Cmd {
	s.view.Refresh()
	return tickLogs()
}

// SetSize leaves room for the navigation bar, the status line and help.
func (s *LogsScreen) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.view.SetSize(width-2, height-8)
}

// Filter returns the active level filter
func (s *LogsScreen) Filter() component.LogLevel {
	return s.view.Filter()
}

// Update handles screen updates
func (s *LogsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	keys := s.app.Keys
	switch msg := msg.(type) {
	case refreshLogsMsg:
		s.view.Refresh()
		return s, tickLogs()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.FilterAll):
			s.view.SetFilter(component.LevelAll)
		case key.Matches(msg, keys.FilterInfo):
			s.view.SetFilter(component.LevelInfo)
		case key.Matches(msg, keys.FilterWarn):
			s.view.SetFilter(component.LevelWarn)
		case key.Matches(msg, keys.FilterError):
			s.view.SetFilter(component.LevelError)
		case key.Matches(msg, keys.ClearLogs):
			if s.app.Logs != nil {
				s.app.Logs.Clear()
			}
			s.view.Refresh()
		default:
			return s, s.view.Update(msg)
		}
		return s, nil

	case tea.MouseMsg:
		return s, s.view.Update(msg)
	}
	return s, nil
}

// View renders the screen
func (s *LogsScreen) View() string {
	st := s.styles()
	s.view.SetStyles(st)

	status := fmt.Sprintf("Filter: %s", s.view.Filter())
	if s.app.Logs != nil {
		total, dropped := s.app.Logs.GetStats()
		status += fmt.Sprintf("  |  Total: %d  Dropped: %d", total, dropped)
	}

	body := st.Title.Render("Application Logs") + "\n" +
		st.Muted.Render(status) + "\n\n" +
		s.view.View()
	return s.frame(body)
}
