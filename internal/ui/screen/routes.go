package screen

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
)

// ForLocation builds the screen for loc.
func ForLocation(app *ui.AppContext, loc ui.Location) router.Screen {
	switch loc.Route {
	case ui.RouteHero:
		return NewHeroScreen(app)
	case ui.RouteLogin:
		return NewLoginScreen(app)
	case ui.RouteHome:
		return NewHomeScreen(app)
	case ui.RouteTable:
		return NewTableScreen(app)
	case ui.RouteCoin:
		return NewCoinScreen(app, loc.CoinID)
	case ui.RoutePortfolio:
		return NewPortfolioScreen(app, loc)
	case ui.RouteLogs:
		return NewLogsScreen(app)
	default:
		return NewNotFoundScreen(app)
	}
}

// NotFoundScreen is shown for paths no screen serves.
type NotFoundScreen struct {
	base
}

// NewNotFoundScreen creates the not-found screen
func NewNotFoundScreen(app *ui.AppContext) *NotFoundScreen {
	return &NotFoundScreen{base: newBase(app, ui.RouteNotFound)}
}

func (s *NotFoundScreen) Init() tea.Cmd { return nil }

// Update sends enter to the landing page.
func (s *NotFoundScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, s.app.Keys.Enter) {
		return s, ui.NavigateReplace(ui.At(ui.RouteHero))
	}
	return s, nil
}

func (s *NotFoundScreen) View() string {
	st := s.styles()
	body := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render("Page not found"),
		"",
		st.Muted.Render("Press enter to go back to the start page."),
	)
	return s.frame(s.center(body))
}
