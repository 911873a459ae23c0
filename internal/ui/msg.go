package ui

import (
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens. Replace swaps the current
// screen instead of pushing a new one.
type RouterMsg struct {
	To      Location
	Replace bool
}

// AlertMsg opens a blocking alert on top of the current screen.
type AlertMsg struct {
	Title   string
	Message string
}

// BackMsg asks the application to pop the current screen.
type BackMsg struct{}

// ToggleThemeMsg asks the application to flip between dark and light.
type ToggleThemeMsg struct{}

// Navigate returns a command that pushes loc.
func Navigate(loc Location) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: loc}
	}
}

// NavigateReplace returns a command that replaces the current screen with loc.
func NavigateReplace(loc Location) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: loc, Replace: true}
	}
}

// Alert returns a command that opens an alert.
func Alert(title, message string) tea.Cmd {
	return func() tea.Msg {
		return AlertMsg{Title: title, Message: message}
	}
}

// Back returns a command that pops the current screen.
func Back() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// ToggleTheme returns a command that flips the theme.
func ToggleTheme() tea.Cmd {
	return func() tea.Msg {
		return ToggleThemeMsg{}
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteHero Route = iota
	RouteLogin
	RouteHome
	RouteTable
	RouteCoin
	RoutePortfolio
	RouteLogs
	RouteNotFound
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteHero:
		return "hero"
	case RouteLogin:
		return "login"
	case RouteHome:
		return "home"
	case RouteTable:
		return "table"
	case RouteCoin:
		return "coin"
	case RoutePortfolio:
		return "portfolio"
	case RouteLogs:
		return "logs"
	default:
		return "unknown"
	}
}

// Location is a parsed navigation target.
type Location struct {
	Route  Route
	CoinID string
	Query  url.Values
}

// Path constants of the navigation contract.
const (
	PathHero      = "/"
	PathLogin     = "/login"
	PathHome      = "/home"
	PathTable     = "/table"
	PathCoin      = "/coin/"
	PathPortfolio = "/portfolio"
	PathLogs      = "/logs"
)

// Handoff query parameters of the portfolio location.
const (
	QueryAdd      = "add"
	QueryQuantity = "quantity"
)

// At builds a location without query or coin.
func At(route Route) Location {
	return Location{Route: route}
}

// CoinLocation is /coin/:id.
func CoinLocation(id string) Location {
	return Location{Route: RouteCoin, CoinID: id}
}

// PortfolioAdd is /portfolio?add=<id>&quantity=<n>.
func PortfolioAdd(id string, quantity float64) Location {
	q := url.Values{}
	q.Set(QueryAdd, id)
	q.Set(QueryQuantity, strconv.FormatFloat(quantity, 'f', -1, 64))
	return Location{Route: RoutePortfolio, Query: q}
}

// ParseLocation parses a route string. Unknown paths yield RouteNotFound.
func ParseLocation(raw string) Location {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Location{Route: RouteNotFound}
	}

	path := strings.TrimRight(u.Path, "/")
	loc := Location{Query: u.Query()}
	if len(loc.Query) == 0 {
		loc.Query = nil
	}

	switch {
	case path == "":
		loc.Route = RouteHero
	case path == PathLogin:
		loc.Route = RouteLogin
	case path == PathHome:
		loc.Route = RouteHome
	case path == PathTable:
		loc.Route = RouteTable
	case path == PathPortfolio:
		loc.Route = RoutePortfolio
	case path == PathLogs:
		loc.Route = RouteLogs
	case strings.HasPrefix(path, PathCoin):
		id, err := url.PathUnescape(strings.TrimPrefix(path, PathCoin))
		if err != nil || id == "" || strings.Contains(id, "/") {
			return Location{Route: RouteNotFound}
		}
		loc.Route = RouteCoin
		loc.CoinID = id
	default:
		loc.Route = RouteNotFound
	}
	return loc
}

// String prints the location as a route string.
func (l Location) String() string {
	var path string
	switch l.Route {
	case RouteHero:
		path = PathHero
	case RouteLogin:
		path = PathLogin
	case RouteHome:
		path = PathHome
	case RouteTable:
		path = PathTable
	case RouteCoin:
		path = PathCoin + url.PathEscape(l.CoinID)
	case RoutePortfolio:
		path = PathPortfolio
	case RouteLogs:
		path = PathLogs
	default:
		return "/404"
	}
	if len(l.Query) > 0 {
		path += "?" + l.Query.Encode()
	}
	return path
}

// Handoff returns the add/quantity parameters of a portfolio location.
func (l Location) Handoff() (coinID, quantity string, ok bool) {
	if l.Route != RoutePortfolio || l.Query == nil {
		return "", "", false
	}
	coinID = l.Query.Get(QueryAdd)
	quantity = l.Query.Get(QueryQuantity)
	return coinID, quantity, coinID != ""
}
