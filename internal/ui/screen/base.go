package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// Brand is shown at the left of the navigation bar.
const Brand = "CryptoLite"

// base holds what every screen shares: the app context, the terminal size
// and the help bar.
type base struct {
	app    *ui.AppContext
	route  ui.Route
	width  int
	height int
	help   *component.HelpBar
}

func newBase(app *ui.AppContext, route ui.Route) base {
	return base{
		app:   app,
		route: route,
		width: 80,
		help:  component.NewHelpBar(app.Theme.Styles()),
	}
}

// Route implements router.Routed.
func (b *base) Route() ui.Route {
	return b.route
}

// SetSize sets the terminal size
func (b *base) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.help.SetWidth(width)
}

func (b *base) styles() style.Styles {
	return b.app.Theme.Styles()
}

// navItems are the links of the navigation bar; the active one follows the
// current route.
func (b *base) navItems() []component.NavItem {
	if b.route == ui.RouteHero {
		return []component.NavItem{{Label: "Log in →", Key: "L"}}
	}
	return []component.NavItem{
		{Label: "Home", Key: "H", Active: b.route == ui.RouteHome},
		{Label: "Market", Key: "m", Active: b.route == ui.RouteTable},
		{Label: "Portfolio", Key: "p", Active: b.route == ui.RoutePortfolio},
		{Label: "Log in →", Key: "L", Active: b.route == ui.RouteLogin},
	}
}

// frame renders the navigation bar, the body and the contextual help.
func (b *base) frame(body string) string {
	s := b.styles()
	nav := component.NavBar{
		Brand:      Brand,
		Items:      b.navItems(),
		ThemeLabel: b.app.Theme.Label(),
		Width:      b.width,
	}.View(s)

	help := b.help.SetStyles(s).
		SetKeyBindings(b.app.Keys.ContextualHelp(b.route)).
		View()

	parts := []string{nav, "", body}
	if help != "" {
		parts = append(parts, help)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, "\n"))
}

// center places content in the middle of the body width.
func (b *base) center(content string) string {
	if b.width <= 0 {
		return content
	}
	return lipgloss.PlaceHorizontal(b.width-2, lipgloss.Center, content)
}
