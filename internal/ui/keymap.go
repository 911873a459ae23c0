package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the application
type KeyMap struct {
	// Global navigation
	Quit  key.Binding
	Back  key.Binding
	Help  key.Binding
	Theme key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Application specific
	Home      key.Binding
	Market    key.Binding
	Portfolio key.Binding
	Login     key.Binding
	Logs      key.Binding

	// Market table
	SortName   key.Binding
	SortPrice  key.Binding
	SortChange key.Binding
	SortCap    key.Binding
	SortVolume key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Refresh    key.Binding

	// Coin detail
	Add     key.Binding
	Range1D key.Binding
	Range7D key.Binding
	Range1M key.Binding
	Range1Y key.Binding

	// Portfolio
	Remove key.Binding
	Export key.Binding

	// Logs
	FilterAll   key.Binding
	FilterInfo  key.Binding
	FilterWarn  key.Binding
	FilterError key.Binding
	ClearLogs   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Global navigation
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),

		// Application specific
		Home: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "home"),
		),
		Market: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "market"),
		),
		Portfolio: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "portfolio"),
		),
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log in"),
		),
		Logs: key.NewBinding(
			key.WithKeys("f12"),
			key.WithHelp("F12", "logs"),
		),

		// Market table
		SortName: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort name"),
		),
		SortPrice: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort price"),
		),
		SortChange: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort 24h"),
		),
		SortCap: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort cap"),
		),
		SortVolume: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "sort volume"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("b", "pgup"),
			key.WithHelp("b", "prev page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r/F5", "refresh"),
		),

		// Coin detail
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to portfolio"),
		),
		Range1D: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "24h"),
		),
		Range7D: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "7d"),
		),
		Range1M: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "30d"),
		),
		Range1Y: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "1y"),
		),

		// Portfolio
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),

		// Logs
		FilterAll: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all"),
		),
		FilterInfo: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "info"),
		),
		FilterWarn: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "warn"),
		),
		FilterError: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "error"),
		),
		ClearLogs: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear logs"),
		),
	}
}

// ShortHelp returns key help text for the current context
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Back, k.Quit}
}

// FullHelp returns extended help text for the current context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Tab, k.ShiftTab},
		{k.Home, k.Market, k.Portfolio, k.Login, k.Logs},
		{k.Theme, k.Help, k.Quit},
	}
}

// ContextualHelp returns help text based on the current route
func (k KeyMap) ContextualHelp(route Route) []key.Binding {
	switch route {
	case RouteHero:
		return []key.Binding{k.Enter, k.Login, k.Theme, k.Quit}
	case RouteLogin:
		return []key.Binding{k.Tab, k.ShiftTab, k.Enter, k.Back}
	case RouteHome, RouteTable:
		return []key.Binding{k.Up, k.Down, k.Enter, k.SortName, k.SortPrice, k.SortChange,
			k.SortCap, k.SortVolume, k.PrevPage, k.NextPage, k.Portfolio, k.Theme, k.Quit}
	case RouteCoin:
		return []key.Binding{k.Range1D, k.Range7D, k.Range1M, k.Range1Y, k.Add, k.Back, k.Theme, k.Quit}
	case RoutePortfolio:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Remove, k.Export, k.Home, k.Theme, k.Back, k.Quit}
	case RouteLogs:
		return []key.Binding{k.FilterAll, k.FilterInfo, k.FilterWarn, k.FilterError, k.ClearLogs, k.Back, k.Quit}
	default:
		return k.ShortHelp()
	}
}
