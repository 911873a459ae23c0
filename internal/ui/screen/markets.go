package screen

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/config"
	"github.com/rovshanmuradov/coinfolio/internal/listing"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
)

type marketsLoadedMsg struct {
	coins []market.MarketSummary
	err   error
}

// MarketsScreen shows the market table. On the home route it pages the
// list and sorts the visible page; on the table route it sorts and shows
// the whole list.
type MarketsScreen struct {
	base
	logger *zap.Logger

	spinner spinner.Model
	table   *component.Table

	loading bool
	coins   []market.MarketSummary
	sort    listing.SortState
	page    int
	perPage int
	paged   bool
}

// NewHomeScreen creates the paged market screen
func NewHomeScreen(app *ui.AppContext) *MarketsScreen {
	return newMarketsScreen(app, ui.RouteHome, true)
}

// NewTableScreen creates the unpaged market screen
func NewTableScreen(app *ui.AppContext) *MarketsScreen {
	return newMarketsScreen(app, ui.RouteTable, false)
}

func newMarketsScreen(app *ui.AppContext, route ui.Route, paged bool) *MarketsScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	perPage := config.DefaultCoinsPerPage
	if app.Config != nil && app.Config.CoinsPerPage > 0 {
		perPage = app.Config.CoinsPerPage
	}

	table := component.NewTable(app.Theme.Styles())
	for _, k := range listing.TableKeys {
		align := lipgloss.Right
		width := 16
		if k == listing.KeyName {
			align = lipgloss.Left
			width = 0
		}
		table.AddColumn(listing.Header(k), width, align)
	}

	return &MarketsScreen{
		base:    newBase(app, route),
		logger:  app.Named("markets"),
		spinner: sp,
		table:   table,
		sort:    listing.DefaultSort(),
		page:    1,
		perPage: perPage,
		paged:   paged,
	}
}

// Init starts loading the list
func (m *MarketsScreen) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m *MarketsScreen) fetch() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		coins, err := app.Market.ListMarkets(app.Context(), 1)
		return marketsLoadedMsg{coins: coins, err: err}
	}
}

// Update handles screen updates
func (m *MarketsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case marketsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error("Failed to load markets", zap.Error(msg.err))
			m.coins = nil
			return m, nil
		}
		m.coins = msg.coins
		m.page = listing.ClampPage(m.page, m.totalPages())
		m.logger.Debug("Markets loaded", zap.Int("count", len(msg.coins)))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *MarketsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.app.Keys
	sortKeys := []key.Binding{keys.SortName, keys.SortPrice, keys.SortChange, keys.SortCap, keys.SortVolume}
	for i, binding := range sortKeys {
		if key.Matches(msg, binding) {
			m.SortBy(listing.TableKeys[i])
			return nil
		}
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.table.MoveUp()
	case key.Matches(msg, keys.Down):
		m.table.MoveDown()
	case key.Matches(msg, keys.NextPage), key.Matches(msg, keys.Right):
		m.SetPage(m.page + 1)
	case key.Matches(msg, keys.PrevPage), key.Matches(msg, keys.Left):
		m.SetPage(m.page - 1)
	case key.Matches(msg, keys.Refresh):
		return m.Init()
	case key.Matches(msg, keys.Enter):
		rows := m.Visible()
		if i := m.table.SelectedRow(); i < len(rows) {
			return ui.Navigate(ui.CoinLocation(rows[i].ID))
		}
	}
	return nil
}

// SortBy toggles the sort on key
func (m *MarketsScreen) SortBy(k listing.Key) {
	m.sort = m.sort.Toggle(k)
}

// SetPage moves to page when it exists. Previous and Next are no-ops at
// the ends.
func (m *MarketsScreen) SetPage(page int) {
	if !m.paged || page < 1 || page > m.totalPages() {
		return
	}
	m.page = page
	m.table.SetSelectedRow(0)
}

// Page returns the current page
func (m *MarketsScreen) Page() int {
	return m.page
}

func (m *MarketsScreen) totalPages() int {
	return listing.TotalPages(len(m.coins), m.perPage)
}

// Visible returns the rows shown, in display order.
func (m *MarketsScreen) Visible() []market.MarketSummary {
	if !m.paged {
		return m.sort.Apply(m.coins)
	}
	return m.sort.Apply(listing.Paginate(m.coins, m.perPage, m.page))
}

// View renders the screen
func (m *MarketsScreen) View() string {
	s := m.styles()

	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Real-Time Cryptocurrency Dashboard"),
		s.Muted.Render("Track the latest cryptocurrency market trends and statistics"),
		"",
	)

	if m.loading {
		return m.frame(header + "\n" + m.center(m.spinner.View()+" Loading..."))
	}
	if len(m.coins) == 0 {
		return m.frame(header + "\n" + m.center(s.Muted.Render("No data available")))
	}

	visible := m.Visible()
	rows := make([][]string, len(visible))
	for i, c := range visible {
		rows[i] = listing.Cells(c)
	}

	sortColumn := -1
	for i, k := range listing.TableKeys {
		if k == m.sort.Key {
			sortColumn = i
		}
	}
	m.table.SetStyles(s).
		SetWidth(m.width - 2).
		SetSort(sortColumn, m.sort.Direction == listing.Asc).
		SetRows(rows)

	body := header + "\n" + m.table.View()
	if m.paged {
		pager := component.Pagination{Total: len(m.coins), PageSize: m.perPage, Page: m.page}
		body += "\n\n" + pager.View(s)
	}
	return m.frame(body)
}
