package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/export"
	"github.com/rovshanmuradov/coinfolio/internal/format"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
)

// AddFailedMessage is shown when a handoff add cannot complete.
const AddFailedMessage = "Failed to add coin to portfolio. Please try again."

type portfolioLoadedMsg struct {
	holdings portfolio.Portfolio
}

type holdingAddedMsg struct {
	coinID   string
	holdings portfolio.Portfolio
	err      error
}

type exportDoneMsg struct {
	path string
	err  error
}

// PortfolioScreen lists the holdings. A location carrying add/quantity is
// applied once, after which the location is plain /portfolio.
type PortfolioScreen struct {
	base
	logger *zap.Logger

	loc      ui.Location
	holdings portfolio.Portfolio
	loaded   bool
	adding   bool
	table    *component.Table
}

// NewPortfolioScreen creates the portfolio screen for loc
func NewPortfolioScreen(app *ui.AppContext, loc ui.Location) *PortfolioScreen {
	table := component.NewTable(app.Theme.Styles()).
		AddColumn("Coin", 0, lipgloss.Left).
		AddColumn("Quantity", 16, lipgloss.Right).
		AddColumn("Price When Added", 18, lipgloss.Right).
		AddColumn("Current Value", 18, lipgloss.Right).
		AddColumn("Actions", 8, lipgloss.Center)

	return &PortfolioScreen{
		base:   newBase(app, ui.RoutePortfolio),
		logger: app.Named("portfolio_screen"),
		loc:    loc,
		table:  table,
	}
}

// Location returns the current location; the handoff query is gone once
// it has been applied.
func (m *PortfolioScreen) Location() ui.Location {
	return m.loc
}

// Init reloads the holdings
func (m *PortfolioScreen) Init() tea.Cmd {
	store := m.app.Portfolio
	return func() tea.Msg {
		return portfolioLoadedMsg{holdings: store.Load()}
	}
}

// consumeHandoff applies the add/quantity query once. The query is dropped
// whether or not it holds a usable quantity.
func (m *PortfolioScreen) consumeHandoff() tea.Cmd {
	coinID, raw, ok := m.loc.Handoff()
	if !ok {
		return nil
	}
	m.loc = ui.At(ui.RoutePortfolio)

	quantity := portfolio.ParseHandoff(raw)
	if quantity == 0 {
		m.logger.Debug("Ignoring handoff without quantity", zap.String("coin", coinID), zap.String("quantity", raw))
		return nil
	}

	m.adding = true
	app := m.app
	return func() tea.Msg {
		holdings, err := app.Portfolio.Add(app.Context(), coinID, quantity, app.Quotes)
		return holdingAddedMsg{coinID: coinID, holdings: holdings, err: err}
	}
}

// Update handles screen updates
func (m *PortfolioScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case portfolioLoadedMsg:
		m.holdings = msg.holdings
		m.loaded = true
		return m, m.consumeHandoff()

	case holdingAddedMsg:
		m.adding = false
		if msg.err != nil {
			m.logger.Error("Error adding coin to portfolio", zap.String("coin", msg.coinID), zap.Error(msg.err))
			return m, ui.Alert("Error", AddFailedMessage)
		}
		m.holdings = msg.holdings
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.logger.Error("Export failed", zap.Error(msg.err))
			return m, ui.Alert("Export failed", msg.err.Error())
		}
		return m, ui.Alert("Export complete", "Saved to "+msg.path)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *PortfolioScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.app.Keys
	if len(m.holdings) == 0 {
		if key.Matches(msg, keys.Enter) {
			return ui.Navigate(ui.At(ui.RouteHome))
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.table.MoveUp()
	case key.Matches(msg, keys.Down):
		m.table.MoveDown()
	case key.Matches(msg, keys.Enter):
		if h, ok := m.selected(); ok {
			return ui.Navigate(ui.CoinLocation(h.ID))
		}
	case key.Matches(msg, keys.Remove):
		if h, ok := m.selected(); ok {
			holdings, err := m.app.Portfolio.Remove(h.ID)
			if err != nil {
				m.logger.Error("Failed to remove holding", zap.String("coin", h.ID), zap.Error(err))
				return ui.Alert("Error", "Failed to remove coin from portfolio.")
			}
			m.holdings = holdings
		}
	case key.Matches(msg, keys.Export):
		return m.export()
	}
	return nil
}

func (m *PortfolioScreen) export() tea.Cmd {
	exporter := m.app.Exporter
	if exporter == nil {
		return nil
	}
	opts := export.Options{Format: export.FormatCSV}
	if m.app.Config != nil {
		opts.OutputDir = m.app.Config.ExportDir
	}
	holdings := m.holdings.Clone()
	return func() tea.Msg {
		path, err := exporter.Export(holdings, opts)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *PortfolioScreen) selected() (portfolio.Holding, bool) {
	i := m.table.SelectedRow()
	if i < 0 || i >= len(m.holdings) {
		return portfolio.Holding{}, false
	}
	return m.holdings[i], true
}

// Holdings returns the holdings shown
func (m *PortfolioScreen) Holdings() portfolio.Portfolio {
	return m.holdings
}

// View renders the screen
func (m *PortfolioScreen) View() string {
	s := m.styles()
	title := s.Title.Render("My Portfolio")

	if !m.loaded {
		return m.frame(title)
	}
	status := ""
	if m.adding {
		status = "\n" + s.Muted.Render("Adding coin...")
	}

	if len(m.holdings) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			s.Muted.Render("Your portfolio is empty. Add some coins to get started!"),
			"",
			s.ButtonActive.Render("Browse Coins"),
		)
		return m.frame(title + status + "\n\n" + m.center(empty))
	}

	summary := s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.SubHeader.Render("Portfolio Summary"),
		s.Text.Render("Total Value: ")+s.Bold.Render(format.USDDecimal(portfolio.TotalValue(m.holdings))),
		s.Text.Render(fmt.Sprintf("Number of Assets: %d", len(m.holdings))),
	))

	rows := make([][]string, len(m.holdings))
	for i, h := range m.holdings {
		rows[i] = []string{
			fmt.Sprintf("%s %s", h.Name, strings.ToUpper(h.Symbol)),
			format.Quantity(h.Quantity),
			format.USD(h.PriceWhenAdded),
			format.USDDecimal(h.Value()),
			"Remove",
		}
	}
	m.table.SetStyles(s).SetWidth(m.width - 2).SetRows(rows)

	return m.frame(title + status + "\n" + summary + "\n" + m.table.View())
}
