package screen

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/config"
	"github.com/rovshanmuradov/coinfolio/internal/format"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

type coinLoadedMsg struct {
	seq  int
	view *market.CoinView
	err  error
}

// CoinScreen shows one coin: stats, price chart, description and links.
// The add modal hands the quantity to the portfolio screen.
type CoinScreen struct {
	base
	logger *zap.Logger

	id      string
	rng     market.Range
	seq     int
	loading bool
	view    *market.CoinView

	spinner spinner.Model
	chart   *component.PriceChart

	modalOpen bool
	quantity  *component.Form

	aboutKey string
	about    string
}

const defaultQuantity = "1"

// NewCoinScreen creates the detail screen for id
func NewCoinScreen(app *ui.AppContext, id string) *CoinScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	rng := market.Range(config.DefaultRange)
	if app.Config != nil {
		if r, err := market.ParseRange(app.Config.DefaultRange); err == nil {
			rng = r
		}
	}

	quantity := component.NewForm(app.Theme.Styles()).
		AddField("quantity", component.FieldTypeNumber, "Quantity", false, "")
	quantity.SetFieldValue("quantity", defaultQuantity)

	return &CoinScreen{
		base:     newBase(app, ui.RouteCoin),
		logger:   app.Named("coin").With(zap.String("coin", id)),
		id:       id,
		rng:      rng,
		spinner:  sp,
		chart:    component.NewPriceChart(app.Theme.Styles(), 60, 8),
		quantity: quantity,
	}
}

// Init starts loading
func (m *CoinScreen) Init() tea.Cmd {
	m.loading = m.view == nil
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch loads detail and history together. Responses of an older range are
// dropped by sequence number.
func (m *CoinScreen) fetch() tea.Cmd {
	m.seq++
	seq, id, rng, app := m.seq, m.id, m.rng, m.app
	return func() tea.Msg {
		view, err := app.Market.FetchCoinView(app.Context(), id, rng)
		return coinLoadedMsg{seq: seq, view: view, err: err}
	}
}

// CapturesInput is true while the add modal is open.
func (m *CoinScreen) CapturesInput() bool {
	return m.modalOpen
}

// Range returns the selected chart range
func (m *CoinScreen) Range() market.Range {
	return m.rng
}

// Update handles screen updates
func (m *CoinScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coinLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Error("Failed to load coin", zap.Error(msg.err))
			return m, nil
		}
		m.view = msg.view
		m.chart.SetData(msg.view.History, m.rng.Days())
		m.aboutKey = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.modalOpen {
			return m, m.updateModal(msg)
		}
		return m, m.handleKey(msg)
	}

	if m.modalOpen {
		var cmd tea.Cmd
		m.quantity, cmd = m.quantity.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *CoinScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.app.Keys
	ranges := []key.Binding{keys.Range1D, keys.Range7D, keys.Range1M, keys.Range1Y}
	for i, binding := range ranges {
		if key.Matches(msg, binding) {
			return m.SetRange(market.Ranges[i])
		}
	}

	switch {
	case key.Matches(msg, keys.Add):
		if m.view != nil {
			m.OpenModal()
		}
	case key.Matches(msg, keys.Refresh):
		return m.Init()
	}
	return nil
}

// SetRange selects a chart range and refetches detail and history.
func (m *CoinScreen) SetRange(r market.Range) tea.Cmd {
	if r == m.rng && m.view != nil {
		return nil
	}
	m.rng = r
	return m.fetch()
}

// OpenModal opens the add-to-portfolio dialog.
func (m *CoinScreen) OpenModal() {
	m.modalOpen = true
}

func (m *CoinScreen) closeModal() {
	m.modalOpen = false
	m.quantity.Reset()
	m.quantity.SetFieldValue("quantity", defaultQuantity)
}

func (m *CoinScreen) updateModal(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		m.closeModal()
		return nil
	}

	var cmd tea.Cmd
	m.quantity, cmd = m.quantity.Update(msg)
	if !m.quantity.Submitted() {
		return cmd
	}

	q, err := portfolio.ParseQuantity(m.quantity.GetValue("quantity"))
	if err != nil {
		m.logger.Info("Rejected quantity", zap.String("input", m.quantity.GetValue("quantity")))
		return ui.Alert("Invalid quantity", "Please enter a valid quantity")
	}

	coinID := m.view.Coin.ID
	m.closeModal()
	return ui.Navigate(ui.PortfolioAdd(coinID, q))
}

// View renders the screen
func (m *CoinScreen) View() string {
	s := m.styles()

	if m.view == nil {
		if m.loading {
			return m.frame(m.center(m.spinner.View() + " Loading..."))
		}
		return m.frame(m.center(s.Muted.Render("No data available")))
	}

	coin := m.view.Coin
	md := coin.MarketData
	symbol := strings.ToUpper(coin.Symbol)

	title := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(fmt.Sprintf("%s (%s)", coin.Name, symbol)),
		s.Muted.Render("Rank #"+rank(coin.MarketCapRank)),
	)
	if m.modalOpen {
		return m.frame(title + "\n\n" + m.center(m.modalView()))
	}

	change := s.Muted.Render(format.NA)
	if md.PriceChangePercentage24h != nil {
		change = s.Change(*md.PriceChangePercentage24h).Render(format.Percent(*md.PriceChangePercentage24h))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(s.Muted.Render("Current Price"), s.Bold.Render(usdOf(mapUSD(md.CurrentPrice)))),
		stat(s.Muted.Render("Market Cap"), s.Bold.Render(usdOf(mapUSD(md.MarketCap)))),
		stat(s.Muted.Render("24h Change"), change),
		stat(s.Muted.Render("24h Volume"), s.Bold.Render(usdOf(mapUSD(md.TotalVolume)))),
	)
	overview := s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		stats, "", s.ButtonActive.Render("a  Add to Portfolio")))

	// Range buttons
	buttons := make([]string, len(market.Ranges))
	for i, r := range market.Ranges {
		label := fmt.Sprintf("%d %s", i+1, r.Label())
		if r == m.rng {
			buttons[i] = s.ButtonActive.Render(label)
		} else {
			buttons[i] = s.ButtonDisabled.Render(label)
		}
	}
	chartWidth := style.AdaptiveWidth(m.width, 85)
	if chartWidth < 20 {
		chartWidth = 20
	}
	m.chart.SetStyles(s).SetSize(chartWidth, 8)
	chart := s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.SubHeader.Render(fmt.Sprintf("Price Chart (%s/USD)", symbol)),
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
		"",
		m.chart.View(),
	))

	details := m.detailsView(coin)
	links := m.linksView(coin)

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", overview, chart, details, links)
	return m.frame(body)
}

func (m *CoinScreen) modalView() string {
	s := m.styles()
	m.quantity.SetStyles(s)
	coin := m.view.Coin

	price, _ := coin.PriceUSD()
	total := format.NA
	if q, err := portfolio.ParseQuantity(m.quantity.GetValue("quantity")); err == nil {
		total = format.USD(q * price)
	}

	return s.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.SubHeader.Render(fmt.Sprintf("Add %s to Portfolio", coin.Name)),
		m.quantity.View(),
		"",
		s.Muted.Render("Current Price: "+format.USD(price)),
		s.Muted.Render("Total Value: "+total),
		"",
		s.ButtonActive.Render("enter  Add to Portfolio")+s.Muted.Render("   esc  Cancel"),
	))
}

func (m *CoinScreen) detailsView(coin *market.CoinDetail) string {
	s := m.styles()
	md := coin.MarketData

	line := func(label, value string) string {
		return s.Bold.Render(label+":") + " " + s.Text.Render(value)
	}
	withDate := func(v map[string]float64, dates map[string]string) string {
		out := usdOf(mapUSD(v))
		if d := dates["usd"]; d != "" {
			out += " (" + format.Date(d) + ")"
		}
		return out
	}

	blockTime := format.NA
	if coin.BlockTimeInMinutes != nil && *coin.BlockTimeInMinutes != 0 {
		blockTime = format.Number(*coin.BlockTimeInMinutes, 0) + " mins"
	}

	keyDetails := lipgloss.JoinVertical(lipgloss.Left,
		s.SubHeader.Render("Key Details"),
		line("Genesis Date", format.StringOrNA(coin.GenesisDate)),
		line("Market Cap Rank", "#"+rank(coin.MarketCapRank)),
		line("Current Price", usdOf(mapUSD(md.CurrentPrice))),
		line("All-Time High", withDate(md.ATH, md.ATHDate)),
		line("All-Time Low", withDate(md.ATL, md.ATLDate)),
	)
	chainInfo := lipgloss.JoinVertical(lipgloss.Left,
		s.SubHeader.Render("Blockchain Info"),
		line("Hashing Algorithm", format.StringOrNA(coin.HashingAlgorithm)),
		line("Block Time", blockTime),
		line("Total Supply", supply(md.TotalSupply)),
		line("Max Supply", supply(md.MaxSupply)),
		line("Circulating Supply", supply(md.CirculatingSupply)),
	)

	width := m.width - 8
	if width < 40 {
		width = 40
	}
	parts := []string{s.SubHeader.Render("About " + coin.Name)}
	if about := m.aboutText(coin, width); about != "" {
		parts = append(parts, about)
	}
	parts = append(parts, style.AdaptiveJoinHorizontal(m.width,
		lipgloss.NewStyle().MarginRight(6).Render(keyDetails), chainInfo))
	if home := first(coin.Links.Homepage); home != "" {
		parts = append(parts, "", s.Info.Render("Official Website → "+home))
	}
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *CoinScreen) linksView(coin *market.CoinDetail) string {
	s := m.styles()
	l := coin.Links

	link := func(label, url string) string {
		if url == "" {
			return ""
		}
		return s.Info.Render(label) + " " + s.Muted.Render(url)
	}
	twitter := ""
	if l.TwitterScreenName != "" {
		twitter = "https://twitter.com/" + l.TwitterScreenName
	}
	facebook := ""
	if l.FacebookUsername != "" {
		facebook = "https://facebook.com/" + l.FacebookUsername
	}

	community := nonEmpty(
		link("Reddit", l.SubredditURL),
		link("Twitter", twitter),
		link("Facebook", facebook),
	)
	technical := nonEmpty(
		link("GitHub", first(l.ReposURL.Github)),
		link("Blockchain Explorer", first(l.BlockchainSite)),
		link("Official Forum", first(l.OfficialForumURL)),
	)

	parts := []string{s.SubHeader.Render("Resources & Links")}
	if len(community) > 0 {
		parts = append(parts, s.Bold.Render("Community"))
		parts = append(parts, community...)
	}
	if len(technical) > 0 {
		parts = append(parts, s.Bold.Render("Technical"))
		parts = append(parts, technical...)
	}
	if len(parts) == 1 {
		parts = append(parts, s.Muted.Render(format.NA))
	}
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// aboutText renders the description once per theme and width.
func (m *CoinScreen) aboutText(coin *market.CoinDetail, width int) string {
	styleName := "light"
	if m.app.Theme.Dark() {
		styleName = "dark"
	}
	cacheKey := fmt.Sprintf("%s/%d", styleName, width)
	if cacheKey == m.aboutKey {
		return m.about
	}

	m.aboutKey = cacheKey
	m.about = RenderDescription(coin.DescriptionEN(), styleName, width)
	if m.about == "" && coin.DescriptionEN() != "" {
		m.logger.Warn("Failed to render description")
	}
	return m.about
}

var descriptionPolicy = bluemonday.StrictPolicy()

// RenderDescription turns the API's HTML description into terminal text:
// tags are stripped, entities decoded, and the result word-wrapped by
// glamour in the given style ("dark" or "light").
func RenderDescription(desc, styleName string, width int) string {
	text := strings.TrimSpace(html.UnescapeString(descriptionPolicy.Sanitize(desc)))
	if text == "" {
		return ""
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(escapeMarkdown(text))
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`, "<", `\<`,
)

// escapeMarkdown keeps plain text from being read as markdown.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func stat(label, value string) string {
	return lipgloss.NewStyle().MarginRight(4).Render(lipgloss.JoinVertical(lipgloss.Left, label, value))
}

func rank(r *float64) string {
	return format.OrNA(r, func(v float64) string { return format.Number(v, 0) })
}

func usdOf(v *float64) string {
	return format.OrNA(v, format.USD)
}

func mapUSD(m map[string]float64) *float64 {
	if v, ok := market.USD(m); ok {
		return &v
	}
	return nil
}

func supply(v *float64) string {
	if v == nil || *v == 0 {
		return format.NA
	}
	return format.Number(*v, 0)
}

func first(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(items ...string) []string {
	out := items[:0]
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
