package screen

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/config"
	"github.com/rovshanmuradov/coinfolio/internal/export"
	"github.com/rovshanmuradov/coinfolio/internal/logger"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
	"github.com/rovshanmuradov/coinfolio/internal/storage"
	"github.com/rovshanmuradov/coinfolio/internal/ui"
	"github.com/rovshanmuradov/coinfolio/internal/ui/component"
	"github.com/rovshanmuradov/coinfolio/internal/ui/router"
)

type fakeMarket struct {
	mu        sync.Mutex
	coins     []market.MarketSummary
	listErr   error
	view      *market.CoinView
	viewErr   error
	viewCalls []market.Range
}

func (f *fakeMarket) ListMarkets(ctx context.Context, page int) ([]market.MarketSummary, error) {
	return f.coins, f.listErr
}

func (f *fakeMarket) FetchCoinView(ctx context.Context, id string, r market.Range) (*market.CoinView, error) {
	f.mu.Lock()
	f.viewCalls = append(f.viewCalls, r)
	f.mu.Unlock()
	return f.view, f.viewErr
}

func ptr(v float64) *float64 { return &v }

func coins(n int) []market.MarketSummary {
	out := make([]market.MarketSummary, n)
	for i := range out {
		out[i] = market.MarketSummary{
			ID:           "coin" + string(rune('a'+i)),
			Symbol:       "c" + string(rune('a'+i)),
			Name:         "Coin " + string(rune('A'+i)),
			CurrentPrice: ptr(float64(100 - i)),
			MarketCap:    ptr(float64(1000 - i)),
		}
	}
	return out
}

func bitcoinView() *market.CoinView {
	return &market.CoinView{
		Coin: &market.CoinDetail{
			ID:          "bitcoin",
			Symbol:      "btc",
			Name:        "Bitcoin",
			Description: map[string]string{"en": "<p>Peer to peer <b>cash</b>.</p>"},
			MarketData: market.MarketData{
				CurrentPrice: map[string]float64{"usd": 50000},
			},
		},
	}
}

func testApp(t *testing.T, m *fakeMarket, quotes portfolio.QuoteFetcher) *ui.AppContext {
	t.Helper()
	cfg := config.Default()
	cfg.ExportDir = t.TempDir()

	store := portfolio.NewStore(storage.NewMemoryKV(), zap.NewNop())
	return &ui.AppContext{
		Ctx:       context.Background(),
		Theme:     ui.NewTheme(true),
		Keys:      ui.DefaultKeyMap(),
		Market:    m,
		Portfolio: store,
		Quotes:    quotes,
		Exporter:  export.NewExporter(zap.NewNop()),
		Logs:      logger.NewLogBuffer(50),
		Logger:    zap.NewNop(),
		Config:    cfg,
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// run executes cmd and returns its message; batches are not expanded.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestMarketsScreenPaging(t *testing.T) {
	m := &fakeMarket{coins: coins(25)}
	s := NewHomeScreen(testApp(t, m, nil))
	s.Init()

	_, cmd := s.Update(run(t, s.fetch()))
	assert.Nil(t, cmd)

	assert.Equal(t, 1, s.Page())
	assert.Len(t, s.Visible(), 10)

	s.SetPage(0)
	assert.Equal(t, 1, s.Page())

	s.Update(runes("n"))
	s.Update(runes("n"))
	assert.Equal(t, 3, s.Page())
	assert.Len(t, s.Visible(), 5)

	s.Update(runes("n"))
	assert.Equal(t, 3, s.Page())

	s.Update(runes("b"))
	assert.Equal(t, 2, s.Page())
}

func TestMarketsScreenSortsVisiblePage(t *testing.T) {
	m := &fakeMarket{coins: coins(15)}
	s := NewHomeScreen(testApp(t, m, nil))
	s.Update(run(t, s.fetch()))

	s.Update(runes("2"))
	visible := s.Visible()
	require.Len(t, visible, 10)
	assert.Equal(t, 91.0, *visible[0].CurrentPrice)
	assert.Equal(t, 100.0, *visible[9].CurrentPrice)

	s.Update(runes("2"))
	assert.Equal(t, 100.0, *s.Visible()[0].CurrentPrice)
}

func TestTableScreenShowsEverything(t *testing.T) {
	m := &fakeMarket{coins: coins(25)}
	s := NewTableScreen(testApp(t, m, nil))
	s.Update(run(t, s.fetch()))

	assert.Len(t, s.Visible(), 25)
	s.Update(runes("n"))
	assert.Equal(t, 1, s.Page())
}

func TestMarketsScreenEnterOpensCoin(t *testing.T) {
	m := &fakeMarket{coins: coins(3)}
	s := NewHomeScreen(testApp(t, m, nil))
	s.Update(run(t, s.fetch()))

	_, cmd := s.Update(enter())
	msg, ok := run(t, cmd).(ui.RouterMsg)
	require.True(t, ok)
	assert.Equal(t, ui.RouteCoin, msg.To.Route)
	assert.Equal(t, "coina", msg.To.CoinID)
}

func TestMarketsScreenFailure(t *testing.T) {
	m := &fakeMarket{listErr: errors.New("offline")}
	s := NewHomeScreen(testApp(t, m, nil))
	s.Init()
	s.Update(run(t, s.fetch()))

	assert.Empty(t, s.Visible())
	assert.Contains(t, s.View(), "No data available")
}

func TestCoinScreenRangeRefetch(t *testing.T) {
	m := &fakeMarket{view: bitcoinView()}
	s := NewCoinScreen(testApp(t, m, nil), "bitcoin")
	assert.Equal(t, market.Range7D, s.Range())

	s.Update(run(t, s.fetch()))

	_, cmd := s.Update(runes("1"))
	assert.Equal(t, market.Range1D, s.Range())
	s.Update(run(t, cmd))

	assert.Equal(t, []market.Range{market.Range7D, market.Range1D}, m.viewCalls)
	assert.Nil(t, s.SetRange(market.Range1D))
}

func TestCoinScreenDropsStaleResponse(t *testing.T) {
	m := &fakeMarket{view: bitcoinView()}
	s := NewCoinScreen(testApp(t, m, nil), "bitcoin")

	s.Init()
	stale := s.fetch()
	fresh := s.fetch()

	s.Update(run(t, stale))
	assert.Contains(t, s.View(), "Loading")

	s.Update(run(t, fresh))
	assert.Contains(t, s.View(), "Bitcoin (BTC)")
}

func TestCoinScreenInvalidQuantity(t *testing.T) {
	m := &fakeMarket{view: bitcoinView()}
	s := NewCoinScreen(testApp(t, m, nil), "bitcoin")
	s.Update(run(t, s.fetch()))

	s.Update(runes("a"))
	require.True(t, s.CapturesInput())

	s.quantity.SetFieldValue("quantity", "0")
	_, cmd := s.Update(enter())

	alert, ok := run(t, cmd).(ui.AlertMsg)
	require.True(t, ok)
	assert.Equal(t, "Please enter a valid quantity", alert.Message)
	assert.True(t, s.CapturesInput())
}

func TestCoinScreenAddNavigatesToPortfolio(t *testing.T) {
	m := &fakeMarket{view: bitcoinView()}
	s := NewCoinScreen(testApp(t, m, nil), "bitcoin")
	s.Update(run(t, s.fetch()))

	s.Update(runes("a"))
	s.quantity.SetFieldValue("quantity", "2.5")
	_, cmd := s.Update(enter())

	msg, ok := run(t, cmd).(ui.RouterMsg)
	require.True(t, ok)
	assert.Equal(t, "/portfolio?add=bitcoin&quantity=2.5", msg.To.String())
	assert.False(t, s.CapturesInput())
	assert.Equal(t, "1", s.quantity.GetValue("quantity"))
}

func TestCoinScreenEscClosesModal(t *testing.T) {
	m := &fakeMarket{view: bitcoinView()}
	s := NewCoinScreen(testApp(t, m, nil), "bitcoin")
	s.Update(run(t, s.fetch()))

	s.OpenModal()
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, s.CapturesInput())
}

func TestRenderDescription(t *testing.T) {
	out := RenderDescription(`<p>Bitcoin is <a href="x">first</a> &amp; *oldest*.</p>`, "dark", 60)
	assert.Contains(t, out, "Bitcoin")
	assert.Contains(t, out, "first")
	assert.NotContains(t, out, "<a")
	assert.NotContains(t, out, "href")

	assert.Empty(t, RenderDescription("<p></p>", "dark", 60))
}

func quoteFunc(calls *int, err error) portfolio.QuoteFunc {
	return func(ctx context.Context, coinID string) (portfolio.Quote, error) {
		*calls++
		if err != nil {
			return portfolio.Quote{}, err
		}
		return portfolio.Quote{ID: coinID, Name: "Bitcoin", Symbol: "btc", Price: 50000}, nil
	}
}

func loadPortfolio(t *testing.T, s *PortfolioScreen) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(run(t, s.Init()))
	return cmd
}

func TestPortfolioHandoffConsumedOnce(t *testing.T) {
	calls := 0
	app := testApp(t, &fakeMarket{}, quoteFunc(&calls, nil))
	s := NewPortfolioScreen(app, ui.PortfolioAdd("bitcoin", 2))

	add := loadPortfolio(t, s)
	assert.Equal(t, "/portfolio", s.Location().String())

	_, cmd := s.Update(run(t, add))
	assert.Nil(t, cmd)
	require.Len(t, s.Holdings(), 1)
	assert.Equal(t, 2.0, s.Holdings()[0].Quantity)

	assert.Nil(t, loadPortfolio(t, s))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2.0, app.Portfolio.Holdings()[0].Quantity)
}

func TestPortfolioHandoffWithoutQuantity(t *testing.T) {
	calls := 0
	app := testApp(t, &fakeMarket{}, quoteFunc(&calls, nil))
	s := NewPortfolioScreen(app, ui.ParseLocation("/portfolio?add=bitcoin&quantity=abc"))

	assert.Nil(t, loadPortfolio(t, s))
	assert.Equal(t, "/portfolio", s.Location().String())
	assert.Empty(t, s.Holdings())
	assert.Zero(t, calls)
}

func TestPortfolioAddFailureAlerts(t *testing.T) {
	calls := 0
	app := testApp(t, &fakeMarket{}, quoteFunc(&calls, errors.New("offline")))
	s := NewPortfolioScreen(app, ui.PortfolioAdd("bitcoin", 1))

	_, cmd := s.Update(run(t, loadPortfolio(t, s)))
	alert, ok := run(t, cmd).(ui.AlertMsg)
	require.True(t, ok)
	assert.Equal(t, AddFailedMessage, alert.Message)
	assert.Empty(t, s.Holdings())
}

func TestPortfolioRemoveAndOpen(t *testing.T) {
	calls := 0
	app := testApp(t, &fakeMarket{}, quoteFunc(&calls, nil))
	_, err := app.Portfolio.Add(context.Background(), "bitcoin", 1, app.Quotes)
	require.NoError(t, err)
	_, err = app.Portfolio.Add(context.Background(), "ethereum", 3, app.Quotes)
	require.NoError(t, err)

	s := NewPortfolioScreen(app, ui.At(ui.RoutePortfolio))
	assert.Nil(t, loadPortfolio(t, s))
	require.Len(t, s.Holdings(), 2)

	_, cmd := s.Update(enter())
	msg, ok := run(t, cmd).(ui.RouterMsg)
	require.True(t, ok)
	assert.Equal(t, "/coin/bitcoin", msg.To.String())

	s.Update(runes("d"))
	require.Len(t, s.Holdings(), 1)
	assert.Equal(t, "ethereum", s.Holdings()[0].ID)
	assert.Len(t, app.Portfolio.Holdings(), 1)
}

func TestPortfolioEmptyState(t *testing.T) {
	app := testApp(t, &fakeMarket{}, nil)
	s := NewPortfolioScreen(app, ui.At(ui.RoutePortfolio))
	loadPortfolio(t, s)

	assert.Contains(t, s.View(), "Your portfolio is empty")

	_, cmd := s.Update(enter())
	msg, ok := run(t, cmd).(ui.RouterMsg)
	require.True(t, ok)
	assert.Equal(t, ui.RouteHome, msg.To.Route)
}

func TestPortfolioExport(t *testing.T) {
	calls := 0
	app := testApp(t, &fakeMarket{}, quoteFunc(&calls, nil))
	_, err := app.Portfolio.Add(context.Background(), "bitcoin", 1, app.Quotes)
	require.NoError(t, err)

	s := NewPortfolioScreen(app, ui.At(ui.RoutePortfolio))
	loadPortfolio(t, s)

	_, cmd := s.Update(runes("e"))
	_, cmd = s.Update(run(t, cmd))
	alert, ok := run(t, cmd).(ui.AlertMsg)
	require.True(t, ok)
	assert.Equal(t, "Export complete", alert.Title)
	assert.True(t, strings.HasSuffix(alert.Message, ".csv"))
}

func TestLogsScreenFilterAndClear(t *testing.T) {
	app := testApp(t, &fakeMarket{}, nil)
	app.Logs.Add("INFO", "hello", nil)
	app.Logs.Add("ERROR", "boom", nil)

	s := NewLogsScreen(app)
	s.SetSize(100, 30)
	s.Init()

	s.Update(tea.KeyMsg{Type: tea.KeyF3})
	assert.Equal(t, component.LevelError, s.Filter())
	assert.Contains(t, s.View(), "boom")
	assert.NotContains(t, s.View(), "hello")

	s.Update(runes("0"))
	assert.Equal(t, component.LevelAll, s.Filter())

	s.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Empty(t, app.Logs.GetRecentLogs(0))
}

func TestForLocation(t *testing.T) {
	app := testApp(t, &fakeMarket{}, nil)
	tests := []struct {
		path  string
		route ui.Route
	}{
		{"/", ui.RouteHero},
		{"/login", ui.RouteLogin},
		{"/home", ui.RouteHome},
		{"/table", ui.RouteTable},
		{"/coin/bitcoin", ui.RouteCoin},
		{"/portfolio", ui.RoutePortfolio},
		{"/logs", ui.RouteLogs},
		{"/nowhere", ui.RouteNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s := ForLocation(app, ui.ParseLocation(tt.path))
			routed, ok := s.(router.Routed)
			require.True(t, ok)
			assert.Equal(t, tt.route, routed.Route())
		})
	}
}

func TestHeroScreenActions(t *testing.T) {
	s := NewHeroScreen(testApp(t, &fakeMarket{}, nil))

	_, cmd := s.Update(enter())
	msg, ok := run(t, cmd).(ui.RouterMsg)
	require.True(t, ok)
	assert.Equal(t, ui.RouteHome, msg.To.Route)

	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = s.Update(enter())
	msg, ok = run(t, cmd).(ui.RouterMsg)
	require.True(t, ok)
	assert.Equal(t, ui.RouteLogin, msg.To.Route)
}

func TestLoginScreenSubmitGoesHome(t *testing.T) {
	s := NewLoginScreen(testApp(t, &fakeMarket{}, nil))
	assert.True(t, s.CapturesInput())

	s.Update(enter())
	_, cmd := s.Update(enter())
	msg, ok := run(t, cmd).(ui.RouterMsg)
	require.True(t, ok)
	assert.Equal(t, ui.RouteHome, msg.To.Route)

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.IsType(t, ui.BackMsg{}, run(t, cmd))
}
