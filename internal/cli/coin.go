package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/format"
	"github.com/rovshanmuradov/coinfolio/internal/market"
)

type coinCmd struct {
	env *Env

	query string
	days  int
}

func (*coinCmd) Name() string     { return "coin" }
func (*coinCmd) Synopsis() string { return "show one coin and its price history" }
func (*coinCmd) Usage() string {
	return `coinfolio coin [-range days] [-q jsonpath] <id>

  Prints the key figures of a coin and a summary of its price over the range
  (1, 7, 30 or 365 days). With -q, prints the result of a JSONPath query
  against the raw coin document instead, e.g. -q '$.links.homepage[0]'.
`
}

func (c *coinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query against the raw coin document.")
	f.IntVar(&c.days, "range", c.env.Config.DefaultRange, "Price history range in days.")
}

func (c *coinCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.env.usage("coin: exactly one coin id is required")
	}
	id := f.Arg(0)

	if c.query != "" {
		return c.runQuery(ctx, id)
	}

	r, err := market.ParseRange(c.days)
	if err != nil {
		return c.env.usage("coin: %v", err)
	}

	view, err := c.env.Market.FetchCoinView(ctx, id, r)
	if err != nil {
		c.env.Logger.Error("Failed to fetch coin", zap.String("coin", id), zap.Error(err))
		return c.env.fail("Error fetching coin %q: %v", id, err)
	}

	c.print(view, r)
	return subcommands.ExitSuccess
}

func (c *coinCmd) runQuery(ctx context.Context, id string) subcommands.ExitStatus {
	doc, err := c.env.Market.GetCoinRaw(ctx, id)
	if err != nil {
		c.env.Logger.Error("Failed to fetch coin", zap.String("coin", id), zap.Error(err))
		return c.env.fail("Error fetching coin %q: %v", id, err)
	}

	value, err := Query(doc, c.query)
	if err != nil {
		return c.env.fail("Error evaluating %q: %v", c.query, err)
	}
	out, err := Render(value)
	if err != nil {
		return c.env.fail("Error printing result: %v", err)
	}
	fmt.Fprintln(c.env.Out, out)
	return subcommands.ExitSuccess
}

// Query evaluates a JSONPath expression against doc. A list holding a single
// answer is unwrapped to that answer.
func Query(doc interface{}, path string) (interface{}, error) {
	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, err
	}
	if list, ok := value.([]interface{}); ok && len(list) == 1 {
		value = list[0]
	}
	return value, nil
}

// Render prints strings and numbers as they are and anything else as
// indented JSON.
func Render(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case float64, bool:
		return fmt.Sprint(v), nil
	}
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *coinCmd) print(view *market.CoinView, r market.Range) {
	coin := view.Coin
	md := coin.MarketData
	usd := func(m map[string]float64) string {
		if v, ok := market.USD(m); ok {
			return format.USD(v)
		}
		return format.NA
	}

	rank := format.NA
	if coin.MarketCapRank != nil {
		rank = "#" + format.Number(*coin.MarketCapRank, 0)
	}

	rows := [][]string{
		{"Rank", rank},
		{"Current Price", usd(md.CurrentPrice)},
		{"Market Cap", usd(md.MarketCap)},
		{"24h Change", format.OrNA(md.PriceChangePercentage24h, format.Percent)},
		{"24h Volume", usd(md.TotalVolume)},
		{"All-Time High", usd(md.ATH)},
		{"All-Time Low", usd(md.ATL)},
		{"Genesis Date", format.StringOrNA(coin.GenesisDate)},
	}

	fmt.Fprintf(c.env.Out, "%s (%s)\n", coin.Name, strings.ToUpper(coin.Symbol))
	fmt.Fprintln(c.env.Out, renderTable([]string{"Field", "Value"}, rows, 1))
	fmt.Fprintln(c.env.Out, HistorySummary(view.History, r))
}

// HistorySummary describes the price history in one line: the range, the
// low and high, and the change from first to last sample.
func HistorySummary(points []market.PricePoint, r market.Range) string {
	if len(points) == 0 {
		return fmt.Sprintf("Price (%s): no data available", r.Label())
	}

	low, high := points[0].Price, points[0].Price
	for _, p := range points[1:] {
		if p.Price < low {
			low = p.Price
		}
		if p.Price > high {
			high = p.Price
		}
	}

	change := format.NA
	if first := points[0].Price; first != 0 {
		change = format.Percent((points[len(points)-1].Price - first) / first * 100)
	}

	return fmt.Sprintf("Price (%s, %s to %s): low %s, high %s, change %s",
		r.Label(),
		format.ChartLabel(points[0].Time, r.Days()),
		format.ChartLabel(points[len(points)-1].Time, r.Days()),
		format.USD(low), format.USD(high), change)
}
