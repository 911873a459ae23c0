package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/listing"
)

type marketsCmd struct {
	env *Env

	apiPage  int
	sortKey  string
	desc     bool
	pageSize int
	page     int
}

func (*marketsCmd) Name() string     { return "markets" }
func (*marketsCmd) Synopsis() string { return "list coins by market cap" }
func (*marketsCmd) Usage() string {
	return `coinfolio markets [-page N] [-sort key] [-desc] [-n size] [-p page]

  Fetches one page of the market list and prints it as a table. The list is
  split into pages of -n coins; -p picks the page, which is then sorted by
  -sort (name, current_price, price_change_24h, market_cap, total_volume).
  -n 0 prints the whole list.
`
}

func (c *marketsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.apiPage, "page", 1, "Page of the market API to fetch.")
	f.StringVar(&c.sortKey, "sort", "", "Sort key; defaults to market cap, descending.")
	f.BoolVar(&c.desc, "desc", false, "Sort descending.")
	f.IntVar(&c.pageSize, "n", c.env.Config.CoinsPerPage, "Coins per page, 0 for all.")
	f.IntVar(&c.page, "p", 1, "Page to show.")
}

func (c *marketsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order := listing.DefaultSort()
	if c.sortKey != "" {
		k, ok := listing.ParseKey(c.sortKey)
		if !ok {
			return c.env.usage("unknown sort key %q", c.sortKey)
		}
		order = listing.SortState{Key: k, Direction: listing.Asc}
		if c.desc {
			order.Direction = listing.Desc
		}
	}
	if c.pageSize < 0 {
		return c.env.usage("-n must not be negative")
	}

	coins, err := c.env.Market.ListMarkets(ctx, c.apiPage)
	if err != nil {
		c.env.Logger.Error("Failed to list markets", zap.Error(err))
		return c.env.fail("Error fetching markets: %v", err)
	}
	if len(coins) == 0 {
		fmt.Fprintln(c.env.Out, "No data available")
		return subcommands.ExitSuccess
	}

	visible := coins
	summary := fmt.Sprintf("%d coins", len(coins))
	if c.pageSize > 0 {
		total := listing.TotalPages(len(coins), c.pageSize)
		page := listing.ClampPage(c.page, total)
		visible = listing.Paginate(coins, c.pageSize, page)
		from, to := listing.Window(len(coins), c.pageSize, page)
		summary = fmt.Sprintf("Showing %d to %d of %d (page %d/%d)", from, to, len(coins), page, total)
	}
	visible = order.Apply(visible)

	headers := make([]string, len(listing.TableKeys))
	for i, k := range listing.TableKeys {
		headers[i] = listing.Header(k)
	}
	rows := make([][]string, len(visible))
	for i, coin := range visible {
		rows[i] = listing.Cells(coin)
	}

	fmt.Fprintln(c.env.Out, renderTable(headers, rows, 1, 2, 3, 4))
	fmt.Fprintln(c.env.Out, summary)
	c.env.Logger.Debug("Listed markets",
		zap.Int("count", len(visible)),
		zap.String("sort", string(order.Key)),
		zap.String("direction", string(order.Direction)))
	return subcommands.ExitSuccess
}
