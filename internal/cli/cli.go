// Package cli implements the coinfolio command line: market listings, coin
// lookups and portfolio management outside the TUI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/config"
	"github.com/rovshanmuradov/coinfolio/internal/export"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
)

// Market is the part of the market client the commands use.
type Market interface {
	ListMarkets(ctx context.Context, page int) ([]market.MarketSummary, error)
	GetCoinRaw(ctx context.Context, id string) (interface{}, error)
	FetchCoinView(ctx context.Context, id string, r market.Range) (*market.CoinView, error)
}

// Env is what every command runs against. Command output goes to Out,
// failures to Err.
type Env struct {
	Out      io.Writer
	Err      io.Writer
	Logger   *zap.Logger
	Config   *config.Config
	Market   Market
	Store    *portfolio.Store
	Quotes   portfolio.QuoteFetcher
	Exporter *export.Exporter
}

// Register adds the commands to c.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&marketsCmd{env: env}, "market")
	c.Register(&coinCmd{env: env}, "market")

	c.Register(&portfolioCmd{env: env}, "portfolio")
	c.Register(&addCmd{env: env}, "portfolio")
	c.Register(&removeCmd{env: env}, "portfolio")
	c.Register(&exportCmd{env: env}, "portfolio")
}

func (e *Env) fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(e.Err, format+"\n", args...)
	return subcommands.ExitFailure
}

func (e *Env) usage(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(e.Err, format+"\n", args...)
	return subcommands.ExitUsageError
}
