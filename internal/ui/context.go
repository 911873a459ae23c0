package ui

import (
	"context"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/config"
	"github.com/rovshanmuradov/coinfolio/internal/export"
	"github.com/rovshanmuradov/coinfolio/internal/logger"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
)

// MarketService is the part of the market client the screens use.
type MarketService interface {
	ListMarkets(ctx context.Context, page int) ([]market.MarketSummary, error)
	FetchCoinView(ctx context.Context, id string, r market.Range) (*market.CoinView, error)
}

// AppContext carries the services every screen needs. It is passed
// explicitly to screen constructors.
type AppContext struct {
	Ctx       context.Context
	Theme     *Theme
	Keys      KeyMap
	Market    MarketService
	Portfolio *portfolio.Store
	Quotes    portfolio.QuoteFetcher
	Exporter  *export.Exporter
	Logs      *logger.LogBuffer
	Logger    *zap.Logger
	Config    *config.Config
}

// Context returns the base context for commands, never nil.
func (a *AppContext) Context() context.Context {
	if a.Ctx == nil {
		return context.Background()
	}
	return a.Ctx
}

// Named returns a child logger, or a no-op logger when none is set.
func (a *AppContext) Named(name string) *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger.Named(name)
}
