package portfolio

import (
	"context"
	"errors"

	"github.com/rovshanmuradov/coinfolio/internal/market"
)

// Quote is what a new holding needs from the market: display metadata and
// the current USD price.
type Quote struct {
	ID     string
	Name   string
	Symbol string
	Image  string
	Price  float64
}

// QuoteFetcher resolves a coin id to a quote.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, coinID string) (Quote, error)
}

// QuoteFunc adapts a function to QuoteFetcher.
type QuoteFunc func(ctx context.Context, coinID string) (Quote, error)

func (f QuoteFunc) FetchQuote(ctx context.Context, coinID string) (Quote, error) {
	return f(ctx, coinID)
}

// CoinGetter is the part of the market client MarketQuotes needs.
type CoinGetter interface {
	GetCoin(ctx context.Context, id string) (*market.CoinDetail, error)
}

// MarketQuotes fetches quotes from the coin detail endpoint.
type MarketQuotes struct {
	Coins CoinGetter
}

var errNoPrice = errors.New("coin has no usd price")

func (m MarketQuotes) FetchQuote(ctx context.Context, coinID string) (Quote, error) {
	coin, err := m.Coins.GetCoin(ctx, coinID)
	if err != nil {
		return Quote{}, err
	}
	price, ok := coin.PriceUSD()
	if !ok {
		return Quote{}, errNoPrice
	}
	return Quote{
		ID:     coin.ID,
		Name:   coin.Name,
		Symbol: coin.Symbol,
		Image:  coin.Image.Small,
		Price:  price,
	}, nil
}
