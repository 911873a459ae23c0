package portfolio

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rovshanmuradov/coinfolio/internal/market"
)

// MockQuoteFetcher is a mock implementation of QuoteFetcher
type MockQuoteFetcher struct {
	mock.Mock
}

func (m *MockQuoteFetcher) FetchQuote(ctx context.Context, coinID string) (Quote, error) {
	args := m.Called(ctx, coinID)
	return args.Get(0).(Quote), args.Error(1)
}

// MockCoinGetter is a mock implementation of CoinGetter
type MockCoinGetter struct {
	mock.Mock
}

func (m *MockCoinGetter) GetCoin(ctx context.Context, id string) (*market.CoinDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.CoinDetail), args.Error(1)
}
