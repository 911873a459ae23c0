// internal/portfolio/store.go
package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/storage"
)

// Store owns the portfolio and writes the whole document to the KV after
// every mutation. It is safe for concurrent use; each mutation is atomic
// with respect to the others.
type Store struct {
	kv     storage.KV
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	holdings Portfolio
}

// NewStore creates an empty store. Call Load to read persisted state.
func NewStore(kv storage.KV, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger.Named("portfolio"),
		now:    time.Now,
	}
}

// Load reads the persisted portfolio. A missing or unreadable blob yields an
// empty portfolio; the cause is logged, never returned.
func (s *Store) Load() Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holdings = s.read()
	return s.holdings.Clone()
}

func (s *Store) read() Portfolio {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Warn("Failed to read portfolio", zap.Error(err))
		return Portfolio{}
	}
	if !ok {
		return Portfolio{}
	}

	var p Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("Stored portfolio is malformed, starting empty", zap.Error(&ParseError{Err: err}))
		return Portfolio{}
	}
	if p == nil {
		p = Portfolio{}
	}
	return p
}

// Holdings returns a copy of the current portfolio.
func (s *Store) Holdings() Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holdings.Clone()
}

// Add adds quantity of coinID. A held coin has its quantity increased with
// no network call. A new coin is quoted through quotes and appended under
// coinID with the quoted price. On any error the current portfolio is
// returned unchanged.
func (s *Store) Add(ctx context.Context, coinID string, quantity float64, quotes QuoteFetcher) (Portfolio, error) {
	coinID = strings.TrimSpace(coinID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !validQuantity(quantity) {
		return s.holdings.Clone(), ErrInvalidQuantity
	}
	if coinID == "" {
		return s.holdings.Clone(), ErrMissingCoinID
	}

	next := s.holdings.Clone()
	if i := next.Find(coinID); i >= 0 {
		next[i].Quantity = decimal.NewFromFloat(next[i].Quantity).
			Add(decimal.NewFromFloat(quantity)).
			InexactFloat64()
		s.logger.Info("Increased holding",
			zap.String("coin", coinID),
			zap.Float64("added", quantity),
			zap.Float64("quantity", next[i].Quantity))
	} else {
		quote, err := quotes.FetchQuote(ctx, coinID)
		if err != nil {
			s.logger.Warn("Failed to fetch quote", zap.String("coin", coinID), zap.Error(err))
			return s.holdings.Clone(), &FetchError{CoinID: coinID, Err: err}
		}
		if quote.ID != "" && quote.ID != coinID {
			s.logger.Debug("Quote id differs from requested id",
				zap.String("coin", coinID), zap.String("quote_id", quote.ID))
		}
		next = append(next, Holding{
			ID:             coinID,
			Name:           quote.Name,
			Symbol:         quote.Symbol,
			Image:          quote.Image,
			Quantity:       quantity,
			PriceWhenAdded: quote.Price,
			AddedAt:        s.now().UTC(),
		})
		s.logger.Info("Added holding",
			zap.String("coin", coinID),
			zap.Float64("quantity", quantity),
			zap.Float64("price", quote.Price))
	}

	if err := s.commit(next); err != nil {
		return s.holdings.Clone(), err
	}
	return next.Clone(), nil
}

// Remove drops coinID. Removing a coin that is not held changes nothing.
func (s *Store) Remove(coinID string) (Portfolio, error) {
	coinID = strings.TrimSpace(coinID)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.holdings.Find(coinID)
	if i < 0 {
		return s.holdings.Clone(), nil
	}

	next := make(Portfolio, 0, len(s.holdings)-1)
	next = append(next, s.holdings[:i]...)
	next = append(next, s.holdings[i+1:]...)

	if err := s.commit(next); err != nil {
		return s.holdings.Clone(), err
	}
	s.logger.Info("Removed holding", zap.String("coin", coinID))
	return next.Clone(), nil
}

// TotalValue is the value of the current portfolio at frozen prices.
func (s *Store) TotalValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalValue(s.holdings)
}

// commit persists next and only then makes it current.
func (s *Store) commit(next Portfolio) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode portfolio: %w", err)
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		s.logger.Error("Failed to persist portfolio", zap.Error(err))
		return fmt.Errorf("persist portfolio: %w", err)
	}
	s.holdings = next
	return nil
}
