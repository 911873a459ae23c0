// internal/portfolio/holding.go
package portfolio

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageKey is the key the portfolio blob is stored under.
const StorageKey = "cryptoPortfolio"

// Holding is one coin in the portfolio. PriceWhenAdded is the USD price at
// the time the coin was first added and never changes afterwards.
type Holding struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	Image          string    `json:"image"`
	Quantity       float64   `json:"quantity"`
	PriceWhenAdded float64   `json:"priceWhenAdded"`
	AddedAt        time.Time `json:"addedAt"`
}

// Value is quantity times the frozen price.
func (h Holding) Value() decimal.Decimal {
	return decimal.NewFromFloat(h.Quantity).Mul(decimal.NewFromFloat(h.PriceWhenAdded))
}

// Portfolio is an ordered list of holdings with unique ids.
type Portfolio []Holding

// Find returns the index of id, or -1.
func (p Portfolio) Find(id string) int {
	for i, h := range p {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares nothing with p.
func (p Portfolio) Clone() Portfolio {
	out := make(Portfolio, len(p))
	copy(out, p)
	return out
}

// TotalValue sums quantity times priceWhenAdded over every holding.
func TotalValue(p Portfolio) decimal.Decimal {
	total := decimal.Zero
	for _, h := range p {
		total = total.Add(h.Value())
	}
	return total
}
