// Package listing sorts and pages coin lists for display. Nothing here
// mutates its input.
package listing

import (
	"sort"
	"strings"

	"github.com/rovshanmuradov/coinfolio/internal/market"
)

// Key names a sortable MarketSummary field by its API name.
type Key string

const (
	KeyName                     Key = "name"
	KeySymbol                   Key = "symbol"
	KeyCurrentPrice             Key = "current_price"
	KeyPriceChange24h           Key = "price_change_24h"
	KeyPriceChangePercentage24h Key = "price_change_percentage_24h"
	KeyMarketCap                Key = "market_cap"
	KeyMarketCapRank            Key = "market_cap_rank"
	KeyTotalVolume              Key = "total_volume"
)

// TableKeys are the columns of the market table, in order.
var TableKeys = []Key{KeyName, KeyCurrentPrice, KeyPriceChange24h, KeyMarketCap, KeyTotalVolume}

var allKeys = append(append([]Key{}, TableKeys...), KeySymbol, KeyMarketCapRank, KeyPriceChangePercentage24h)

// ParseKey accepts a key name, case-insensitively.
func ParseKey(s string) (Key, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range allKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortState is the active column and order of a table.
type SortState struct {
	Key       Key
	Direction Direction
}

// DefaultSort is market cap, descending.
func DefaultSort() SortState {
	return SortState{Key: KeyMarketCap, Direction: Desc}
}

// Toggle selects key. Selecting the active ascending column flips it to
// descending; anything else starts ascending.
func (s SortState) Toggle(key Key) SortState {
	if s.Key == key && s.Direction == Asc {
		return SortState{Key: key, Direction: Desc}
	}
	return SortState{Key: key, Direction: Asc}
}

// value is a field read for comparison. A field is absent when it is nil,
// zero or the empty string.
type value struct {
	num     float64
	str     string
	isText  bool
	present bool
}

func field(c market.MarketSummary, key Key) value {
	switch key {
	case KeyName:
		return text(c.Name)
	case KeySymbol:
		return text(c.Symbol)
	case KeyCurrentPrice:
		return number(c.CurrentPrice)
	case KeyPriceChange24h:
		return number(c.PriceChange24h)
	case KeyPriceChangePercentage24h:
		return number(c.PriceChangePercentage24h)
	case KeyMarketCap:
		return number(c.MarketCap)
	case KeyMarketCapRank:
		return number(c.MarketCapRank)
	case KeyTotalVolume:
		return number(c.TotalVolume)
	}
	return value{}
}

func text(s string) value {
	return value{str: s, isText: true, present: s != ""}
}

func number(p *float64) value {
	if p == nil {
		return value{}
	}
	return value{num: *p, present: *p != 0}
}

// Present reports whether coin has a usable value for key.
func Present(c market.MarketSummary, key Key) bool {
	return field(c, key).present
}

// compare returns -1, 0 or 1. Absent operands compare equal to anything.
func compare(a, b value) int {
	if !a.present || !b.present {
		return 0
	}
	if a.isText {
		return strings.Compare(a.str, b.str)
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return 0
}

// SortBy returns a sorted copy of coins. The sort is stable and treats a
// coin lacking the key as equal to every other coin.
func SortBy(coins []market.MarketSummary, key Key, dir Direction) []market.MarketSummary {
	sorted := make([]market.MarketSummary, len(coins))
	copy(sorted, coins)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(field(sorted[i], key), field(sorted[j], key))
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

// Apply sorts coins by the state.
func (s SortState) Apply(coins []market.MarketSummary) []market.MarketSummary {
	return SortBy(coins, s.Key, s.Direction)
}
