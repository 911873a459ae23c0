// internal/market/types.go
package market

import (
	"errors"
	"fmt"
	"time"
)

// MarketSummary is one row of /coins/markets. Numeric fields are nil when the
// API sends null.
type MarketSummary struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *float64 `json:"market_cap_rank"`
	TotalVolume              *float64 `json:"total_volume"`
	High24h                  *float64 `json:"high_24h"`
	Low24h                   *float64 `json:"low_24h"`
	PriceChange24h           *float64 `json:"price_change_24h"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	CirculatingSupply        *float64 `json:"circulating_supply"`
	TotalSupply              *float64 `json:"total_supply"`
	MaxSupply                *float64 `json:"max_supply"`
	ATH                      *float64 `json:"ath"`
	ATL                      *float64 `json:"atl"`
	LastUpdated              string   `json:"last_updated"`
}

// Image holds the coin logo in three sizes.
type Image struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// Links are the project's external links as the API reports them. List
// fields often carry empty strings.
type Links struct {
	Homepage          []string `json:"homepage"`
	BlockchainSite    []string `json:"blockchain_site"`
	OfficialForumURL  []string `json:"official_forum_url"`
	SubredditURL      string   `json:"subreddit_url"`
	TwitterScreenName string   `json:"twitter_screen_name"`
	FacebookUsername  string   `json:"facebook_username"`
	ReposURL          struct {
		Github []string `json:"github"`
	} `json:"repos_url"`
}

// MarketData is the market section of a coin detail. Maps are keyed by
// currency code ("usd").
type MarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	MarketCap                map[string]float64 `json:"market_cap"`
	TotalVolume              map[string]float64 `json:"total_volume"`
	ATH                      map[string]float64 `json:"ath"`
	ATHDate                  map[string]string  `json:"ath_date"`
	ATL                      map[string]float64 `json:"atl"`
	ATLDate                  map[string]string  `json:"atl_date"`
	PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
	TotalSupply              *float64           `json:"total_supply"`
	MaxSupply                *float64           `json:"max_supply"`
	CirculatingSupply        *float64           `json:"circulating_supply"`
}

// CoinDetail is the response of /coins/{id}.
type CoinDetail struct {
	ID                 string            `json:"id"`
	Symbol             string            `json:"symbol"`
	Name               string            `json:"name"`
	Image              Image             `json:"image"`
	MarketCapRank      *float64          `json:"market_cap_rank"`
	GenesisDate        string            `json:"genesis_date"`
	HashingAlgorithm   string            `json:"hashing_algorithm"`
	BlockTimeInMinutes *float64          `json:"block_time_in_minutes"`
	Description        map[string]string `json:"description"`
	Links              Links             `json:"links"`
	MarketData         MarketData        `json:"market_data"`
}

// USD looks up the usd entry of a currency map.
func USD(m map[string]float64) (float64, bool) {
	v, ok := m["usd"]
	return v, ok
}

// PriceUSD is the current USD price, if reported.
func (c *CoinDetail) PriceUSD() (float64, bool) {
	return USD(c.MarketData.CurrentPrice)
}

// DescriptionEN returns the English description HTML.
func (c *CoinDetail) DescriptionEN() string {
	return c.Description["en"]
}

// PricePoint is one sample of a price history.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// CoinView bundles what the detail screen renders.
type CoinView struct {
	Coin    *CoinDetail
	History []PricePoint
}

// Range is a chart window in days.
type Range int

const (
	Range1D Range = 1
	Range7D Range = 7
	Range1M Range = 30
	Range1Y Range = 365
)

// Ranges lists the supported ranges in display order.
var Ranges = []Range{Range1D, Range7D, Range1M, Range1Y}

var ErrUnsupportedRange = errors.New("unsupported range")

// ParseRange validates a day count.
func ParseRange(days int) (Range, error) {
	for _, r := range Ranges {
		if int(r) == days {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %d days", ErrUnsupportedRange, days)
}

// Days returns the range as the API's days parameter.
func (r Range) Days() int { return int(r) }

// Label is the button caption for the range.
func (r Range) Label() string {
	switch r {
	case Range1D:
		return "24h"
	case Range7D:
		return "7d"
	case Range1M:
		return "30d"
	case Range1Y:
		return "1y"
	default:
		return fmt.Sprintf("%dd", int(r))
	}
}
