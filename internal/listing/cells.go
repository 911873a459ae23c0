package listing

import (
	"fmt"
	"strings"

	"github.com/rovshanmuradov/coinfolio/internal/format"
	"github.com/rovshanmuradov/coinfolio/internal/market"
)

// Header is the column title of a table key: the first underscore becomes
// a space and the result is upper-cased.
func Header(k Key) string {
	return strings.ToUpper(strings.Replace(string(k), "_", " ", 1))
}

// Cells formats one coin as the TableKeys columns. The 24h column shows the
// percentage change while sorting uses the absolute change.
func Cells(c market.MarketSummary) []string {
	return []string{
		fmt.Sprintf("%s (%s)", c.Name, strings.ToUpper(c.Symbol)),
		format.OrNA(c.CurrentPrice, format.USD),
		format.OrNA(c.PriceChangePercentage24h, format.Percent),
		format.OrNA(c.MarketCap, format.USD),
		format.OrNA(c.TotalVolume, format.USD),
	}
}
