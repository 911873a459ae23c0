package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/coinfolio/internal/market"
)

func f(v float64) *float64 { return &v }

func ids(coins []market.MarketSummary) []string {
	out := make([]string, len(coins))
	for i, c := range coins {
		out[i] = c.ID
	}
	return out
}

func sampleCoins() []market.MarketSummary {
	return []market.MarketSummary{
		{ID: "bitcoin", Name: "Bitcoin", CurrentPrice: f(50000), MarketCap: f(1000), PriceChange24h: f(-20)},
		{ID: "ethereum", Name: "Ethereum", CurrentPrice: f(3000), MarketCap: f(500), PriceChange24h: f(15)},
		{ID: "cardano", Name: "Cardano", CurrentPrice: f(0.5), MarketCap: f(40), PriceChange24h: f(0.01)},
		{ID: "solana", Name: "Solana", CurrentPrice: f(100), MarketCap: f(80), PriceChange24h: f(-3)},
	}
}

func TestSortByAscending(t *testing.T) {
	coins := sampleCoins()
	sorted := SortBy(coins, KeyCurrentPrice, Asc)

	assert.Equal(t, []string{"cardano", "solana", "ethereum", "bitcoin"}, ids(sorted))
	assert.Equal(t, []string{"bitcoin", "ethereum", "cardano", "solana"}, ids(coins), "input must not change")
}

func TestSortByName(t *testing.T) {
	sorted := SortBy(sampleCoins(), KeyName, Desc)
	assert.Equal(t, []string{"solana", "ethereum", "cardano", "bitcoin"}, ids(sorted))
}

func TestSortAscDescAreReverses(t *testing.T) {
	for _, key := range TableKeys {
		asc := ids(SortBy(sampleCoins(), key, Asc))
		desc := ids(SortBy(sampleCoins(), key, Desc))

		reversed := make([]string, len(desc))
		for i := range desc {
			reversed[len(desc)-1-i] = desc[i]
		}
		if key == KeyTotalVolume {
			// no coin has a volume, so both orders keep input order
			assert.Equal(t, asc, desc, key)
			continue
		}
		assert.Equal(t, asc, reversed, key)
	}
}

func TestSortAbsentValuesCompareEqual(t *testing.T) {
	coins := []market.MarketSummary{
		{ID: "a", MarketCap: nil},
		{ID: "b", MarketCap: f(0)},
		{ID: "c", MarketCap: nil},
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(SortBy(coins, KeyMarketCap, Desc)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(SortBy(coins, KeyMarketCap, Asc)))

	assert.False(t, Present(coins[1], KeyMarketCap))
	assert.False(t, Present(market.MarketSummary{}, KeyName))
	assert.True(t, Present(market.MarketSummary{Name: "x"}, KeyName))
}

func TestSortStateToggle(t *testing.T) {
	s := DefaultSort()
	assert.Equal(t, SortState{Key: KeyMarketCap, Direction: Desc}, s)

	// the default column is descending, so selecting it starts ascending
	s = s.Toggle(KeyMarketCap)
	assert.Equal(t, Asc, s.Direction)
	s = s.Toggle(KeyMarketCap)
	assert.Equal(t, Desc, s.Direction)

	s = s.Toggle(KeyName)
	assert.Equal(t, SortState{Key: KeyName, Direction: Asc}, s)
	s = s.Toggle(KeyName)
	assert.Equal(t, SortState{Key: KeyName, Direction: Desc}, s)
	s = s.Toggle(KeyCurrentPrice)
	assert.Equal(t, SortState{Key: KeyCurrentPrice, Direction: Asc}, s)
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey(" Market_Cap ")
	require.True(t, ok)
	assert.Equal(t, KeyMarketCap, k)

	k, ok = ParseKey("market_cap_rank")
	require.True(t, ok)
	assert.Equal(t, KeyMarketCapRank, k)

	_, ok = ParseKey("volume")
	assert.False(t, ok)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Paginate(items, 10, 1))
	assert.Equal(t, []int{21, 22, 23}, Paginate(items, 10, 3))
	assert.Empty(t, Paginate(items, 10, 4))
	assert.Empty(t, Paginate(items, 10, 0))
	assert.Empty(t, Paginate(items, 0, 1))

	assert.Equal(t, Paginate(items, 10, 2), Paginate(items, 10, 2))
}

func TestPaginateUnionRebuildsList(t *testing.T) {
	items := make([]int, 57)
	for i := range items {
		items[i] = i
	}

	for _, size := range []int{1, 5, 10, 57, 100} {
		var union []int
		for p := 1; p <= TotalPages(len(items), size); p++ {
			union = append(union, Paginate(items, size, p)...)
		}
		assert.Equal(t, items, union, "page size %d", size)
	}
}

func TestPaginateDoesNotAliasTail(t *testing.T) {
	items := []int{1, 2, 3, 4}
	page := Paginate(items, 2, 1)
	page = append(page, 99)
	assert.Equal(t, []int{1, 2, 3, 4}, items)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 10, TotalPages(100, 10))
	assert.Equal(t, 11, TotalPages(101, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(3, 10))
}

func TestPageLabels(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    []int
	}{
		{"empty", 0, 1, []int{}},
		{"single", 1, 1, []int{1}},
		{"seven pages", 7, 6, []int{1, 2, 3, 4, 5, 6, 7}},
		{"near start", 10, 1, []int{1, 2, 3, 4, 5, Ellipsis, 10}},
		{"page four", 10, 4, []int{1, 2, 3, 4, 5, Ellipsis, 10}},
		{"middle", 10, 5, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"near end", 10, 7, []int{1, Ellipsis, 6, 7, 8, 9, 10}},
		{"last", 10, 10, []int{1, Ellipsis, 6, 7, 8, 9, 10}},
		{"eight pages middle", 8, 5, []int{1, Ellipsis, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageLabels(tt.total, tt.current))
		})
	}
}

func TestPageLabelsSmallTotalsListEveryPage(t *testing.T) {
	for total := 1; total <= 7; total++ {
		for current := 1; current <= total; current++ {
			labels := PageLabels(total, current)
			require.Len(t, labels, total)
			for i, l := range labels {
				assert.Equal(t, i+1, l)
			}
		}
	}
}

func TestWindow(t *testing.T) {
	from, to := Window(100, 10, 3)
	assert.Equal(t, 21, from)
	assert.Equal(t, 30, to)

	from, to = Window(95, 10, 10)
	assert.Equal(t, 91, from)
	assert.Equal(t, 95, to)

	from, to = Window(0, 10, 1)
	assert.Zero(t, from)
	assert.Zero(t, to)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 1, ClampPage(3, 0))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "CURRENT PRICE", Header(KeyCurrentPrice))
	assert.Equal(t, "MARKET CAP", Header(KeyMarketCap))
	assert.Equal(t, "PRICE CHANGE_24H", Header(KeyPriceChange24h))
	assert.Equal(t, "NAME", Header(KeyName))
}

func TestCellsShowNA(t *testing.T) {
	cells := Cells(market.MarketSummary{Name: "Bitcoin", Symbol: "btc"})
	require.Len(t, cells, len(TableKeys))
	assert.Equal(t, "Bitcoin (BTC)", cells[0])
	for _, cell := range cells[1:] {
		assert.Equal(t, "N/A", cell)
	}

	cells = Cells(market.MarketSummary{Name: "Ether", Symbol: "eth", CurrentPrice: f(3000), PriceChangePercentage24h: f(-1.5)})
	assert.Equal(t, "$3,000.00", cells[1])
	assert.Equal(t, "-1.50%", cells[2])
}
