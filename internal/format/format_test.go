package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUSD(t *testing.T) {
	tests := map[float64]string{
		50000:         "$50,000.00",
		1234567.891:   "$1,234,567.89",
		1:             "$1.00",
		0:             "$0.00",
		0.5:           "$0.500000",
		0.00001234:    "$0.000012",
		-2500.5:       "-$2,500.50",
		1234567890123: "$1,234,567,890,123.00",
	}
	for v, want := range tests {
		assert.Equal(t, want, USD(v), "%v", v)
	}
}

func TestUSDDecimal(t *testing.T) {
	assert.Equal(t, "$100,000.00", USDDecimal(decimal.NewFromInt(100000)))
}

func TestLargeAmountsKeepAllDigits(t *testing.T) {
	// 9223372036854775807 cents is the last amount go-money can take.
	assert.Equal(t, "$92,233,720,368,547,758.07", USDDecimal(decimal.RequireFromString("92233720368547758.07")))
	assert.Equal(t, "$92,233,720,368,547,758.08", USDDecimal(decimal.RequireFromString("92233720368547758.08")))
	assert.Equal(t, "-$92,233,720,368,547,758.08", USDDecimal(decimal.RequireFromString("-92233720368547758.08")))

	total := decimal.NewFromFloat(1e20).Mul(decimal.NewFromInt(50000))
	assert.Equal(t, "$5,000,000,000,000,000,000,000,000.00", USDDecimal(total))
	assert.Equal(t, "$1,000,000,000,000,000,000.00", USD(1e18))
	assert.Equal(t, "-$1,000,000,000,000,000,000.00", USD(-1e18))
	assert.Equal(t, "1,000,000,000,000,000,000,000", Number(1e21, 0))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "21,000,000", Number(21000000, 0))
	assert.Equal(t, "19,500,000.12", Number(19500000.123, 2))
	assert.Equal(t, "0", Number(0, -1))
}

func TestQuantityAndPercent(t *testing.T) {
	assert.Equal(t, "2", Quantity(2))
	assert.Equal(t, "0.125", Quantity(0.125))
	assert.Equal(t, "-1.50%", Percent(-1.5))
	assert.Equal(t, "3.14%", Percent(3.14159))
}

func TestOrNA(t *testing.T) {
	v := 0.0
	assert.Equal(t, NA, OrNA(nil, USD))
	assert.Equal(t, "$0.00", OrNA(&v, USD))
	assert.Equal(t, NA, StringOrNA(""))
	assert.Equal(t, "SHA-256", StringOrNA("SHA-256"))
}

func TestChartLabel(t *testing.T) {
	ts := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "14:30", ChartLabel(ts, 1))
	assert.Equal(t, "May 1", ChartLabel(ts, 7))
	assert.Equal(t, "May 1", ChartLabel(ts, 365))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Nov 10, 2021", Date("2021-11-10T14:24:11.849Z"))
	assert.Equal(t, "garbage", Date("garbage"))
	assert.Equal(t, NA, Date(""))
}
