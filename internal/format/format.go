// Package format renders numbers the way the views display them.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// NA is shown for values the API did not report.
const NA = "N/A"

// subDollarFraction keeps small prices readable ("$0.000012").
const subDollarFraction = 6

var (
	usd     = *money.New(0, money.USD).Currency()
	usdTiny = money.NewFormatter(subDollarFraction, usd.Decimal, usd.Thousand, usd.Grapheme, usd.Template)

	maxUnits = decimal.NewFromInt(math.MaxInt64)
)

// formatUnits renders d with f. go-money takes int64 minor units, so amounts
// beyond that range are grouped from the decimal digits with the same layout.
func formatUnits(f *money.Formatter, d decimal.Decimal) string {
	units := d.Shift(int32(f.Fraction)).Round(0)
	if units.Abs().LessThanOrEqual(maxUnits) {
		return f.Format(units.IntPart())
	}

	sa := units.Abs().String()
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if units.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// USD formats v as dollars with cents. Values under one dollar keep six
// decimals.
func USD(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.Abs().LessThan(decimal.NewFromInt(1)) && !d.IsZero() {
		return formatUnits(usdTiny, d)
	}
	return formatUnits(usd.Formatter(), d)
}

// USDDecimal formats an exact amount with cents.
func USDDecimal(d decimal.Decimal) string {
	return formatUnits(usd.Formatter(), d)
}

// Number formats v with thousands separators and the given decimals.
func Number(v float64, fraction int) string {
	if fraction < 0 {
		fraction = 0
	}
	f := money.NewFormatter(fraction, ".", ",", "", "1")
	return formatUnits(f, decimal.NewFromFloat(v))
}

// Quantity formats a holding quantity without trailing zeros.
func Quantity(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// Percent formats v with two decimals and a percent sign.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// OrNA applies fn to *v, or returns NA when v is nil.
func OrNA(v *float64, fn func(float64) string) string {
	if v == nil {
		return NA
	}
	return fn(*v)
}

// StringOrNA returns s, or NA when it is empty.
func StringOrNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}

// ChartLabel labels a price sample: clock time for a one-day chart, the
// date otherwise.
func ChartLabel(t time.Time, days int) string {
	if days == 1 {
		return t.Format("15:04")
	}
	return t.Format("Jan 2")
}

// Date formats an API timestamp (RFC 3339) as a date. Unparseable input is
// returned unchanged.
func Date(s string) string {
	if s == "" {
		return NA
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}
