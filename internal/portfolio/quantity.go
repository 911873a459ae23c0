package portfolio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity is the rule for user-typed quantities. Surrounding space is
// ignored; the rest must be a finite decimal number greater than zero.
// Exponents ("1e-3") are accepted, while hex, "Infinity" and trailing
// garbage ("2abc") are rejected.
func ParseQuantity(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidQuantity)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, input)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidQuantity)
	}

	q, _ := d.Float64()
	if q <= 0 || math.IsInf(q, 0) || math.IsNaN(q) {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidQuantity)
	}
	return q, nil
}

// ParseHandoff reads the quantity carried by a navigation handoff. It is
// lenient like the receiving view: a leading number is used and anything
// unusable yields zero, which callers treat as "nothing to add".
func ParseHandoff(raw string) float64 {
	s := strings.TrimSpace(raw)
	for end := len(s); end > 0; end-- {
		q, err := strconv.ParseFloat(s[:end], 64)
		if err == nil {
			if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
				return 0
			}
			return q
		}
	}
	return 0
}

func validQuantity(q float64) bool {
	return q > 0 && !math.IsInf(q, 0) && !math.IsNaN(q)
}
