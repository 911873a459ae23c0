package portfolio

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity is returned for empty, non-numeric, non-finite or
// non-positive quantities.
var ErrInvalidQuantity = errors.New("please enter a valid quantity")

// ErrMissingCoinID is returned when a coin id is empty after trimming.
var ErrMissingCoinID = errors.New("coin id is required")

// FetchError means the quote for a new coin could not be fetched. The
// portfolio is unchanged.
type FetchError struct {
	CoinID string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch quote for %s: %v", e.CoinID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the stored portfolio could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse stored portfolio: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
