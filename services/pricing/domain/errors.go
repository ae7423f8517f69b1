package domain

import "errors"

// Sentinel errors for the pricing domain. Use errors.Is() to check these.
var (
	// ErrUnknownItem indicates the price references an item that does not exist.
	ErrUnknownItem = errors.New("unknown item")

	// ErrInactiveItem indicates the item exists but no longer accepts prices.
	ErrInactiveItem = errors.New("item is inactive")

	// ErrPriceUnset indicates no interval covers the requested date, or the
	// item has no open interval.
	ErrPriceUnset = errors.New("price unset")
)
