package domain

import "errors"

// Sentinel errors for the ledger domain. Use errors.Is() to check these.
var (
	// ErrUnknownItem indicates the purchase references an item that does not exist.
	ErrUnknownItem = errors.New("unknown item")

	// ErrInactiveItem indicates the item exists but no longer accepts purchases.
	ErrInactiveItem = errors.New("item is inactive")
)
