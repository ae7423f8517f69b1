package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates another item already uses the name (case-insensitive).
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItem indicates one or more catalog fields violate domain constraints.
	ErrInvalidItem = errors.New("invalid item")
)
