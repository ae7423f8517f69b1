package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ItemName is a value object representing a catalog item name.
// Encapsulates structural rules: trimmed, 1 <= rune count <= 255.
type ItemName string

const (
	minItemNameLength = 1
	maxItemNameLength = 255
)

// NewItemName trims surrounding whitespace from s and checks its length.
func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minItemNameLength {
		return "", fmt.Errorf("must be at least %d character", minItemNameLength)
	}
	if n > maxItemNameLength {
		return "", fmt.Errorf("must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}

// Key is the case-insensitive identity used for uniqueness.
func (n ItemName) Key() string {
	return strings.ToLower(string(n))
}
