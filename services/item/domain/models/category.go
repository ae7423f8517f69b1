package models

import "strings"

// Category is the closed set of product lines the shop stocks.
type Category string

const (
	CategoryPieces   Category = "pieces"
	CategoryBoards   Category = "boards"
	CategoryClocks   Category = "clocks"
	CategorySupplies Category = "supplies"
)

// Categories lists every valid Category in display order.
var Categories = []Category{CategoryPieces, CategoryBoards, CategoryClocks, CategorySupplies}

// ParseCategory matches s exactly against the known categories.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// CategoryNames joins the categories for error messages.
func CategoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (c Category) String() string { return string(c) }
