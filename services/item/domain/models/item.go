package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate of the registry. InventoryLevel is written here
// only at creation; afterwards the ledger is its sole mutator.
type Item struct {
	ID             uuid.UUID
	Name           ItemName
	Description    string
	Category       Category
	Weight         float64
	Color          string
	Active         bool
	InventoryLevel int
	ReorderLevel   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateParams carries raw catalog fields before validation.
type CreateParams struct {
	Name           string
	Description    string
	Category       string
	Weight         float64
	Color          string
	InventoryLevel int
	ReorderLevel   int
}

// NewItem builds an active Item from already-validated parts.
func NewItem(name ItemName, category Category, p CreateParams, now time.Time) *Item {
	return &Item{
		ID:             uuid.New(),
		Name:           name,
		Description:    p.Description,
		Category:       category,
		Weight:         p.Weight,
		Color:          p.Color,
		Active:         true,
		InventoryLevel: p.InventoryLevel,
		ReorderLevel:   p.ReorderLevel,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NeedsReorder reports whether stock is at or below the reorder threshold.
func (i *Item) NeedsReorder() bool {
	return i.InventoryLevel <= i.ReorderLevel
}

// SetActive flips the status flag. Returns false when nothing changed.
func (i *Item) SetActive(active bool, now time.Time) bool {
	if i.Active == active {
		return false
	}
	i.Active = active
	i.UpdatedAt = now
	return true
}
