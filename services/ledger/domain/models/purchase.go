package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is one stock movement. Positive quantities are receipts,
// negative quantities are losses (sales, breakage, shrinkage). Purchases are
// append-only.
type Purchase struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	Date      time.Time
	CreatedAt time.Time
}

// IsLoss reports whether the purchase removed stock.
func (p *Purchase) IsLoss() bool { return p.Quantity < 0 }
