// Package services holds the stock posting rule as a pure function.
package services

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
)

// Inventory levels are stored as INTEGER.
const (
	MinLevel = math.MinInt32
	MaxLevel = math.MaxInt32
)

// StockItem is what the ledger needs to know about an item.
type StockItem struct {
	ID             uuid.UUID
	Active         bool
	InventoryLevel int
	ReorderLevel   int
}

// Posting is the complete write set of one purchase: the row to append and
// the item's resulting inventory level.
type Posting struct {
	Purchase     *models.Purchase
	NewLevel     int
	ReorderLevel int
	NeedsReorder bool
}

// Post validates a purchase against the locked item and returns its effect.
// Levels are not clamped; recording more losses than stock on hand yields a
// negative level.
func Post(item StockItem, quantity int, date, now time.Time) (Posting, error) {
	if !item.Active {
		return Posting{}, domainerr.Invalid("item_id", "item is inactive", ledgerdomain.ErrInactiveItem)
	}
	if quantity == 0 {
		return Posting{}, domainerr.Value("quantity must not be zero")
	}

	date = clock.DateOf(date)
	if today := clock.DateOf(now); date.After(today) {
		return Posting{}, domainerr.Temporal("purchase date %s is after today (%s)",
			clock.FormatDate(date), clock.FormatDate(today))
	}

	level := item.InventoryLevel + quantity
	if level < MinLevel || level > MaxLevel {
		return Posting{}, domainerr.Value("quantity %d would move inventory level %d outside [%d, %d]",
			quantity, item.InventoryLevel, MinLevel, MaxLevel)
	}
	return Posting{
		Purchase: &models.Purchase{
			ID:        uuid.New(),
			ItemID:    item.ID,
			Quantity:  quantity,
			Date:      date,
			CreatedAt: now,
		},
		NewLevel:     level,
		ReorderLevel: item.ReorderLevel,
		NeedsReorder: level <= item.ReorderLevel,
	}, nil
}
