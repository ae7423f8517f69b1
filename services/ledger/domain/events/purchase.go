package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/services/ledger/domain/services"
)

// EventVersion is the schema version stamped on ledger events.
const EventVersion = 1

// TopicPurchaseRecorded is published for every stored purchase.
const TopicPurchaseRecorded = "purchase.recorded"

// PurchaseRecordedEvent carries the purchase and the item's resulting level
// so consumers can react to low stock without reading the item back.
type PurchaseRecordedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	PurchaseID   uuid.UUID `json:"purchase_id"`
	ItemID       uuid.UUID `json:"item_id"`
	Quantity     int       `json:"quantity"`
	Date         string    `json:"date"`
	NewLevel     int       `json:"new_level"`
	ReorderLevel int       `json:"reorder_level"`
	NeedsReorder bool      `json:"needs_reorder"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewPurchaseRecorded(p services.Posting) PurchaseRecordedEvent {
	return PurchaseRecordedEvent{
		EventID:      uuid.New(),
		Version:      EventVersion,
		PurchaseID:   p.Purchase.ID,
		ItemID:       p.Purchase.ItemID,
		Quantity:     p.Purchase.Quantity,
		Date:         clock.FormatDate(p.Purchase.Date),
		NewLevel:     p.NewLevel,
		ReorderLevel: p.ReorderLevel,
		NeedsReorder: p.NeedsReorder,
		OccurredAt:   p.Purchase.CreatedAt,
	}
}
