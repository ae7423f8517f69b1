package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/services/pricing/domain/models"
)

// EventVersion is the schema version stamped on pricing events.
const EventVersion = 1

// TopicPriceChanged is published when a new price interval opens.
const TopicPriceChanged = "price.changed"

// PriceChangedEvent describes one applied CloseAndOpen transition.
// Dates are calendar dates in YYYY-MM-DD form.
type PriceChangedEvent struct {
	EventID          uuid.UUID        `json:"event_id"`
	Version          int              `json:"version"`
	ItemID           uuid.UUID        `json:"item_id"`
	IntervalID       uuid.UUID        `json:"interval_id"`
	Price            decimal.Decimal  `json:"price"`
	StartDate        string           `json:"start_date"`
	ClosedIntervalID *uuid.UUID       `json:"closed_interval_id,omitempty"`
	PreviousPrice    *decimal.Decimal `json:"previous_price,omitempty"`
	OccurredAt       time.Time        `json:"occurred_at"`
}

// NewPriceChanged builds the event for a stored transition. closed may be nil.
func NewPriceChanged(opened, closed *models.PriceInterval) PriceChangedEvent {
	evt := PriceChangedEvent{
		EventID:    uuid.New(),
		Version:    EventVersion,
		ItemID:     opened.ItemID,
		IntervalID: opened.ID,
		Price:      opened.Price,
		StartDate:  clock.FormatDate(opened.StartDate),
		OccurredAt: opened.CreatedAt,
	}
	if closed != nil {
		id, prev := closed.ID, closed.Price
		evt.ClosedIntervalID = &id
		evt.PreviousPrice = &prev
	}
	return evt
}
