package events

import (
	"time"

	"github.com/google/uuid"
)

// EventVersion is the schema version stamped on every item event.
const EventVersion = 1

const (
	// TopicItemCreated is the Watermill topic published when an Item is created.
	TopicItemCreated = "item.created"

	// TopicItemStatusChanged is published when an Item is activated or deactivated.
	TopicItemStatusChanged = "item.status_changed"
)

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID        uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version        int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID         uuid.UUID `json:"item_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	InventoryLevel int       `json:"inventory_level"`
	ReorderLevel   int       `json:"reorder_level"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NeedsReorder reports whether the item was created at or below its threshold.
func (e ItemCreatedEvent) NeedsReorder() bool {
	return e.InventoryLevel <= e.ReorderLevel
}

// ItemStatusChangedEvent is published after an Item's active flag flips.
type ItemStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	Active     bool      `json:"active"`
	OccurredAt time.Time `json:"occurred_at"`
}
