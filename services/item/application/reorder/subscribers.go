package reorder

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	itemevents "github.com/ghuser/stockroom/services/item/domain/events"
	ledgerevents "github.com/ghuser/stockroom/services/ledger/domain/events"
)

// Subscribe wires the events that can leave an item at or below its reorder
// level to notifier. Subscriber errors are drained to the log until ctx ends.
func Subscribe(ctx context.Context, bus *events.EventBus, notifier Notifier, log logger.Logger) error {
	handlers := map[string]func(context.Context, *message.Message) error{
		itemevents.TopicItemCreated:       HandleItemCreated(notifier),
		ledgerevents.TopicPurchaseRecorded: HandlePurchaseRecorded(notifier),
	}

	topics := make([]string, 0, len(handlers))
	for topic, h := range handlers {
		errCh, err := bus.Subscribe(ctx, topic, h)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
		topics = append(topics, topic)
	}

	log.Info("event subscribers registered", "topics", topics)
	return nil
}

// HandleItemCreated notifies items registered at or below their reorder level.
// Handlers must be idempotent; the bus retries failures and the workflow ID
// dedupes repeated starts.
func HandleItemCreated(notifier Notifier) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[itemevents.ItemCreatedEvent](msg)
		if err != nil {
			return err
		}
		if !evt.NeedsReorder() {
			return nil
		}
		return notifier.NotifyReorder(ctx, evt.ItemID, TriggerCreated)
	}
}

// HandlePurchaseRecorded notifies when a purchase left the item needing stock.
func HandlePurchaseRecorded(notifier Notifier) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[ledgerevents.PurchaseRecordedEvent](msg)
		if err != nil {
			return err
		}
		if !evt.NeedsReorder {
			return nil
		}
		return notifier.NotifyReorder(ctx, evt.ItemID, TriggerPurchase)
	}
}
