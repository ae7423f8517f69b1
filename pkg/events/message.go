package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Metadata keys set on every domain event message.
const (
	MetaEventID      = "event_id"
	MetaEventVersion = "event_version"
)

// NewMessage marshals event to JSON and stamps event_id, event_version and
// the OTel trace context from ctx onto the message metadata.
func NewMessage(ctx context.Context, eventID uuid.UUID, version int, event any) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("events: marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(MetaEventID, eventID.String())
	msg.Metadata.Set(MetaEventVersion, strconv.Itoa(version))

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}
	return msg, nil
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("events: decode %s: %w", msg.UUID, err)
	}
	return v, nil
}
