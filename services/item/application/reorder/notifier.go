package reorder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/workflows"
)

// Notifier hands an item to the reorder process.
type Notifier interface {
	NotifyReorder(ctx context.Context, itemID uuid.UUID, trigger string) error
}

// TemporalNotifier starts ReorderWorkflow, at most one open run per item.
type TemporalNotifier struct {
	Client *workflows.TemporalClient
}

func (n *TemporalNotifier) NotifyReorder(ctx context.Context, itemID uuid.UUID, trigger string) error {
	_, err := n.Client.StartOnce(ctx, WorkflowID(itemID), ReorderWorkflow, ReorderInput{ItemID: itemID, Trigger: trigger})
	if err != nil {
		return fmt.Errorf("notify reorder: %w", err)
	}
	return nil
}

// InlineNotifier runs the activities directly, without retries or dedupe.
type InlineNotifier struct {
	Activities *Activities
}

func (n *InlineNotifier) NotifyReorder(ctx context.Context, itemID uuid.UUID, trigger string) error {
	check, err := n.Activities.ConfirmReorder(ctx, itemID)
	if err != nil {
		return err
	}
	if !check.Needed {
		return nil
	}
	return n.Activities.RaiseReorderAlert(ctx, ReorderInput{ItemID: itemID, Trigger: trigger}, check)
}

// NewNotifier returns a TemporalNotifier when tc is set and an InlineNotifier otherwise.
func NewNotifier(tc *workflows.TemporalClient, acts *Activities) Notifier {
	if tc != nil {
		return &TemporalNotifier{Client: tc}
	}
	return &InlineNotifier{Activities: acts}
}
