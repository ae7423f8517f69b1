// Package reorder raises restock alerts for items whose stock fell to or below
// their reorder level. Alerts run as a Temporal workflow when Temporal is
// enabled and inline otherwise.
package reorder

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// What started a reorder check.
const (
	TriggerPurchase = "purchase"
	TriggerCreated  = "created"
	TriggerSweep    = "sweep"
)

// ReorderInput is the workflow argument.
type ReorderInput struct {
	ItemID  uuid.UUID `json:"item_id"`
	Trigger string    `json:"trigger"`
}

// Check is the item state ConfirmReorder observed.
type Check struct {
	Needed         bool   `json:"needed"`
	ItemName       string `json:"item_name"`
	InventoryLevel int    `json:"inventory_level"`
	ReorderLevel   int    `json:"reorder_level"`
}

// ReorderResult reports whether an alert was raised.
type ReorderResult struct {
	Alerted bool  `json:"alerted"`
	Check   Check `json:"check"`
}

// WorkflowID dedupes concurrent reorder runs for one item.
func WorkflowID(itemID uuid.UUID) string {
	return "reorder-" + itemID.String()
}

// ReorderWorkflow re-reads the item and raises an alert if it still needs stock.
func ReorderWorkflow(ctx workflow.Context, in ReorderInput) (ReorderResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumAttempts:    5,
		},
	})
	log := workflow.GetLogger(ctx)

	var a *Activities
	var check Check
	if err := workflow.ExecuteActivity(ctx, a.ConfirmReorder, in.ItemID).Get(ctx, &check); err != nil {
		return ReorderResult{}, err
	}
	if !check.Needed {
		log.Info("reorder no longer needed", "item_id", in.ItemID, "trigger", in.Trigger)
		return ReorderResult{Check: check}, nil
	}

	if err := workflow.ExecuteActivity(ctx, a.RaiseReorderAlert, in, check).Get(ctx, nil); err != nil {
		return ReorderResult{Check: check}, err
	}
	return ReorderResult{Alerted: true, Check: check}, nil
}
