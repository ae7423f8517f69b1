package reorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/logger"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ItemReader is satisfied by the item application service.
type ItemReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
}

// Activities are registered on the Temporal worker as a struct.
type Activities struct {
	Items ItemReader
	Log   logger.Logger
}

// ConfirmReorder reports whether the item is active and still at or below its
// reorder level. A deleted or unknown item needs nothing.
func (a *Activities) ConfirmReorder(ctx context.Context, itemID uuid.UUID) (Check, error) {
	item, err := a.Items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return Check{}, nil
		}
		return Check{}, fmt.Errorf("confirm reorder: %w", err)
	}
	return Check{
		Needed:         item.Active && item.NeedsReorder(),
		ItemName:       item.Name.String(),
		InventoryLevel: item.InventoryLevel,
		ReorderLevel:   item.ReorderLevel,
	}, nil
}

// RaiseReorderAlert emits the restock notification.
func (a *Activities) RaiseReorderAlert(ctx context.Context, in ReorderInput, check Check) error {
	a.Log.WarnContext(ctx, "reorder needed",
		"item_id", in.ItemID,
		"item_name", check.ItemName,
		"inventory_level", check.InventoryLevel,
		"reorder_level", check.ReorderLevel,
		"trigger", in.Trigger,
	)
	return nil
}
