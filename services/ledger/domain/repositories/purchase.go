package repositories

//go:generate mockgen -source=purchase.go -destination=mocks/purchase_repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/ledger/domain/models"
	"github.com/ghuser/stockroom/services/ledger/domain/services"
)

// PostFunc decides the effect of one purchase given the locked item.
type PostFunc func(item services.StockItem) (services.Posting, error)

// PurchaseRepository stores the purchase stream and keeps each item's
// inventory level equal to its initial level plus the sum of its purchases.
type PurchaseRepository interface {
	// Apply locks the item, passes it to fn and stores the posting (purchase
	// row, new inventory level and PurchaseRecordedEvent) atomically, or
	// nothing if fn fails. Returns ErrUnknownItem when the item does not exist.
	Apply(ctx context.Context, itemID uuid.UUID, fn PostFunc) (services.Posting, error)

	// History returns the item's purchases, date descending, newest first on ties.
	History(ctx context.Context, itemID uuid.UUID) ([]*models.Purchase, error)

	// Losses returns purchases with negative quantity, date descending,
	// across all items when itemID is nil.
	Losses(ctx context.Context, itemID *uuid.UUID) ([]*models.Purchase, error)
}
