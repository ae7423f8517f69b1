package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
	"github.com/ghuser/stockroom/services/ledger/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/ledger/domain/services"
)

const meterScope = "github.com/ghuser/stockroom/services/ledger"

// LedgerService records stock movements and reports on them.
type LedgerService struct {
	repo      repositories.PurchaseRepository
	clock     clock.Clock
	log       logger.Logger
	recorded  metric.Int64Counter
	unitsLost metric.Int64Counter
}

func NewLedgerService(repo repositories.PurchaseRepository, clk clock.Clock, log logger.Logger) *LedgerService {
	return &LedgerService{
		repo:      repo,
		clock:     clk,
		log:       log,
		recorded:  telemetry.Int64Counter(meterScope, "stockroom.purchases.recorded", "Purchases appended to the ledger", "{purchase}"),
		unitsLost: telemetry.Int64Counter(meterScope, "stockroom.units.lost", "Units removed by negative purchases", "{unit}"),
	}
}

// RecordPurchase appends a purchase and applies it to the item's inventory
// level. Returns the posting with the resulting level.
func (s *LedgerService) RecordPurchase(ctx context.Context, itemID uuid.UUID, quantity int, date time.Time) (domainsvcs.Posting, error) {
	posting, err := s.repo.Apply(ctx, itemID, func(item domainsvcs.StockItem) (domainsvcs.Posting, error) {
		return domainsvcs.Post(item, quantity, date, s.clock.Now())
	})
	if err != nil {
		if errors.Is(err, ledgerdomain.ErrUnknownItem) {
			return domainsvcs.Posting{}, domainerr.Invalid("item_id", "item does not exist", ledgerdomain.ErrUnknownItem)
		}
		return domainsvcs.Posting{}, fmt.Errorf("record purchase: %w", err)
	}

	s.recorded.Add(ctx, 1)
	if posting.Purchase.IsLoss() {
		s.unitsLost.Add(ctx, int64(-quantity))
	}
	s.log.InfoContext(ctx, "purchase recorded",
		"item_id", itemID,
		"purchase_id", posting.Purchase.ID,
		"quantity", quantity,
		"inventory_level", posting.NewLevel,
	)
	if posting.NeedsReorder {
		s.log.InfoContext(ctx, "item at or below reorder level",
			"item_id", itemID,
			"inventory_level", posting.NewLevel,
			"reorder_level", posting.ReorderLevel,
		)
	}
	return posting, nil
}

// History returns the item's purchases, most recent first.
func (s *LedgerService) History(ctx context.Context, itemID uuid.UUID) ([]*models.Purchase, error) {
	purchases, err := s.repo.History(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("purchase history: %w", err)
	}
	return purchases, nil
}

// Losses returns negative purchases, optionally for one item only.
func (s *LedgerService) Losses(ctx context.Context, itemID *uuid.UUID) ([]*models.Purchase, error) {
	losses, err := s.repo.Losses(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("losses: %w", err)
	}
	return losses, nil
}
