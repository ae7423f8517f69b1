// Package memory implements the purchase repository on the in-process memdb store.
package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/memdb"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
	domainevents "github.com/ghuser/stockroom/services/ledger/domain/events"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
	"github.com/ghuser/stockroom/services/ledger/domain/repositories"
	"github.com/ghuser/stockroom/services/ledger/domain/services"
)

// PurchaseRepository implements repositories.PurchaseRepository against memdb.
type PurchaseRepository struct {
	store *memdb.Store
	bus   *events.EventBus
	log   logger.Logger
}

// NewPurchaseRepository returns a PurchaseRepository on store. bus may be nil.
func NewPurchaseRepository(store *memdb.Store, bus *events.EventBus, log logger.Logger) *PurchaseRepository {
	return &PurchaseRepository{store: store, bus: bus, log: log}
}

func (r *PurchaseRepository) Apply(ctx context.Context, itemID uuid.UUID, fn repositories.PostFunc) (services.Posting, error) {
	var posting services.Posting
	err := r.store.Update(itemID, func(tx *memdb.Tx) error {
		row, ok := tx.Item()
		if !ok {
			return ledgerdomain.ErrUnknownItem
		}

		var err error
		posting, err = fn(services.StockItem{
			ID:             row.ID,
			Active:         row.Active,
			InventoryLevel: row.InventoryLevel,
			ReorderLevel:   row.ReorderLevel,
		})
		if err != nil {
			return err
		}

		p := posting.Purchase
		tx.AppendPurchase(memdb.PurchaseRow{
			ID:        p.ID,
			Quantity:  p.Quantity,
			Date:      p.Date,
			CreatedAt: p.CreatedAt,
		})
		row.InventoryLevel = posting.NewLevel
		row.UpdatedAt = p.CreatedAt
		tx.PutItem(row)
		return nil
	})
	if err != nil {
		return services.Posting{}, err
	}

	r.publish(ctx, domainevents.NewPurchaseRecorded(posting))
	return posting, nil
}

func (r *PurchaseRepository) History(_ context.Context, itemID uuid.UUID) ([]*models.Purchase, error) {
	var rows []memdb.PurchaseRow
	err := r.store.View(itemID, func(tx *memdb.Tx) error {
		rows = tx.Purchases()
		return nil
	})
	if err != nil {
		return nil, err
	}
	memdb.SortPurchasesNewestFirst(rows)
	return fromRows(rows, false), nil
}

func (r *PurchaseRepository) Losses(_ context.Context, itemID *uuid.UUID) ([]*models.Purchase, error) {
	var rows []memdb.PurchaseRow
	if itemID == nil {
		rows = r.store.AllPurchases()
	} else {
		err := r.store.View(*itemID, func(tx *memdb.Tx) error {
			rows = tx.Purchases()
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	memdb.SortPurchasesNewestFirst(rows)
	return fromRows(rows, true), nil
}

func (r *PurchaseRepository) publish(ctx context.Context, evt domainevents.PurchaseRecordedEvent) {
	if r.bus == nil {
		return
	}
	msg, err := events.NewMessage(ctx, evt.EventID, domainevents.EventVersion, evt)
	if err == nil {
		err = r.bus.Publish(ctx, domainevents.TopicPurchaseRecorded, msg)
	}
	if err != nil {
		r.log.ErrorContext(ctx, "publish purchase event", "event_id", evt.EventID, "error", fmt.Errorf("purchase.recorded: %w", err))
	}
}

func fromRows(rows []memdb.PurchaseRow, lossesOnly bool) []*models.Purchase {
	out := make([]*models.Purchase, 0, len(rows))
	for _, row := range rows {
		if lossesOnly && row.Quantity >= 0 {
			continue
		}
		out = append(out, &models.Purchase{
			ID:        row.ID,
			ItemID:    row.ItemID,
			Quantity:  row.Quantity,
			Date:      row.Date,
			CreatedAt: row.CreatedAt,
		})
	}
	return out
}
