// Package memory implements the price repository on the in-process memdb store.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/memdb"
	pricingdomain "github.com/ghuser/stockroom/services/pricing/domain"
	domainevents "github.com/ghuser/stockroom/services/pricing/domain/events"
	"github.com/ghuser/stockroom/services/pricing/domain/models"
	"github.com/ghuser/stockroom/services/pricing/domain/repositories"
	"github.com/ghuser/stockroom/services/pricing/domain/services"
)

// PriceRepository implements repositories.PriceRepository against memdb.
type PriceRepository struct {
	store *memdb.Store
	bus   *events.EventBus
	log   logger.Logger
}

// NewPriceRepository returns a PriceRepository on store. bus may be nil.
func NewPriceRepository(store *memdb.Store, bus *events.EventBus, log logger.Logger) *PriceRepository {
	return &PriceRepository{store: store, bus: bus, log: log}
}

func (r *PriceRepository) Apply(ctx context.Context, itemID uuid.UUID, fn repositories.ChangeFunc) (*models.PriceInterval, error) {
	var tr services.Transition
	err := r.store.Update(itemID, func(tx *memdb.Tx) error {
		item, ok := tx.Item()
		if !ok {
			return pricingdomain.ErrUnknownItem
		}

		var open *models.PriceInterval
		if row, ok := tx.OpenPrice(); ok {
			open = fromRow(row)
		}

		var err error
		if tr, err = fn(services.ItemRef{ID: item.ID, Active: item.Active}, open); err != nil {
			return err
		}
		if tr.Closed != nil {
			tx.PutPrice(toRow(tr.Closed))
		}
		tx.PutPrice(toRow(tr.Opened))
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, domainevents.NewPriceChanged(tr.Opened, tr.Closed))
	return tr.Opened, nil
}

func (r *PriceRepository) Current(_ context.Context, itemID uuid.UUID) (*models.PriceInterval, error) {
	var out *models.PriceInterval
	err := r.store.View(itemID, func(tx *memdb.Tx) error {
		row, ok := tx.OpenPrice()
		if !ok {
			return pricingdomain.ErrPriceUnset
		}
		out = fromRow(row)
		return nil
	})
	return out, err
}

func (r *PriceRepository) OnDate(_ context.Context, itemID uuid.UUID, date time.Time) (*models.PriceInterval, error) {
	var out *models.PriceInterval
	err := r.store.View(itemID, func(tx *memdb.Tx) error {
		out = services.IntervalOn(fromRows(tx.Prices()), date)
		if out == nil {
			return pricingdomain.ErrPriceUnset
		}
		return nil
	})
	return out, err
}

func (r *PriceRepository) History(_ context.Context, itemID uuid.UUID) ([]*models.PriceInterval, error) {
	var out []*models.PriceInterval
	err := r.store.View(itemID, func(tx *memdb.Tx) error {
		rows := tx.Prices()
		memdb.SortPricesNewestFirst(rows)
		out = fromRows(rows)
		return nil
	})
	return out, err
}

func (r *PriceRepository) publish(ctx context.Context, evt domainevents.PriceChangedEvent) {
	if r.bus == nil {
		return
	}
	msg, err := events.NewMessage(ctx, evt.EventID, domainevents.EventVersion, evt)
	if err == nil {
		err = r.bus.Publish(ctx, domainevents.TopicPriceChanged, msg)
	}
	if err != nil {
		r.log.ErrorContext(ctx, "publish price event", "event_id", evt.EventID, "error", fmt.Errorf("price.changed: %w", err))
	}
}

func toRow(p *models.PriceInterval) memdb.PriceRow {
	return memdb.PriceRow{
		ID:        p.ID,
		ItemID:    p.ItemID,
		Price:     p.Price,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		CreatedAt: p.CreatedAt,
	}
}

func fromRow(row memdb.PriceRow) *models.PriceInterval {
	return (&models.PriceInterval{
		ID:        row.ID,
		ItemID:    row.ItemID,
		Price:     row.Price,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		CreatedAt: row.CreatedAt,
	}).Clone()
}

func fromRows(rows []memdb.PriceRow) []*models.PriceInterval {
	out := make([]*models.PriceInterval, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
