package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/events"
	pricingdomain "github.com/ghuser/stockroom/services/pricing/domain"
	domainevents "github.com/ghuser/stockroom/services/pricing/domain/events"
	"github.com/ghuser/stockroom/services/pricing/domain/models"
	"github.com/ghuser/stockroom/services/pricing/domain/repositories"
	"github.com/ghuser/stockroom/services/pricing/domain/services"
)

const priceColumns = `id, item_id, price, start_date, end_date, created_at`

// PriceRepository implements repositories.PriceRepository against PostgreSQL.
// Writers serialize per item on the items row lock; reads are single
// statements and see a committed snapshot.
type PriceRepository struct {
	db  *database.Database
	bus *events.EventBus
}

func NewPriceRepository(database *database.Database, bus *events.EventBus) *PriceRepository {
	return &PriceRepository{db: database, bus: bus}
}

// Apply stores fn's transition and the matching outbox event in one transaction.
func (r *PriceRepository) Apply(ctx context.Context, itemID uuid.UUID, fn repositories.ChangeFunc) (*models.PriceInterval, error) {
	var tr services.Transition
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		item := services.ItemRef{ID: itemID}
		err := tx.QueryRowContext(ctx, `SELECT active FROM items WHERE id = $1 FOR UPDATE`, itemID).Scan(&item.Active)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return pricingdomain.ErrUnknownItem
			}
			return fmt.Errorf("lock item: %w", err)
		}

		open, err := scanPrice(tx.QueryRowContext(ctx,
			`SELECT `+priceColumns+` FROM item_prices WHERE item_id = $1 AND end_date IS NULL`, itemID))
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("load open price: %w", err)
		}

		if tr, err = fn(item, open); err != nil {
			return err
		}

		if tr.Closed != nil {
			res, err := tx.ExecContext(ctx,
				`UPDATE item_prices SET end_date = $2 WHERE id = $1 AND end_date IS NULL`,
				tr.Closed.ID, tr.Closed.EndDate)
			if err != nil {
				return mapConstraint(err, "close price")
			}
			if n, _ := res.RowsAffected(); n != 1 {
				return fmt.Errorf("close price %s: interval already closed", tr.Closed.ID)
			}
		}

		o := tr.Opened
		stored, err := scanPrice(tx.QueryRowContext(ctx, `
			INSERT INTO item_prices (id, item_id, price, start_date, end_date, created_at)
			VALUES ($1, $2, $3, $4, NULL, $5)
			RETURNING `+priceColumns,
			o.ID, o.ItemID, o.Price, o.StartDate, o.CreatedAt,
		))
		if err != nil {
			return mapConstraint(err, "insert price")
		}
		tr.Opened = stored

		if r.bus == nil {
			return nil
		}
		evt := domainevents.NewPriceChanged(tr.Opened, tr.Closed)
		msg, err := events.NewMessage(ctx, evt.EventID, domainevents.EventVersion, evt)
		if err != nil {
			return err
		}
		if err := r.bus.PublishTx(tx, domainevents.TopicPriceChanged, msg); err != nil {
			return fmt.Errorf("publish price changed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tr.Opened, nil
}

func (r *PriceRepository) Current(ctx context.Context, itemID uuid.UUID) (*models.PriceInterval, error) {
	p, err := scanPrice(r.db.DB().QueryRowContext(ctx,
		`SELECT `+priceColumns+` FROM item_prices WHERE item_id = $1 AND end_date IS NULL`, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pricingdomain.ErrPriceUnset
		}
		return nil, fmt.Errorf("query current price: %w", err)
	}
	return p, nil
}

func (r *PriceRepository) OnDate(ctx context.Context, itemID uuid.UUID, date time.Time) (*models.PriceInterval, error) {
	p, err := scanPrice(r.db.DB().QueryRowContext(ctx, `
		SELECT `+priceColumns+` FROM item_prices
		WHERE item_id = $1 AND start_date <= $2 AND (end_date > $2 OR end_date IS NULL)`,
		itemID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pricingdomain.ErrPriceUnset
		}
		return nil, fmt.Errorf("query price on date: %w", err)
	}
	return p, nil
}

func (r *PriceRepository) History(ctx context.Context, itemID uuid.UUID) ([]*models.PriceInterval, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+priceColumns+` FROM item_prices
		WHERE item_id = $1
		ORDER BY start_date DESC, seq DESC`, itemID)
	if err != nil {
		return nil, fmt.Errorf("query price history: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]*models.PriceInterval, 0)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prices: %w", err)
	}
	return out, nil
}

// mapConstraint turns a rejected price into a value error and a tripped
// timeline constraint into a temporal order error. CloseAndOpen checks both
// first, so these are backstops.
func mapConstraint(err error, op string) error {
	if database.IsOutOfRange(err) || database.IsCheckViolation(err, priceCheck) {
		return domainerr.Value("%s: price out of range", op)
	}
	if database.IsConstraintViolation(err) || database.IsUniqueViolation(err, openPriceIndex) {
		return domainerr.Temporal("%s: price timeline constraint violated", op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

const (
	// openPriceIndex is the partial unique index allowing one open interval per item.
	openPriceIndex = "item_prices_one_open_per_item"
	priceCheck     = "item_prices_price_check"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanPrice(s scanner) (*models.PriceInterval, error) {
	var (
		p   models.PriceInterval
		end sql.NullTime
	)
	if err := s.Scan(&p.ID, &p.ItemID, &p.Price, &p.StartDate, &end, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.StartDate = p.StartDate.UTC()
	if end.Valid {
		e := end.Time.UTC()
		p.EndDate = &e
	}
	return &p, nil
}
