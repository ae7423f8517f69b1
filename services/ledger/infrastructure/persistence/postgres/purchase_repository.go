package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/events"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
	domainevents "github.com/ghuser/stockroom/services/ledger/domain/events"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
	"github.com/ghuser/stockroom/services/ledger/domain/repositories"
	"github.com/ghuser/stockroom/services/ledger/domain/services"
)

const purchaseColumns = `id, item_id, quantity, purchase_date, created_at`

// PurchaseRepository implements repositories.PurchaseRepository against PostgreSQL.
type PurchaseRepository struct {
	db  *database.Database
	bus *events.EventBus
}

func NewPurchaseRepository(database *database.Database, bus *events.EventBus) *PurchaseRepository {
	return &PurchaseRepository{db: database, bus: bus}
}

// Apply appends the purchase, moves the item's level and writes the outbox
// event in one transaction holding the item's row lock.
func (r *PurchaseRepository) Apply(ctx context.Context, itemID uuid.UUID, fn repositories.PostFunc) (services.Posting, error) {
	var posting services.Posting
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		item := services.StockItem{ID: itemID}
		err := tx.QueryRowContext(ctx,
			`SELECT active, inventory_level, reorder_level FROM items WHERE id = $1 FOR UPDATE`, itemID,
		).Scan(&item.Active, &item.InventoryLevel, &item.ReorderLevel)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ledgerdomain.ErrUnknownItem
			}
			return fmt.Errorf("lock item: %w", err)
		}

		if posting, err = fn(item); err != nil {
			return err
		}

		p := posting.Purchase
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO purchases (`+purchaseColumns+`)
			VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.ItemID, p.Quantity, p.Date, p.CreatedAt,
		); err != nil {
			return mapStorage(err, "insert purchase")
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET inventory_level = $2, updated_at = $3 WHERE id = $1`,
			itemID, posting.NewLevel, p.CreatedAt,
		); err != nil {
			return mapStorage(err, "update inventory level")
		}

		if r.bus == nil {
			return nil
		}
		evt := domainevents.NewPurchaseRecorded(posting)
		msg, err := events.NewMessage(ctx, evt.EventID, domainevents.EventVersion, evt)
		if err != nil {
			return err
		}
		if err := r.bus.PublishTx(tx, domainevents.TopicPurchaseRecorded, msg); err != nil {
			return fmt.Errorf("publish purchase recorded: %w", err)
		}
		return nil
	})
	if err != nil {
		return services.Posting{}, err
	}
	return posting, nil
}

func (r *PurchaseRepository) History(ctx context.Context, itemID uuid.UUID) ([]*models.Purchase, error) {
	return r.query(ctx, `
		SELECT `+purchaseColumns+` FROM purchases
		WHERE item_id = $1
		ORDER BY purchase_date DESC, seq DESC`, itemID)
}

func (r *PurchaseRepository) Losses(ctx context.Context, itemID *uuid.UUID) ([]*models.Purchase, error) {
	if itemID == nil {
		return r.query(ctx, `
			SELECT `+purchaseColumns+` FROM purchases
			WHERE quantity < 0
			ORDER BY purchase_date DESC, seq DESC`)
	}
	return r.query(ctx, `
		SELECT `+purchaseColumns+` FROM purchases
		WHERE quantity < 0 AND item_id = $1
		ORDER BY purchase_date DESC, seq DESC`, *itemID)
}

func (r *PurchaseRepository) query(ctx context.Context, query string, args ...any) ([]*models.Purchase, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]*models.Purchase, 0)
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.ItemID, &p.Quantity, &p.Date, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.Date = p.Date.UTC()
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}
	return out, nil
}

// mapStorage reports a value that did not fit its column as a value error.
// Post bounds levels first, so this is a backstop.
func mapStorage(err error, op string) error {
	if database.IsOutOfRange(err) {
		return domainerr.Value("%s: value out of range", op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
