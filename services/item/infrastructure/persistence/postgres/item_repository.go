package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	domainevents "github.com/ghuser/stockroom/services/item/domain/events"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
)

// uniqueNameIndex is the unique index on lower(name) created by migrations/inventory.
const uniqueNameIndex = "items_name_lower_key"

const itemColumns = `id, name, description, category, weight, color, active,
	inventory_level, reorder_level, created_at, updated_at`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. Events are written to the outbox in the same transaction as
// the state change.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same transaction.
// Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (`+itemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			item.ID, item.Name.String(), item.Description, item.Category.String(), item.Weight,
			item.Color, item.Active, item.InventoryLevel, item.ReorderLevel, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			if database.IsUniqueViolation(err, uniqueNameIndex) {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		evt := domainevents.ItemCreatedEvent{
			EventID:        uuid.New(),
			Version:        domainevents.EventVersion,
			ItemID:         item.ID,
			Name:           item.Name.String(),
			Category:       item.Category.String(),
			InventoryLevel: item.InventoryLevel,
			ReorderLevel:   item.ReorderLevel,
			OccurredAt:     item.CreatedAt,
		}
		if err := r.publish(ctx, tx, domainevents.TopicItemCreated, evt.EventID, evt); err != nil {
			return fmt.Errorf("publish item created: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) NameTaken(ctx context.Context, name models.ItemName) (bool, error) {
	var taken bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE lower(name) = lower($1))`, name.String(),
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check item name: %w", err)
	}
	return taken, nil
}

// List retrieves a page of items matching f and the total match count.
func (r *ItemRepository) List(ctx context.Context, f repositories.Filter) ([]*models.Item, int, error) {
	where, args := filterClause(f)

	var total int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT count(*) FROM items`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `SELECT ` + itemColumns + ` FROM items` + where + ` ORDER BY lower(name), id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	args = append(args, f.Offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}
	return items, total, nil
}

// Modify locks the item row for the duration of fn and persists status changes.
func (r *ItemRepository) Modify(ctx context.Context, id uuid.UUID, fn func(item *models.Item) bool) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		item, err = scanItem(tx.QueryRowContext(ctx,
			`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return itemdomain.ErrItemNotFound
			}
			return fmt.Errorf("lock item: %w", err)
		}

		if !fn(item) {
			return nil
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET active = $2, updated_at = $3 WHERE id = $1`,
			item.ID, item.Active, item.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		evt := domainevents.ItemStatusChangedEvent{
			EventID:    uuid.New(),
			Version:    domainevents.EventVersion,
			ItemID:     item.ID,
			Active:     item.Active,
			OccurredAt: item.UpdatedAt,
		}
		if err := r.publish(ctx, tx, domainevents.TopicItemStatusChanged, evt.EventID, evt); err != nil {
			return fmt.Errorf("publish item status changed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, evt any) error {
	if r.bus == nil {
		return nil
	}
	msg, err := events.NewMessage(ctx, eventID, domainevents.EventVersion, evt)
	if err != nil {
		return err
	}
	return r.bus.PublishTx(tx, topic, msg)
}

// filterClause renders f as a WHERE clause with positional arguments.
func filterClause(f repositories.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Active != nil {
		args = append(args, *f.Active)
		conds = append(conds, fmt.Sprintf("active = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category.String())
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Color != "" {
		args = append(args, f.Color)
		conds = append(conds, fmt.Sprintf("strpos(lower(color), lower($%d)) > 0", len(args)))
	}
	if f.NeedsReorder {
		conds = append(conds, "inventory_level <= reorder_level")
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	var (
		item     models.Item
		name     string
		category string
	)
	if err := s.Scan(
		&item.ID, &name, &item.Description, &category, &item.Weight, &item.Color, &item.Active,
		&item.InventoryLevel, &item.ReorderLevel, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	item.Category = models.Category(category)
	return &item, nil
}
