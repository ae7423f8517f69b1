// Package memory implements the item repository on the in-process memdb store.
// Events are published after the store commits; a crash in between loses the
// event, which is acceptable for the development backend.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/memdb"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	domainevents "github.com/ghuser/stockroom/services/item/domain/events"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository against memdb.
type ItemRepository struct {
	store *memdb.Store
	bus   *events.EventBus
	log   logger.Logger
}

// NewItemRepository returns an ItemRepository on store. bus may be nil.
func NewItemRepository(store *memdb.Store, bus *events.EventBus, log logger.Logger) *ItemRepository {
	return &ItemRepository{store: store, bus: bus, log: log}
}

func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	if err := r.store.InsertItem(toRow(item)); err != nil {
		if errors.Is(err, memdb.ErrDuplicateName) {
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
	r.publish(ctx, domainevents.TopicItemCreated, evt.EventID, evt)
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	var item *models.Item
	err := r.store.View(id, func(tx *memdb.Tx) error {
		row, ok := tx.Item()
		if !ok {
			return itemdomain.ErrItemNotFound
		}
		item = fromRow(row)
		return nil
	})
	return item, err
}

func (r *ItemRepository) NameTaken(_ context.Context, name models.ItemName) (bool, error) {
	return r.store.HasName(name.String()), nil
}

func (r *ItemRepository) List(_ context.Context, f repositories.Filter) ([]*models.Item, int, error) {
	color := strings.ToLower(f.Color)

	var matched []*models.Item
	for _, row := range r.store.Items() {
		item := fromRow(row)
		switch {
		case f.Active != nil && item.Active != *f.Active:
			continue
		case f.Category != "" && item.Category != f.Category:
			continue
		case color != "" && !strings.Contains(strings.ToLower(item.Color), color):
			continue
		case f.NeedsReorder && !item.NeedsReorder():
			continue
		}
		matched = append(matched, item)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i].Name.Key(), matched[j].Name.Key()
		if a != b {
			return a < b
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := len(matched)
	start := min(f.Offset, total)
	end := total
	if f.Limit > 0 {
		end = min(start+f.Limit, total)
	}
	return matched[start:end], total, nil
}

func (r *ItemRepository) Modify(ctx context.Context, id uuid.UUID, fn func(item *models.Item) bool) (*models.Item, error) {
	var (
		item    *models.Item
		changed bool
	)
	err := r.store.Update(id, func(tx *memdb.Tx) error {
		row, ok := tx.Item()
		if !ok {
			return itemdomain.ErrItemNotFound
		}
		item = fromRow(row)
		if changed = fn(item); changed {
			tx.PutItem(toRow(item))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		evt := domainevents.ItemStatusChangedEvent{
			EventID:    uuid.New(),
			Version:    domainevents.EventVersion,
			ItemID:     item.ID,
			Active:     item.Active,
			OccurredAt: item.UpdatedAt,
		}
		r.publish(ctx, domainevents.TopicItemStatusChanged, evt.EventID, evt)
	}
	return item, nil
}

func (r *ItemRepository) publish(ctx context.Context, topic string, eventID uuid.UUID, evt any) {
	if r.bus == nil {
		return
	}
	msg, err := events.NewMessage(ctx, eventID, domainevents.EventVersion, evt)
	if err == nil {
		err = r.bus.Publish(ctx, topic, msg)
	}
	if err != nil {
		r.log.ErrorContext(ctx, "publish item event", "topic", topic, "event_id", eventID, "error", err)
	}
}

func toRow(item *models.Item) memdb.ItemRow {
	return memdb.ItemRow{
		ID:             item.ID,
		Name:           item.Name.String(),
		Description:    item.Description,
		Category:       item.Category.String(),
		Weight:         item.Weight,
		Color:          item.Color,
		Active:         item.Active,
		InventoryLevel: item.InventoryLevel,
		ReorderLevel:   item.ReorderLevel,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func fromRow(row memdb.ItemRow) *models.Item {
	return &models.Item{
		ID:             row.ID,
		Name:           models.ItemName(row.Name),
		Description:    row.Description,
		Category:       models.Category(row.Category),
		Weight:         row.Weight,
		Color:          row.Color,
		Active:         row.Active,
		InventoryLevel: row.InventoryLevel,
		ReorderLevel:   row.ReorderLevel,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
