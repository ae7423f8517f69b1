package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/logger"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/item/domain/services"
)

// sweepPageSize bounds each page read by ListNeedingReorder.
const sweepPageSize = 100

// ItemService orchestrates the item registry.
// Event publishing is handled by the repository layer (outbox pattern).
type ItemService struct {
	repo  repositories.ItemRepository
	clock clock.Clock
	log   logger.Logger
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository, clk clock.Clock, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, clock: clk, log: log}
}

// Create validates and persists an Item. Every failing field, including a
// name already in use, is reported in a single ValidationError.
// The repository publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, p models.CreateParams) (*models.Item, error) {
	name, category, ve := domainsvcs.ValidateForCreation(p)

	if name != "" {
		taken, err := s.repo.NameTaken(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("check item name: %w", err)
		}
		if taken {
			if ve == nil {
				ve = &domainerr.ValidationError{Cause: itemdomain.ErrItemAlreadyExists}
			}
			ve.Add("name", "already exists")
		}
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	item := models.NewItem(name, category, p, s.clock.Now())
	if err := s.repo.Save(ctx, item); err != nil {
		if errors.Is(err, itemdomain.ErrItemAlreadyExists) {
			// lost a race with a concurrent create of the same name
			return nil, domainerr.Invalid("name", "already exists", itemdomain.ErrItemAlreadyExists)
		}
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		"item_id", item.ID,
		"category", item.Category,
		"inventory_level", item.InventoryLevel,
	)
	return item, nil
}

// GetByID returns ErrItemNotFound when no item has the given id.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// SetActive activates or deactivates an item. History is untouched; an
// inactive item only stops accepting new prices and purchases.
func (s *ItemService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Item, error) {
	var changed bool
	item, err := s.repo.Modify(ctx, id, func(it *models.Item) bool {
		changed = it.SetActive(active, s.clock.Now())
		return changed
	})
	if err != nil {
		return nil, fmt.Errorf("set item active: %w", err)
	}
	if changed {
		s.log.InfoContext(ctx, "item status changed", "item_id", id, "active", active)
	}
	return item, nil
}

// List returns a page of items sorted by name plus the total match count.
func (s *ItemService) List(ctx context.Context, f repositories.Filter) ([]*models.Item, int, error) {
	if f.Limit <= 0 {
		f.Limit = sweepPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// ListNeedingReorder walks every active item at or below its reorder level.
func (s *ItemService) ListNeedingReorder(ctx context.Context) ([]*models.Item, error) {
	active := true
	f := repositories.Filter{Active: &active, NeedsReorder: true, Limit: sweepPageSize}

	var out []*models.Item
	for {
		page, total, err := s.repo.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("list items needing reorder: %w", err)
		}
		out = append(out, page...)
		f.Offset += len(page)
		if len(page) == 0 || f.Offset >= total {
			return out, nil
		}
	}
}
