package repositories

//go:generate mockgen -source=item.go -destination=mocks/item_repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/item/domain/models"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Active       *bool
	Category     models.Category
	Color        string // case-insensitive substring
	NeedsReorder bool
	Limit        int // Maximum number of records to return
	Offset       int // Number of records to skip
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save inserts a new Item and publishes ItemCreatedEvent.
	// Returns ErrItemAlreadyExists when the name is taken (case-insensitive).
	Save(ctx context.Context, item *models.Item) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// NameTaken reports whether any item already uses name, ignoring case.
	NameTaken(ctx context.Context, name models.ItemName) (bool, error)

	// List returns items matching f sorted by name (case-insensitive) and the
	// total count ignoring pagination.
	List(ctx context.Context, f Filter) ([]*models.Item, int, error)

	// Modify loads the item under its write lock and passes it to fn. When fn
	// reports a change the item's status is persisted and ItemStatusChangedEvent
	// is published atomically. Returns the item as stored afterwards.
	Modify(ctx context.Context, id uuid.UUID, fn func(item *models.Item) bool) (*models.Item, error)
}
