package repositories

//go:generate mockgen -source=price.go -destination=mocks/price_repository_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/pricing/domain/models"
	"github.com/ghuser/stockroom/services/pricing/domain/services"
)

// ChangeFunc decides the writes for one price change given the locked item
// and its open interval (nil when the item has no price yet).
type ChangeFunc func(item services.ItemRef, open *models.PriceInterval) (services.Transition, error)

// PriceRepository stores price timelines. Every method observes a consistent
// snapshot of one item's intervals.
type PriceRepository interface {
	// Apply locks the item, passes it and its open interval to fn and stores
	// the returned transition together with PriceChangedEvent, or nothing if
	// fn fails. Returns ErrUnknownItem when the item does not exist.
	Apply(ctx context.Context, itemID uuid.UUID, fn ChangeFunc) (*models.PriceInterval, error)

	// Current returns the open interval or ErrPriceUnset.
	Current(ctx context.Context, itemID uuid.UUID) (*models.PriceInterval, error)

	// OnDate returns the interval covering date or ErrPriceUnset.
	OnDate(ctx context.Context, itemID uuid.UUID, date time.Time) (*models.PriceInterval, error)

	// History returns all intervals, start date descending, newest first on ties.
	History(ctx context.Context, itemID uuid.UUID) ([]*models.PriceInterval, error)
}
