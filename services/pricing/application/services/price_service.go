package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	pricingdomain "github.com/ghuser/stockroom/services/pricing/domain"
	"github.com/ghuser/stockroom/services/pricing/domain/models"
	"github.com/ghuser/stockroom/services/pricing/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/pricing/domain/services"
)

const meterScope = "github.com/ghuser/stockroom/services/pricing"

// PriceService records and answers questions about item price timelines.
// Event publishing is handled by the repository layer (outbox pattern).
type PriceService struct {
	repo     repositories.PriceRepository
	clock    clock.Clock
	log      logger.Logger
	recorded metric.Int64Counter
}

// NewPriceService returns a PriceService wired with the given repository.
func NewPriceService(repo repositories.PriceRepository, clk clock.Clock, log logger.Logger) *PriceService {
	return &PriceService{
		repo:     repo,
		clock:    clk,
		log:      log,
		recorded: telemetry.Int64Counter(meterScope, "stockroom.prices.recorded", "Price intervals opened", "{interval}"),
	}
}

// RecordPrice closes the item's open interval at start and opens a new one
// at price. Returns the new interval.
func (s *PriceService) RecordPrice(ctx context.Context, itemID uuid.UUID, price decimal.Decimal, start time.Time) (*models.PriceInterval, error) {
	interval, err := s.repo.Apply(ctx, itemID, func(item domainsvcs.ItemRef, open *models.PriceInterval) (domainsvcs.Transition, error) {
		return domainsvcs.CloseAndOpen(item, open, price, start, s.clock.Now())
	})
	if err != nil {
		if errors.Is(err, pricingdomain.ErrUnknownItem) {
			return nil, domainerr.Invalid("item_id", "item does not exist", pricingdomain.ErrUnknownItem)
		}
		return nil, fmt.Errorf("record price: %w", err)
	}

	s.recorded.Add(ctx, 1)
	s.log.InfoContext(ctx, "price recorded",
		"item_id", itemID,
		"interval_id", interval.ID,
		"price", interval.Price.String(),
		"start_date", clock.FormatDate(interval.StartDate),
	)
	return interval, nil
}

// CurrentPrice returns the open interval, or ErrPriceUnset if the item has
// never been priced.
func (s *PriceService) CurrentPrice(ctx context.Context, itemID uuid.UUID) (*models.PriceInterval, error) {
	interval, err := s.repo.Current(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("current price: %w", err)
	}
	return interval, nil
}

// PriceOnDate returns the interval in effect on date, or ErrPriceUnset.
func (s *PriceService) PriceOnDate(ctx context.Context, itemID uuid.UUID, date time.Time) (*models.PriceInterval, error) {
	interval, err := s.repo.OnDate(ctx, itemID, clock.DateOf(date))
	if err != nil {
		return nil, fmt.Errorf("price on %s: %w", clock.FormatDate(date), err)
	}
	return interval, nil
}

// History returns a fresh snapshot of every interval, most recent first.
func (s *PriceService) History(ctx context.Context, itemID uuid.UUID) ([]*models.PriceInterval, error) {
	intervals, err := s.repo.History(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}
	return intervals, nil
}
