// Package services holds the pricing rules as pure functions over domain types.
package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	pricingdomain "github.com/ghuser/stockroom/services/pricing/domain"
	"github.com/ghuser/stockroom/services/pricing/domain/models"
)

// ItemRef is what pricing needs to know about an item.
type ItemRef struct {
	ID     uuid.UUID
	Active bool
}

// Transition is the complete write set of one price change.
type Transition struct {
	Closed *models.PriceInterval // previous open interval with EndDate set; nil for the first price
	Opened *models.PriceInterval
}

const maxPriceExponent = 28

// CloseAndOpen validates a price change against the item and its open
// interval and returns the writes that apply it. The caller must hold the
// item's lock from reading open until the writes are stored.
//
// A start equal to the open interval's start is a same-day correction and
// closes that interval with zero length. A start before it is rejected so a
// closed interval never ends before it begins.
func CloseAndOpen(item ItemRef, open *models.PriceInterval, price decimal.Decimal, start, now time.Time) (Transition, error) {
	if !item.Active {
		return Transition{}, domainerr.Invalid("item_id", "item is inactive", pricingdomain.ErrInactiveItem)
	}
	// Bound the exponent first; comparing or printing 1e999999999 would expand it.
	if exp := price.Exponent(); exp > maxPriceExponent || exp < -maxPriceExponent {
		return Transition{}, domainerr.Value("price out of range")
	}
	if price.IsNegative() {
		return Transition{}, domainerr.Value("price must not be negative, got %s", price)
	}
	if price.GreaterThanOrEqual(models.MaxPrice) {
		return Transition{}, domainerr.Value("price must be below %s, got %s", models.MaxPrice, price)
	}
	if !price.Equal(price.Truncate(models.PriceScale)) {
		return Transition{}, domainerr.Value("price must have at most %d decimal places, got %s", models.PriceScale, price)
	}

	start = clock.DateOf(start)
	today := clock.DateOf(now)
	if start.After(today) {
		return Transition{}, domainerr.Temporal("start date %s is after today (%s)",
			clock.FormatDate(start), clock.FormatDate(today))
	}

	var closed *models.PriceInterval
	if open != nil {
		if start.Before(open.StartDate) {
			return Transition{}, domainerr.Temporal("start date %s precedes the current price's start date %s",
				clock.FormatDate(start), clock.FormatDate(open.StartDate))
		}
		closed = open.Clone()
		end := start
		closed.EndDate = &end
	}

	return Transition{
		Closed: closed,
		Opened: &models.PriceInterval{
			ID:        uuid.New(),
			ItemID:    item.ID,
			Price:     price,
			StartDate: start,
			CreatedAt: now,
		},
	}, nil
}

// IntervalOn returns the interval whose price applied on date, or nil.
// Non-overlap guarantees at most one match.
func IntervalOn(intervals []*models.PriceInterval, date time.Time) *models.PriceInterval {
	date = clock.DateOf(date)
	for _, p := range intervals {
		if p.Covers(date) {
			return p
		}
	}
	return nil
}
