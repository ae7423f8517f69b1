package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prices are stored as NUMERIC(14,4): at most four decimal places and below
// MaxPrice.
const PriceScale = 4

// MaxPrice is the exclusive upper bound of a storable price.
var MaxPrice = decimal.New(1, 14-PriceScale)

// PriceInterval is one contiguous range of calendar dates during which a
// single price applied. EndDate is exclusive; nil means the interval is open.
type PriceInterval struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Price     decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
}

// IsOpen reports whether this is the item's current interval.
func (p *PriceInterval) IsOpen() bool {
	return p.EndDate == nil
}

// Covers reports whether the price applied on date:
// start_date <= date AND (end_date > date OR end_date IS NULL).
func (p *PriceInterval) Covers(date time.Time) bool {
	if date.Before(p.StartDate) {
		return false
	}
	return p.EndDate == nil || p.EndDate.After(date)
}

// Clone returns a deep copy.
func (p *PriceInterval) Clone() *PriceInterval {
	c := *p
	if p.EndDate != nil {
		end := *p.EndDate
		c.EndDate = &end
	}
	return &c
}
