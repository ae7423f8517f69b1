package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/services/pricing/domain/models"
)

// PriceResponse is the JSON representation of a price interval. Prices are
// decimal strings so no precision is lost in transit.
type PriceResponse struct {
	ID        uuid.UUID `json:"id"         example:"8d5f0c1e-3b7a-4c1d-9a61-2f0e5b7c9d10"`
	ItemID    uuid.UUID `json:"item_id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Price     string    `json:"price"      example:"13.99"`
	StartDate string    `json:"start_date" example:"2025-01-01"`
	EndDate   *string   `json:"end_date"   example:"2025-03-01"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T09:00:00Z"`
} // @name PriceResponse

// PriceHistoryResponse lists an item's intervals, most recent first.
type PriceHistoryResponse struct {
	ItemID uuid.UUID       `json:"item_id"`
	Prices []PriceResponse `json:"prices"`
} // @name PriceHistoryResponse

func NewPriceResponse(p *models.PriceInterval) PriceResponse {
	resp := PriceResponse{
		ID:        p.ID,
		ItemID:    p.ItemID,
		Price:     p.Price.String(),
		StartDate: clock.FormatDate(p.StartDate),
		CreatedAt: p.CreatedAt,
	}
	if p.EndDate != nil {
		end := clock.FormatDate(*p.EndDate)
		resp.EndDate = &end
	}
	return resp
}
