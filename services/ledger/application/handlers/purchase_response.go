package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
)

// PurchaseResponse is the JSON representation of a purchase.
type PurchaseResponse struct {
	ID        uuid.UUID `json:"id"         example:"5b1c2d3e-4f50-6172-8394-a5b6c7d8e9f0"`
	ItemID    uuid.UUID `json:"item_id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  int       `json:"quantity"   example:"-45"`
	Date      string    `json:"date"       example:"2025-06-30"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-30T09:30:00Z"`
} // @name PurchaseResponse

// RecordPurchaseResponse adds the item's stock position after the purchase.
type RecordPurchaseResponse struct {
	PurchaseResponse
	InventoryLevel int  `json:"inventory_level" example:"5"`
	NeedsReorder   bool `json:"needs_reorder"   example:"true"`
} // @name RecordPurchaseResponse

// PurchaseListResponse wraps purchase listings.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
} // @name PurchaseListResponse

func NewPurchaseResponse(p *models.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:        p.ID,
		ItemID:    p.ItemID,
		Quantity:  p.Quantity,
		Date:      clock.FormatDate(p.Date),
		CreatedAt: p.CreatedAt,
	}
}

func newPurchaseList(purchases []*models.Purchase) PurchaseListResponse {
	resp := PurchaseListResponse{Purchases: make([]PurchaseResponse, len(purchases))}
	for i, p := range purchases {
		resp.Purchases[i] = NewPurchaseResponse(p)
	}
	return resp
}
