package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ItemResponse is the JSON representation of an item.
type ItemResponse struct {
	ID             uuid.UUID `json:"id"              example:"123e4567-e89b-12d3-a456-426614174000"`
	Name           string    `json:"name"            example:"Wooden Chess Pieces"`
	Description    string    `json:"description"     example:"Hand-carved boxwood Staunton set"`
	Category       string    `json:"category"        example:"pieces"`
	Weight         float64   `json:"weight"          example:"4.3"`
	Color          string    `json:"color"           example:"tan/beige"`
	Active         bool      `json:"active"          example:"true"`
	InventoryLevel int       `json:"inventory_level" example:"50"`
	ReorderLevel   int       `json:"reorder_level"   example:"20"`
	NeedsReorder   bool      `json:"needs_reorder"   example:"false"`
	CreatedAt      time.Time `json:"created_at"      example:"2024-01-15T10:30:00Z"`
	UpdatedAt      time.Time `json:"updated_at"      example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// NewItemResponse maps a domain item to its JSON shape.
func NewItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Name:           item.Name.String(),
		Description:    item.Description,
		Category:       item.Category.String(),
		Weight:         item.Weight,
		Color:          item.Color,
		Active:         item.Active,
		InventoryLevel: item.InventoryLevel,
		ReorderLevel:   item.ReorderLevel,
		NeedsReorder:   item.NeedsReorder(),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
