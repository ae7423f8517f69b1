package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
	"github.com/ghuser/stockroom/services/item/domain/models"
)

// CreateItemRequest is the request body for POST /items.
// Field rules are enforced by the domain so every failing field is reported together.
type CreateItemRequest struct {
	Name           string  `json:"name"            validate:"max=1024" example:"Wooden Chess Pieces"`
	Description    string  `json:"description"     validate:"max=4096" example:"Hand-carved boxwood Staunton set"`
	Category       string  `json:"category"                            example:"pieces" enums:"pieces,boards,clocks,supplies"`
	Weight         float64 `json:"weight"                              example:"4.3"`
	Color          string  `json:"color"           validate:"max=1024" example:"tan/beige"`
	InventoryLevel int     `json:"inventory_level"                     example:"50"`
	ReorderLevel   int     `json:"reorder_level"                       example:"20"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Registers a catalog item. Every invalid field is listed in the error's fields map.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		422		{object}	httpx.ErrorBody
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), models.CreateParams{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Weight:         req.Weight,
		Color:          req.Color,
		InventoryLevel: req.InventoryLevel,
		ReorderLevel:   req.ReorderLevel,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, NewItemResponse(item))
}
