package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
)

// GetItemHandler handles GET /items/{itemID}.
type GetItemHandler struct {
	svc *appsvcs.Services
}

func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		itemID	path		string	true	"Item ID"	format(uuid)
//	@Success	200		{object}	ItemResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/items/{itemID} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewItemResponse(item))
}
