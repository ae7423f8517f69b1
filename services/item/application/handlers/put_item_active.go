package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
)

// SetActiveRequest is the request body for PUT /items/{itemID}/active.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required" example:"false"`
} // @name SetActiveRequest

// PutItemActiveHandler handles PUT /items/{itemID}/active.
type PutItemActiveHandler struct {
	svc *appsvcs.Services
}

func NewPutItemActiveHandler(svc *appsvcs.Services) *PutItemActiveHandler {
	return &PutItemActiveHandler{svc: svc}
}

// Execute activates or deactivates an item. Price and purchase history is kept.
//
//	@Summary	Set item status
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		itemID	path		string				true	"Item ID"	format(uuid)
//	@Param		request	body		SetActiveRequest	true	"New status"
//	@Success	200		{object}	ItemResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Failure	422		{object}	httpx.ErrorBody
//	@Router		/items/{itemID}/active [put]
func (h *PutItemActiveHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SetActiveRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.SetActive(r.Context(), id, *req.Active)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewItemResponse(item))
}
