package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// GetPurchasesHandler serves purchase history and loss reports.
type GetPurchasesHandler struct {
	svc *appsvcs.Services
}

func NewGetPurchasesHandler(svc *appsvcs.Services) *GetPurchasesHandler {
	return &GetPurchasesHandler{svc: svc}
}

// History returns an item's purchases.
//
//	@Summary	Purchase history
//	@Tags		purchases
//	@Produce	json
//	@Param		itemID	path		string	true	"Item ID"	format(uuid)
//	@Success	200		{object}	PurchaseListResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/items/{itemID}/purchases [get]
func (h *GetPurchasesHandler) History(w http.ResponseWriter, r *http.Request) {
	itemID, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}
	purchases, err := h.svc.Ledger.History(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPurchaseList(purchases))
}

// Losses returns negative purchases across items, or for item_id only.
//
//	@Summary	Loss report
//	@Tags		purchases
//	@Produce	json
//	@Param		item_id	query		string	false	"Restrict to one item"	format(uuid)
//	@Success	200		{object}	PurchaseListResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/purchases/losses [get]
func (h *GetPurchasesHandler) Losses(w http.ResponseWriter, r *http.Request) {
	var itemID *uuid.UUID
	if raw := r.URL.Query().Get("item_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httpx.BadValue(w, "invalid item_id: must be a UUID")
			return
		}
		itemID = &id
	}

	losses, err := h.svc.Ledger.Losses(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPurchaseList(losses))
}
