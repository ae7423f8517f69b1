package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/pricing/application/services"
)

// GetPricesHandler handles the read-side price endpoints.
type GetPricesHandler struct {
	svc *appsvcs.Services
}

func NewGetPricesHandler(svc *appsvcs.Services) *GetPricesHandler {
	return &GetPricesHandler{svc: svc}
}

// History returns every interval of an item.
//
//	@Summary	Price history
//	@Tags		prices
//	@Produce	json
//	@Param		itemID	path		string	true	"Item ID"	format(uuid)
//	@Success	200		{object}	PriceHistoryResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/items/{itemID}/prices [get]
func (h *GetPricesHandler) History(w http.ResponseWriter, r *http.Request) {
	itemID, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}
	intervals, err := h.svc.Price.History(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := PriceHistoryResponse{ItemID: itemID, Prices: make([]PriceResponse, len(intervals))}
	for i, p := range intervals {
		resp.Prices[i] = NewPriceResponse(p)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Current returns the open interval.
//
//	@Summary	Current price
//	@Tags		prices
//	@Produce	json
//	@Param		itemID	path		string	true	"Item ID"	format(uuid)
//	@Success	200		{object}	PriceResponse
//	@Failure	404		{object}	httpx.ErrorBody	"Item has never been priced"
//	@Router		/items/{itemID}/prices/current [get]
func (h *GetPricesHandler) Current(w http.ResponseWriter, r *http.Request) {
	itemID, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}
	interval, err := h.svc.Price.CurrentPrice(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewPriceResponse(interval))
}

// OnDate returns the interval in effect on a calendar date.
//
//	@Summary	Price on date
//	@Tags		prices
//	@Produce	json
//	@Param		itemID	path		string	true	"Item ID"	format(uuid)
//	@Param		date	path		string	true	"Calendar date"	format(date)
//	@Success	200		{object}	PriceResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody	"No price applied on that date"
//	@Router		/items/{itemID}/prices/on/{date} [get]
func (h *GetPricesHandler) OnDate(w http.ResponseWriter, r *http.Request) {
	itemID, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}
	date, err := clock.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		httpx.BadValue(w, err.Error())
		return
	}

	interval, err := h.svc.Price.PriceOnDate(r.Context(), itemID, date)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewPriceResponse(interval))
}
