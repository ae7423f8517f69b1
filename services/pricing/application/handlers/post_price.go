package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/pricing/application/services"
)

// RecordPriceRequest is the request body for POST /items/{itemID}/prices.
// Price accepts a JSON number or a decimal string.
type RecordPriceRequest struct {
	Price     *decimal.Decimal `json:"price"      validate:"required"         swaggertype:"string" example:"15.99"`
	StartDate string           `json:"start_date" validate:"required,isodate"                      example:"2025-03-01"`
} // @name RecordPriceRequest

// PostPriceHandler handles POST /items/{itemID}/prices.
type PostPriceHandler struct {
	svc *appsvcs.Services
}

func NewPostPriceHandler(svc *appsvcs.Services) *PostPriceHandler {
	return &PostPriceHandler{svc: svc}
}

// Execute records a price change, closing the current interval.
//
//	@Summary		Record price
//	@Description	Opens a new price interval starting at start_date and closes the previous one on that date.
//	@Tags			prices
//	@Accept			json
//	@Produce		json
//	@Param			itemID			path		string				true	"Item ID"	format(uuid)
//	@Param			Idempotency-Key	header		string				false	"Rejects repeats of the same key with 409"
//	@Param			request			body		RecordPriceRequest	true	"Price change"
//	@Success		201				{object}	PriceResponse
//	@Failure		400				{object}	httpx.ErrorBody
//	@Failure		409				{object}	httpx.ErrorBody
//	@Failure		422				{object}	httpx.ErrorBody
//	@Router			/items/{itemID}/prices [post]
func (h *PostPriceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[RecordPriceRequest](w, r)
	if !ok {
		return
	}
	start, err := clock.ParseDate(req.StartDate)
	if err != nil {
		httpx.BadValue(w, err.Error())
		return
	}

	interval, err := h.svc.Price.RecordPrice(r.Context(), itemID, *req.Price, start)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, NewPriceResponse(interval))
}
