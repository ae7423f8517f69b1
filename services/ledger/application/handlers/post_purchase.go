package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// RecordPurchaseRequest is the request body for POST /items/{itemID}/purchases.
// Quantity is decoded as a raw number so fractional values can be rejected
// instead of silently truncated. Integral spellings such as 100.0 or 1e2 are
// accepted.
type RecordPurchaseRequest struct {
	Quantity json.Number `json:"quantity" validate:"required"         swaggertype:"integer" example:"-45"`
	Date     string      `json:"date"     validate:"required,isodate"                       example:"2025-06-30"`
} // @name RecordPurchaseRequest

// PostPurchaseHandler handles POST /items/{itemID}/purchases.
type PostPurchaseHandler struct {
	svc *appsvcs.Services
}

func NewPostPurchaseHandler(svc *appsvcs.Services) *PostPurchaseHandler {
	return &PostPurchaseHandler{svc: svc}
}

// Execute records a purchase and applies it to the item's inventory level.
//
//	@Summary		Record purchase
//	@Description	Positive quantities add stock, negative quantities record losses.
//	@Tags			purchases
//	@Accept			json
//	@Produce		json
//	@Param			itemID			path		string					true	"Item ID"	format(uuid)
//	@Param			Idempotency-Key	header		string					false	"Rejects repeats of the same key with 409"
//	@Param			request			body		RecordPurchaseRequest	true	"Purchase"
//	@Success		201				{object}	RecordPurchaseResponse
//	@Failure		400				{object}	httpx.ErrorBody
//	@Failure		409				{object}	httpx.ErrorBody
//	@Failure		422				{object}	httpx.ErrorBody
//	@Router			/items/{itemID}/purchases [post]
func (h *PostPurchaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := httpx.PathUUID(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[RecordPurchaseRequest](w, r)
	if !ok {
		return
	}

	qty, msg := parseQuantity(req.Quantity)
	if msg != "" {
		httpx.BadValue(w, msg)
		return
	}
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		httpx.BadValue(w, err.Error())
		return
	}

	posting, err := h.svc.Ledger.RecordPurchase(r.Context(), itemID, int(qty), date)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, RecordPurchaseResponse{
		PurchaseResponse: NewPurchaseResponse(posting.Purchase),
		InventoryLevel:   posting.NewLevel,
		NeedsReorder:     posting.NeedsReorder,
	})
}

var (
	minQuantity = decimal.NewFromInt(math.MinInt32)
	maxQuantity = decimal.NewFromInt(math.MaxInt32)
)

// parseQuantity returns the quantity or a client-facing reason it was refused.
// Exponents are bounded before any comparison so inputs like 1e999999999 are
// never expanded.
func parseQuantity(n json.Number) (int64, string) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0, "quantity must be a whole number"
	}
	if exp := d.Exponent(); exp > 18 || exp < -18 {
		return 0, "quantity out of range"
	}
	if !d.IsInteger() {
		return 0, "quantity must be a whole number"
	}
	if d.LessThan(minQuantity) || d.GreaterThan(maxQuantity) {
		return 0, "quantity out of range"
	}
	return d.IntPart(), ""
}
