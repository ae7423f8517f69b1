// Package errhttp maps domain errors to HTTP responses.
// Add a case to classify for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/httpx"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	pricingdomain "github.com/ghuser/stockroom/services/pricing/domain"
)

// Kinds reported in ErrorBody.Kind beyond the domainerr taxonomy.
const (
	KindNotFound = "not_found"
	KindConflict = "conflict"
	KindInternal = "internal"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 with a generic message and are reported to Sentry.
func WriteError(w http.ResponseWriter, err error) {
	status, kind := classify(err)

	body := httpx.ErrorBody{
		Error: httpx.SafeError(err, status, true),
		Kind:  kind,
	}
	if ve, ok := domainerr.AsValidation(err); ok {
		body.Fields = ve.FieldMap()
	}
	if status >= http.StatusInternalServerError {
		sentry.CaptureException(err)
	}
	httpx.JSON(w, status, body)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrValidation):
		return http.StatusUnprocessableEntity, string(domainerr.KindValidation) // 422
	case errors.Is(err, domainerr.ErrValue):
		return http.StatusBadRequest, string(domainerr.KindValue) // 400
	case errors.Is(err, domainerr.ErrTemporalOrder):
		return http.StatusConflict, string(domainerr.KindTemporalOrder) // 409
	case errors.Is(err, itemdomain.ErrItemNotFound),
		errors.Is(err, pricingdomain.ErrPriceUnset):
		return http.StatusNotFound, KindNotFound // 404
	case errors.Is(err, itemdomain.ErrItemAlreadyExists),
		errors.Is(err, cache.ErrDuplicateRequest):
		return http.StatusConflict, KindConflict // 409
	default:
		return http.StatusInternalServerError, KindInternal // 500
	}
}
