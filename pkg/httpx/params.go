package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Page size bounds for list endpoints.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// PathUUID parses the chi URL parameter name as a UUID. On failure it writes
// a 400 response and returns false.
func PathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		BadValue(w, fmt.Sprintf("invalid %s: must be a UUID", name))
		return uuid.Nil, false
	}
	return id, true
}

// Pagination reads limit and offset query parameters, applying defaults and
// clamping limit to MaxPageSize.
func Pagination(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	limit = DefaultPageSize
	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 1 {
			return 0, 0, fmt.Errorf("limit must be a positive integer")
		}
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if s := q.Get("offset"); s != "" {
		if offset, err = strconv.Atoi(s); err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}

// QueryBool parses an optional boolean query parameter. A missing parameter
// yields nil.
func QueryBool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return &v, nil
}
