package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// IdempotencyHeader carries the client-chosen key for recording endpoints.
const IdempotencyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 255

// IdempotencyClaimer is satisfied by cache.IdempotencyStore.
type IdempotencyClaimer interface {
	Claim(ctx context.Context, scope, key string) error
	Release(ctx context.Context, scope, key string) error
}

// Idempotency rejects a repeated Idempotency-Key with 409. Requests without the
// header pass through. isDuplicate recognises the claimer's duplicate error.
// When param is set, the value of that chi URL parameter narrows the scope, so
// one key may be reused against different resources.
// The key is released when the handler responds with a non-2xx status so the
// client can retry a failed request with the same key.
func Idempotency(store IdempotencyClaimer, scope, param string, isDuplicate func(error) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if store == nil || key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxIdempotencyKeyLen {
				BadValue(w, "idempotency key too long")
				return
			}

			scope := scope
			if param != "" {
				scope += "/" + chi.URLParam(r, param)
			}

			if err := store.Claim(r.Context(), scope, key); err != nil {
				if isDuplicate(err) {
					JSON(w, http.StatusConflict, ErrorBody{Error: err.Error(), Kind: KindConflict})
					return
				}
				JSONError(w, http.StatusServiceUnavailable, "idempotency store unavailable")
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			if sw.status < 200 || sw.status > 299 {
				_ = store.Release(context.WithoutCancel(r.Context()), scope, key)
			}
		})
	}
}

// IsError adapts a sentinel to the isDuplicate callback of Idempotency.
func IsError(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
