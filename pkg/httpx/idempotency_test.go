package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/httpx"
)

var errDup = errors.New("duplicate request")

type memClaimer struct {
	mu   sync.Mutex
	keys map[string]bool
	err  error
}

func (m *memClaimer) Claim(_ context.Context, scope, key string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keys == nil {
		m.keys = map[string]bool{}
	}
	if m.keys[scope+key] {
		return errDup
	}
	m.keys[scope+key] = true
	return nil
}

func (m *memClaimer) Release(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, scope+key)
	return nil
}

func serve(h http.Handler, key string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/items/x/purchases", http.NoBody)
	if key != "" {
		req.Header.Set(httpx.IdempotencyHeader, key)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr.Code
}

func TestIdempotency_RejectsRepeatedKey(t *testing.T) {
	calls := 0
	h := httpx.Idempotency(&memClaimer{}, "purchases", "", httpx.IsError(errDup))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusCreated)
		}))

	if got := serve(h, "k1"); got != http.StatusCreated {
		t.Fatalf("first request: got %d", got)
	}
	if got := serve(h, "k1"); got != http.StatusConflict {
		t.Fatalf("repeat request: got %d, want 409", got)
	}
	if got := serve(h, "k2"); got != http.StatusCreated {
		t.Fatalf("new key: got %d", got)
	}
	if calls != 2 {
		t.Fatalf("handler ran %d times, want 2", calls)
	}
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	calls := 0
	h := httpx.Idempotency(&memClaimer{}, "prices", "", httpx.IsError(errDup))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusCreated)
		}))

	serve(h, "")
	serve(h, "")
	if calls != 2 {
		t.Fatalf("expected both requests to run, got %d", calls)
	}
}

func TestIdempotency_NilStorePassesThrough(t *testing.T) {
	h := httpx.Idempotency(nil, "prices", "", httpx.IsError(errDup))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) }))
	if got := serve(h, "k"); got != http.StatusCreated {
		t.Fatalf("got %d", got)
	}
}

func TestIdempotency_ReleasesKeyOnFailure(t *testing.T) {
	status := http.StatusUnprocessableEntity
	h := httpx.Idempotency(&memClaimer{}, "prices", "", httpx.IsError(errDup))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(status) }))

	if got := serve(h, "retry-me"); got != http.StatusUnprocessableEntity {
		t.Fatalf("got %d", got)
	}
	status = http.StatusCreated
	if got := serve(h, "retry-me"); got != http.StatusCreated {
		t.Fatalf("retry after failure: got %d, want 201", got)
	}
}

func TestIdempotency_StoreDown(t *testing.T) {
	h := httpx.Idempotency(&memClaimer{err: errors.New("dial tcp: refused")}, "prices", "", httpx.IsError(errDup))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) }))
	if got := serve(h, "k"); got != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want 503", got)
	}
}

func TestIdempotency_KeyTooLong(t *testing.T) {
	h := httpx.Idempotency(&memClaimer{}, "prices", "", httpx.IsError(errDup))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) }))
	if got := serve(h, strings.Repeat("k", 300)); got != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", got)
	}
}

func TestIdempotency_ScopedByURLParam(t *testing.T) {
	r := chi.NewRouter()
	r.With(httpx.Idempotency(&memClaimer{}, "purchases", "itemID", httpx.IsError(errDup))).
		Post("/items/{itemID}/purchases", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })

	post := func(item string) int {
		req := httptest.NewRequest(http.MethodPost, "/items/"+item+"/purchases", http.NoBody)
		req.Header.Set(httpx.IdempotencyHeader, "shared")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr.Code
	}

	tests := []struct {
		name string
		item string
		want int
	}{
		{"first item", "a", http.StatusCreated},
		{"same key on another item", "b", http.StatusCreated},
		{"repeat on first item", "a", http.StatusConflict},
		{"repeat on second item", "b", http.StatusConflict},
	}
	for _, tt := range tests {
		if got := post(tt.item); got != tt.want {
			t.Fatalf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}
