package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/services/ledger/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// LedgerRoutes registers purchase endpoints on the provided chi router.
func LedgerRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	reads := handlers.NewGetPurchasesHandler(svcs)

	r.Group(func(r chi.Router) {
		r.With(httpx.Idempotency(a.Idempotency, "purchases", "itemID", httpx.IsError(cache.ErrDuplicateRequest))).
			Post("/items/{itemID}/purchases", handlers.NewPostPurchaseHandler(svcs).Execute)
		r.Get("/items/{itemID}/purchases", reads.History)
		r.Get("/purchases/losses", reads.Losses)
	})
}
