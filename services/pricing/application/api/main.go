package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/services/pricing/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/pricing/application/services"
)

// PricingRoutes registers price endpoints on the provided chi router.
func PricingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	reads := handlers.NewGetPricesHandler(svcs)

	r.Group(func(r chi.Router) {
		r.With(httpx.Idempotency(a.Idempotency, "prices", "itemID", httpx.IsError(cache.ErrDuplicateRequest))).
			Post("/items/{itemID}/prices", handlers.NewPostPriceHandler(svcs).Execute)
		r.Get("/items/{itemID}/prices", reads.History)
		r.Get("/items/{itemID}/prices/current", reads.Current)
		r.Get("/items/{itemID}/prices/on/{date}", reads.OnDate)
	})
}
