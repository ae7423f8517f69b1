package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/item/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/items", handlers.NewListItemsHandler(svcs).Execute)
		r.Get("/items/{itemID}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/items/{itemID}/active", handlers.NewPutItemActiveHandler(svcs).Execute)
	})
}
