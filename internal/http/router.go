package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/binaamart/storefront/internal/http/handlers"
	"github.com/binaamart/storefront/internal/http/session"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/catalog/facets", handlers.GetFacetsHandler)

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware)
		r.Get("/cart", handlers.GetCartHandler)
		r.Post("/cart/items", handlers.AddCartItemHandler)
		r.Put("/cart/items/{id}", handlers.UpdateCartItemHandler)
		r.Delete("/cart/items/{id}", handlers.RemoveCartItemHandler)
		r.Delete("/cart", handlers.ClearCartHandler)
		r.Post("/cart/toggle", handlers.ToggleCartHandler)
		r.Post("/cart/close", handlers.CloseCartHandler)
	})

	r.With(RateLimit).Post("/contact", handlers.CreateContactMessageHandler)

	return r
}
