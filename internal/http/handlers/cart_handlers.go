package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/binaamart/storefront/internal/cart"
	"github.com/binaamart/storefront/internal/catalog"
	"github.com/binaamart/storefront/internal/http/session"
)

func sessionCart(w http.ResponseWriter, r *http.Request) (*cart.Cart, bool) {
	id := session.FromRequest(r)
	if id == "" {
		http.Error(w, "no session", http.StatusInternalServerError)
		return nil, false
	}
	return cartHub.Cart(r.Context(), id), true
}

// GetCartHandler returns the session's cart state: items in insertion order
// plus the derived total, item count, and panel flag.
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := sessionCart(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c.State())
}

// AddCartItemHandler adds a product to the cart. The product snapshot is
// taken from the catalog at this moment; re-adding a product refreshes the
// stored snapshot and accumulates quantity.
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateAddCartItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product, err := catalogRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	c, ok := sessionCart(w, r)
	if !ok {
		return
	}
	c.AddToCart(r.Context(), product, req.Quantity)
	writeJSON(w, http.StatusCreated, c.State())
}

// UpdateCartItemHandler sets a line's quantity. Zero or negative deletes the
// line; an unknown id leaves the cart unchanged. Both respond 200 with the
// resulting state, matching the store's no-error transition contract.
func UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req UpdateCartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	c, ok := sessionCart(w, r)
	if !ok {
		return
	}
	c.UpdateQuantity(r.Context(), id, req.Quantity)
	writeJSON(w, http.StatusOK, c.State())
}

// RemoveCartItemHandler deletes a line. Unknown ids are a no-op.
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	c, ok := sessionCart(w, r)
	if !ok {
		return
	}
	c.RemoveFromCart(r.Context(), id)
	writeJSON(w, http.StatusOK, c.State())
}

// ClearCartHandler empties the cart. The slot is overwritten with an empty
// list, not deleted.
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := sessionCart(w, r)
	if !ok {
		return
	}
	c.ClearCart(r.Context())
	writeJSON(w, http.StatusOK, c.State())
}

func ToggleCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := sessionCart(w, r)
	if !ok {
		return
	}
	c.ToggleCart()
	writeJSON(w, http.StatusOK, c.State())
}

func CloseCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := sessionCart(w, r)
	if !ok {
		return
	}
	c.CloseCart()
	writeJSON(w, http.StatusOK, c.State())
}
