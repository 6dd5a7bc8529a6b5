package handlers_test_suite

import (
	"net/http"
	"testing"

	handler "github.com/binaamart/storefront/internal/http/handlers"
)

func TestGetCartStartsEmpty(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()

	w := c.do(http.MethodGet, "/cart", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	state, err := decodeState(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(state.Items) != 0 || state.Total != 0 || state.ItemCount != 0 || state.IsOpen {
		t.Errorf("expected the initial empty state, got %+v", state)
	}
}

func TestAddCartItem(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()

	w := c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 1})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	state, err := decodeState(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(state.Items) != 1 || state.Items[0].ID != 7 || state.Items[0].Quantity != 1 {
		t.Fatalf("expected one line {7, qty 1}, got %+v", state.Items)
	}
	if state.Items[0].Product.Name != "Gypsum Board" {
		t.Errorf("expected a catalog snapshot on the line, got %+v", state.Items[0].Product)
	}
	if state.Total != 100 || state.ItemCount != 1 {
		t.Errorf("expected total 100 and count 1, got %v and %v", state.Total, state.ItemCount)
	}
	if !state.IsOpen {
		t.Error("adding should open the cart panel")
	}
}

func TestAddCartItemMergesSameProduct(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()

	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 1})
	w := c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 2})

	state, err := decodeState(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(state.Items) != 1 || state.Items[0].Quantity != 3 {
		t.Fatalf("expected merged line with qty 3, got %+v", state.Items)
	}
	if state.Total != 300 || state.ItemCount != 3 {
		t.Errorf("expected total 300 and count 3, got %v and %v", state.Total, state.ItemCount)
	}
}

func TestAddCartItemValidation(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()

	tests := []struct {
		name       string
		payload    handler.AddCartItemRequest
		expectCode int
	}{
		{"zero quantity", handler.AddCartItemRequest{ProductID: 7, Quantity: 0}, http.StatusBadRequest},
		{"negative quantity", handler.AddCartItemRequest{ProductID: 7, Quantity: -2}, http.StatusBadRequest},
		{"missing product id", handler.AddCartItemRequest{Quantity: 1}, http.StatusBadRequest},
		{"unknown product", handler.AddCartItemRequest{ProductID: 999, Quantity: 1}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.do(http.MethodPost, "/cart/items", tt.payload)
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}

	// None of the rejected requests may have touched the cart.
	w := c.do(http.MethodGet, "/cart", nil)
	state, _ := decodeState(w)
	if len(state.Items) != 0 {
		t.Errorf("rejected adds must not reach the store, got %+v", state.Items)
	}
}

func TestUpdateCartItemQuantity(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()
	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 1})

	w := c.do(http.MethodPut, "/cart/items/7", handler.UpdateCartItemRequest{Quantity: 5})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	state, _ := decodeState(w)
	if state.Items[0].Quantity != 5 || state.Total != 500 || state.ItemCount != 5 {
		t.Errorf("expected qty 5, total 500, count 5, got %+v", state)
	}
}

func TestUpdateCartItemToZeroRemoves(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()
	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 3})

	w := c.do(http.MethodPut, "/cart/items/7", handler.UpdateCartItemRequest{Quantity: 0})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	state, _ := decodeState(w)
	if len(state.Items) != 0 || state.Total != 0 || state.ItemCount != 0 {
		t.Errorf("expected empty cart after delete-by-zero, got %+v", state)
	}
}

func TestUpdateUnknownItemIsNoOp(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()
	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 2})

	w := c.do(http.MethodPut, "/cart/items/999", handler.UpdateCartItemRequest{Quantity: 4})

	if w.Code != http.StatusOK {
		t.Fatalf("unknown ids are a no-op, not an error; got %d", w.Code)
	}
	state, _ := decodeState(w)
	if len(state.Items) != 1 || state.Items[0].Quantity != 2 {
		t.Errorf("expected cart unchanged, got %+v", state.Items)
	}
}

func TestRemoveCartItem(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()
	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 1})
	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 12, Quantity: 1})

	w := c.do(http.MethodDelete, "/cart/items/7", nil)

	state, _ := decodeState(w)
	if len(state.Items) != 1 || state.Items[0].ID != 12 {
		t.Errorf("expected only product 12 left, got %+v", state.Items)
	}

	// Deleting again is a no-op.
	w = c.do(http.MethodDelete, "/cart/items/7", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK on repeat delete, got %d", w.Code)
	}
}

func TestClearCart(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()
	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 2})

	w := c.do(http.MethodDelete, "/cart", nil)

	state, _ := decodeState(w)
	if len(state.Items) != 0 || state.Total != 0 || state.ItemCount != 0 {
		t.Errorf("expected empty cart, got %+v", state)
	}
}

func TestToggleAndCloseCart(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()

	w := c.do(http.MethodPost, "/cart/toggle", nil)
	state, _ := decodeState(w)
	if !state.IsOpen {
		t.Error("toggle from closed should open")
	}

	w = c.do(http.MethodPost, "/cart/close", nil)
	state, _ = decodeState(w)
	if state.IsOpen {
		t.Error("close should lower the flag")
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	t.Cleanup(resetCarts)
	first := newSessionClient()
	second := newSessionClient()

	first.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 7, Quantity: 1})

	w := second.do(http.MethodGet, "/cart", nil)
	state, _ := decodeState(w)
	if len(state.Items) != 0 {
		t.Errorf("second session must have its own cart, got %+v", state.Items)
	}
}

func TestCartSurvivesHubRestart(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()
	c.do(http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: 12, Quantity: 2})

	// Drop the in-memory carts; the slot store keeps the serialized items.
	cartHub.Reset()

	w := c.do(http.MethodGet, "/cart", nil)
	state, _ := decodeState(w)
	if len(state.Items) != 1 || state.Items[0].ID != 12 || state.Items[0].Quantity != 2 {
		t.Fatalf("expected rehydrated cart, got %+v", state.Items)
	}
	if state.Total != 420 || state.ItemCount != 2 {
		t.Errorf("expected recomputed totals (420, 2), got (%v, %d)", state.Total, state.ItemCount)
	}
	if state.IsOpen {
		t.Error("a rehydrated cart starts closed")
	}
}

func TestCartItemIDRouteValidation(t *testing.T) {
	t.Cleanup(resetCarts)
	c := newSessionClient()

	w := c.do(http.MethodDelete, "/cart/items/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("DELETE /cart/items/abc: expected 400 Bad Request, got %d", w.Code)
	}

	w = c.do(http.MethodPut, "/cart/items/abc", handler.UpdateCartItemRequest{Quantity: 1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("PUT /cart/items/abc: expected 400 Bad Request, got %d", w.Code)
	}
}
