package cart

import (
	"github.com/binaamart/storefront/internal/models"
)

// State is the full cart state visible to callers. Total and ItemCount are
// derived from Items and recomputed from scratch after every transition.
type State struct {
	Items     []models.CartItem `json:"items"`
	IsOpen    bool              `json:"isOpen"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"itemCount"`
}

// Store is the cart state machine. Every transition is synchronous, always
// produces a next state, and never fails: unknown identifiers are no-ops and
// duplicate adds are merged. The store trusts its callers to pass positive
// quantities to Add; the HTTP boundary validates before dispatching.
type Store struct {
	state State
}

// NewStore returns a store in the initial state: no items, panel closed.
func NewStore() *Store {
	return &Store{state: State{Items: []models.CartItem{}}}
}

// State returns a copy of the current state. The item slice is cloned so the
// caller cannot mutate the store through it.
func (s *Store) State() State {
	out := s.state
	out.Items = s.Items()
	return out
}

// Items returns a copy of the current line items, in insertion order. The
// slice is never nil: an empty cart serializes as an empty list.
func (s *Store) Items() []models.CartItem {
	return append([]models.CartItem{}, s.state.Items...)
}

func computeTotals(items []models.CartItem) (total float64, count int) {
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
		count += item.Quantity
	}
	return total, count
}

func (s *Store) recompute() {
	s.state.Total, s.state.ItemCount = computeTotals(s.state.Items)
}

// Add merges quantity into the existing line for the product, refreshing the
// stored snapshot, or appends a new line at the end. Adding opens the cart
// panel.
func (s *Store) Add(product models.Product, quantity int) {
	found := false
	for i := range s.state.Items {
		if s.state.Items[i].ID == product.ID {
			s.state.Items[i].Quantity += quantity
			s.state.Items[i].Product = product
			found = true
			break
		}
	}
	if !found {
		s.state.Items = append(s.state.Items, models.CartItem{
			ID:       product.ID,
			Product:  product,
			Quantity: quantity,
		})
	}
	s.recompute()
	s.state.IsOpen = true
}

// Remove deletes the line with the given id. A missing id is a no-op, not an
// error. The panel flag is untouched.
func (s *Store) Remove(id int) {
	items := s.state.Items[:0]
	for _, item := range s.state.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.state.Items = items
	s.recompute()
}

// UpdateQuantity replaces the quantity of the line with the given id. A
// quantity of zero or less is defined as Remove(id); callers rely on that.
// A missing id is a no-op.
func (s *Store) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			s.state.Items[i].Quantity = quantity
			break
		}
	}
	s.recompute()
}

// Clear empties the cart. The panel flag is untouched.
func (s *Store) Clear() {
	s.state.Items = []models.CartItem{}
	s.recompute()
}

// Toggle flips the panel flag.
func (s *Store) Toggle() {
	s.state.IsOpen = !s.state.IsOpen
}

// Close lowers the panel flag unconditionally.
func (s *Store) Close() {
	s.state.IsOpen = false
}

// Load replaces the item list wholesale. It is used only when hydrating from
// the durable slot; the panel flag keeps its current value, so a freshly
// hydrated cart stays closed.
func (s *Store) Load(items []models.CartItem) {
	s.state.Items = append([]models.CartItem{}, items...)
	s.recompute()
}
