// Package cart implements the storefront's request-list cart: a reducer-style
// state machine, a persistence adapter that mirrors the line items into a
// durable slot, and the façade presentation code calls. There is no order or
// payment pipeline behind it; the cart is a request list.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/binaamart/storefront/internal/models"
)

// Cart couples a Store with the durable slot it mirrors. It is the only
// surface handlers call: named operations forward to store transitions and
// every mutation of the item list is followed by a slot write. Operations
// never fail — a slot that cannot be read or written is logged and the
// in-memory state stays authoritative.
type Cart struct {
	mu     sync.Mutex
	store  *Store
	slots  SlotStore
	key    string
	logger *zap.Logger
}

// Open hydrates a cart from its slot. A slot that is absent, unreadable, or
// holds anything other than a well-formed line-item list yields an empty
// cart; that degradation is logged and never surfaced.
func Open(ctx context.Context, slots SlotStore, key string, logger *zap.Logger) *Cart {
	c := &Cart{store: NewStore(), slots: slots, key: key, logger: logger}

	data, ok, err := slots.Read(ctx, key)
	if err != nil {
		logger.Warn("cart slot read failed, starting empty",
			zap.String("slot", key), zap.Error(err))
		return c
	}
	if !ok {
		return c
	}

	items, err := decodeItems(data)
	if err != nil {
		logger.Warn("discarding malformed cart slot",
			zap.String("slot", key), zap.Error(err))
		return c
	}
	c.store.Load(items)
	c.persist(ctx)
	return c
}

// decodeItems parses a persisted line-item list. There is no schema version:
// a list that decodes is accepted as stored, stale product fields included; a
// shape mismatch is an error and the caller treats the slot as absent.
func decodeItems(data []byte) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// persist overwrites the slot with the current item list. Only the items are
// written; isOpen and the derived totals are recomputed on load.
func (c *Cart) persist(ctx context.Context) {
	data, err := json.Marshal(c.store.Items())
	if err != nil {
		c.logger.Warn("cart serialization failed", zap.String("slot", c.key), zap.Error(err))
		return
	}
	if err := c.slots.Write(ctx, c.key, data); err != nil {
		c.logger.Warn("cart slot write failed", zap.String("slot", c.key), zap.Error(err))
	}
}

// AddToCart adds quantity of the product, merging with an existing line and
// refreshing its snapshot. Quantity is assumed positive; the HTTP boundary
// validates before calling.
func (c *Cart) AddToCart(ctx context.Context, product models.Product, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Add(product, quantity)
	c.persist(ctx)
}

// RemoveFromCart deletes the line with the given id, if present.
func (c *Cart) RemoveFromCart(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Remove(id)
	c.persist(ctx)
}

// UpdateQuantity sets the quantity of the line with the given id. Zero or
// negative deletes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, id, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.UpdateQuantity(id, quantity)
	c.persist(ctx)
}

// ClearCart empties the cart and overwrites the slot with an empty list.
func (c *Cart) ClearCart(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Clear()
	c.persist(ctx)
}

// ToggleCart flips the panel flag. The flag is never persisted.
func (c *Cart) ToggleCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Toggle()
}

// CloseCart lowers the panel flag.
func (c *Cart) CloseCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Close()
}

// State returns a copy of the current cart state.
func (c *Cart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.State()
}
