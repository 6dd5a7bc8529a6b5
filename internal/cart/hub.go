package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Hub hands out one Cart per browsing session, hydrating each from its own
// slot key on first use. Two contexts that share a slot key (the multi-tab
// case) each get an independent in-memory cart; the slot reflects whichever
// wrote last.
type Hub struct {
	mu     sync.Mutex
	carts  map[string]*Cart
	slots  SlotStore
	logger *zap.Logger
}

func NewHub(slots SlotStore, logger *zap.Logger) *Hub {
	return &Hub{
		carts:  make(map[string]*Cart),
		slots:  slots,
		logger: logger,
	}
}

// Cart returns the session's cart, opening and hydrating it if this is the
// session's first touch since the process started.
func (h *Hub) Cart(ctx context.Context, session string) *Cart {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.carts[session]; ok {
		return c
	}
	c := Open(ctx, h.slots, session, h.logger)
	h.carts[session] = c
	return c
}

// Reset drops all in-memory carts. Slots are untouched.
func (h *Hub) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.carts = make(map[string]*Cart)
}
