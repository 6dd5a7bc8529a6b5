package models

// CartItem is one entry in a cart: a product snapshot paired with a quantity.
// The snapshot is the record captured when the item was added, not a live
// join against the catalog, so cart lines keep price and details as of
// add-time until the product is re-added.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
