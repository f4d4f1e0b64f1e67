package domain

import "time"

// StatusInStock is the baseline status applied when a new item is registered
// without one. The stored status is never recomputed from quantity; the
// dashboard derives its "low stock" flag client-side.
const StatusInStock = "In Stock"

// InventoryItem is one stock-keeping unit. SKU is a stable, unique,
// user-chosen identifier; Quantity is mutated only through the atomic
// adjustment operation and is allowed to go negative.
type InventoryItem struct {
	ID        uint      `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
