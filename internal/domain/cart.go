package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CartLine is one row in the cart, unique per (product, size) pair.
// Name, image and unit price are captured at add-time and not re-synced
// with the catalog.
type CartLine struct {
	LineKey        string `json:"lineKey"`
	ProductID      int64  `json:"productId"`
	Name           string `json:"name"`
	ImageURL       string `json:"imageUrl"`
	Size           string `json:"size,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// LineKey builds the composite identity of a cart line. Sizeless products
// still get the trailing separator so the key parses back unambiguously.
func LineKey(productID int64, size string) string {
	return fmt.Sprintf("%d:%s", productID, size)
}

// ProductIDFromLineKey recovers the product id from a line key. Used by the
// cart migration pass for lines persisted before the product id was stored
// explicitly.
func ProductIDFromLineKey(key string) (int64, bool) {
	head, _, _ := strings.Cut(key, ":")
	id, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// CartTotals is derived from the cart lines, never stored.
type CartTotals struct {
	SubtotalCents int64 `json:"subtotalCents"`
}

// CheckoutItem is the wire form of a cart line: display-only fields dropped.
type CheckoutItem struct {
	ProductID int64   `json:"productId"`
	Size      *string `json:"size"`
	Quantity  int     `json:"quantity"`
}

// CheckoutPayload is the order-creation request body derived from the cart.
// Amount is in decimal currency units with two-decimal rounding, not cents.
type CheckoutPayload struct {
	UserID int64          `json:"userId"`
	Items  []CheckoutItem `json:"items"`
	Amount float64        `json:"amount"`
}
