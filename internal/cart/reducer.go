package cart

import (
	"math"
	"strconv"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/imageutil"
)

// The functions in this file are pure: current lines + action in, new lines
// out. The Store wires them to persistence; tests exercise them without a
// storage backend.

// addLine merges a product into the line sequence. An existing line for the
// same (product, size) pair gets its quantity incremented; otherwise a new
// line is appended with price and image captured at add-time.
func addLine(lines []domain.CartLine, p domain.Product, size string, quantity int, img imageutil.Options) []domain.CartLine {
	if quantity < 1 {
		quantity = 1
	}

	key := domain.LineKey(p.ID, size)
	for i := range lines {
		if lines[i].LineKey == key {
			lines[i].Quantity += quantity
			return lines
		}
	}

	return append(lines, domain.CartLine{
		LineKey:        key,
		ProductID:      p.ID,
		Name:           p.Name,
		ImageURL:       imageutil.Resolve(p.ImageURL, img),
		Size:           size,
		Quantity:       quantity,
		UnitPriceCents: int64(math.Round(p.Price * 100)),
	})
}

// setQuantity replaces the quantity of the line with the given key, clamped
// to a minimum of 1. Unknown keys leave the sequence unchanged.
func setQuantity(lines []domain.CartLine, lineKey string, quantity int) []domain.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	for i := range lines {
		if lines[i].LineKey == lineKey {
			lines[i].Quantity = quantity
			break
		}
	}
	return lines
}

// removeLine drops the line with the given key. Removing an absent key is a
// no-op.
func removeLine(lines []domain.CartLine, lineKey string) []domain.CartLine {
	for i, line := range lines {
		if line.LineKey == lineKey {
			return append(lines[:i], lines[i+1:]...)
		}
	}
	return lines
}

// migrateLines backfills ProductID on lines persisted before it was stored
// explicitly, deriving it from the line key. One-time pass on load.
func migrateLines(lines []domain.CartLine) []domain.CartLine {
	for i := range lines {
		if lines[i].ProductID != 0 {
			continue
		}
		if id, ok := domain.ProductIDFromLineKey(lines[i].LineKey); ok {
			lines[i].ProductID = id
		}
	}
	return lines
}

// subtotalCents sums unit price times quantity in integer cents. No float
// accumulation anywhere on this path.
func subtotalCents(lines []domain.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.UnitPriceCents * int64(line.Quantity)
	}
	return total
}

// ParseQuantity turns free-form quantity input into a usable value.
// Non-numeric and non-positive inputs coerce to 1, matching setQuantity's
// clamp.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
