// Package cart owns the shopping cart: the line sequence, its mutations and
// its local persistence. The store is constructed once and handed to
// whatever needs cart access; there is no ambient global.
package cart

import (
	"errors"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/imageutil"
)

// Store is the sole owner of cart-line data. Every mutation runs the pure
// reducer and then persists the whole sequence; persistence is best-effort
// and never surfaces errors to the caller.
type Store struct {
	mu      sync.Mutex
	storage Storage
	lines   []domain.CartLine
	img     imageutil.Options
}

// NewStore loads the persisted cart and runs the product-id migration pass.
// A missing or corrupt saved cart starts empty; the user flow is never
// interrupted by storage trouble.
func NewStore(storage Storage, img imageutil.Options) *Store {
	s := &Store{storage: storage, img: img}

	lines, err := storage.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSavedCart) {
			log.Printf("cart load error, starting empty: %v", err)
		}
		return s
	}

	s.lines = migrateLines(lines)
	return s
}

// Add merges the product into the cart, incrementing quantity when a line
// for the same (product, size) pair already exists.
func (s *Store) Add(p domain.Product, size string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = addLine(s.lines, p, size, quantity, s.img)
	s.persist()
}

// UpdateQuantity sets the quantity for a line key, clamped to a minimum
// of 1.
func (s *Store) UpdateQuantity(lineKey string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = setQuantity(s.lines, lineKey, quantity)
	s.persist()
}

// Remove deletes the line with the given key. Unknown keys are a no-op.
func (s *Store) Remove(lineKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = removeLine(s.lines, lineKey)
	s.persist()
}

// Clear empties the cart. Called by the checkout flow after a successful
// order placement, and directly by the user.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// Lines returns a copy of the current cart lines in their stored order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals computes the cart totals fresh from the current lines.
func (s *Store) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.CartTotals{SubtotalCents: subtotalCents(s.lines)}
}

// CheckoutPayload builds the order-creation body: items mapped 1:1 from the
// cart lines in order, amount as the subtotal in decimal currency units.
func (s *Store) CheckoutPayload(userID int64) domain.CheckoutPayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CheckoutItem, 0, len(s.lines))
	for _, line := range s.lines {
		items = append(items, checkoutItem(line))
	}

	amount := decimal.NewFromInt(subtotalCents(s.lines)).
		Div(decimal.NewFromInt(100)).
		Round(2)

	return domain.CheckoutPayload{
		UserID: userID,
		Items:  items,
		Amount: amount.InexactFloat64(),
	}
}

func checkoutItem(line domain.CartLine) domain.CheckoutItem {
	item := domain.CheckoutItem{
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
	}
	if line.Size != "" {
		size := line.Size
		item.Size = &size
	}
	return item
}

// persist serializes the full line sequence to storage. Failures are logged
// and swallowed; the in-memory cart stays authoritative for this session.
// Callers must hold s.mu.
func (s *Store) persist() {
	if err := s.storage.Save(s.lines); err != nil {
		log.Printf("cart save error: %v", err)
	}
}
