package devserver

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// OrderStore keeps placed orders in memory. Good enough for development;
// the real backend owns durable orders.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*OrderRecord
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*OrderRecord),
	}
}

// Create stores a new order and assigns its id.
func (s *OrderStore) Create(userID int64, items []OrderItem, amount float64) *OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	order := &OrderRecord{
		ID:      id,
		OrderID: id,
		UserID:  userID,
		Amount:  amount,
		Cart:    OrderCart{CartItem: items},
	}
	s.orders[id] = order
	return order
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id string) (*OrderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
