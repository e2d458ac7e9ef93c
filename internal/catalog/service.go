// Package catalog is the browse layer over the product API: an in-memory
// detail cache, collapse of concurrent identical fetches, and a circuit
// breaker so a flapping catalog backend does not hammer every keystroke.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/fjod/go_storefront/internal/domain"
)

// ProductAPI is the slice of the API client the catalog consumes.
type ProductAPI interface {
	ListProducts(ctx context.Context, category, search string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

const cacheTTL = 15 * time.Minute

type cachedProduct struct {
	product   domain.Product
	fetchedAt time.Time
}

type Service struct {
	api     ProductAPI
	breaker *gobreaker.CircuitBreaker[any]
	sfg     singleflight.Group // Prevents duplicate in-flight fetches for same product

	mu    sync.RWMutex
	cache map[int64]cachedProduct
}

func NewService(api ProductAPI) *Service {
	return &Service{
		api: api,
		breaker: gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:    "catalog",
			Timeout: 30 * time.Second,
		}),
		cache: make(map[int64]cachedProduct),
	}
}

// ListProducts fetches the (optionally filtered) catalog. Results are not
// cached: filter combinations are unbounded and listings must reflect
// current stock.
func (s *Service) ListProducts(ctx context.Context, category, search string) ([]domain.Product, error) {
	v, err := s.breaker.Execute(func() (any, error) {
		return s.api.ListProducts(ctx, category, search)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// GetProduct returns a product detail record, served from cache when fresh.
// Concurrent misses for the same id share one backend call.
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	entry, ok := s.cache[id]
	s.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < cacheTTL {
		p := entry.product
		return &p, nil
	}

	v, err, _ := s.sfg.Do(fmt.Sprintf("product:%d", id), func() (interface{}, error) {
		res, errExec := s.breaker.Execute(func() (any, error) {
			return s.api.GetProduct(ctx, id)
		})
		if errExec != nil {
			return nil, errExec
		}

		p := res.(*domain.Product)
		s.mu.Lock()
		s.cache[id] = cachedProduct{product: *p, fetchedAt: time.Now()}
		s.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	p := *v.(*domain.Product)
	return &p, nil
}
