package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/domain"
)

type mockAPI struct {
	m         sync.Mutex
	products  []domain.Product
	err       error
	listCalls int
	getCalls  int
}

func (m *mockAPI) ListProducts(context.Context, string, string) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockAPI) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("product %d not found", id)
}

func (m *mockAPI) getCallCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.getCalls
}

func catalogOf(products ...domain.Product) *mockAPI {
	return &mockAPI{products: products}
}

func TestGetProduct_SecondCallServedFromCache(t *testing.T) {
	api := catalogOf(domain.Product{ID: 1, Name: "Tee", Price: 19.99})
	sut := NewService(api)

	first, err := sut.GetProduct(context.Background(), 1)
	require.NoError(t, err)

	second, err := sut.GetProduct(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.getCallCount())
}

func TestGetProduct_CacheReturnsCopy(t *testing.T) {
	api := catalogOf(domain.Product{ID: 1, Name: "Tee"})
	sut := NewService(api)

	p, err := sut.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	p.Name = "mutated"

	again, err := sut.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Tee", again.Name)
}

func TestGetProduct_Error_Propagates(t *testing.T) {
	api := &mockAPI{err: fmt.Errorf("backend down")}
	sut := NewService(api)

	_, err := sut.GetProduct(context.Background(), 1)
	require.ErrorContains(t, err, "backend down")
}

func TestListProducts_NotCached(t *testing.T) {
	api := catalogOf(domain.Product{ID: 1, Name: "Tee"})
	sut := NewService(api)

	_, err := sut.ListProducts(context.Background(), "", "")
	require.NoError(t, err)
	_, err = sut.ListProducts(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 2, api.listCalls)
}

func TestBreaker_OpensAfterRepeatedFailures(t *testing.T) {
	api := &mockAPI{err: fmt.Errorf("backend down")}
	sut := NewService(api)

	// gobreaker trips after more than five consecutive failures.
	for i := 0; i < 6; i++ {
		_, err := sut.ListProducts(context.Background(), "", "")
		require.Error(t, err)
	}

	_, err := sut.ListProducts(context.Background(), "", "")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestView_SupersededFetchIsDiscarded(t *testing.T) {
	api := catalogOf(domain.Product{ID: 1, Name: "Tee"})
	views := NewViews(NewService(api))

	stale := views.Open()
	_ = views.Open() // user navigated away

	_, err := stale.Product(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStaleView)
}

func TestView_CurrentViewStillLive(t *testing.T) {
	api := catalogOf(domain.Product{ID: 1, Name: "Tee"})
	views := NewViews(NewService(api))

	view := views.Open()
	p, err := view.Product(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Tee", p.Name)
	assert.True(t, view.Live())
}

func TestView_ListingGuardedToo(t *testing.T) {
	api := catalogOf(domain.Product{ID: 1, Name: "Tee"})
	views := NewViews(NewService(api))

	stale := views.Open()
	_ = views.Open()

	_, err := stale.Products(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrStaleView)
}
