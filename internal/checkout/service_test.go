package checkout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/api"
	"github.com/fjod/go_storefront/internal/domain"
)

type mockCart struct {
	lines   []domain.CartLine
	cleared bool
}

func (m *mockCart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *mockCart) Totals() domain.CartTotals {
	var sum int64
	for _, l := range m.lines {
		sum += l.UnitPriceCents * int64(l.Quantity)
	}
	return domain.CartTotals{SubtotalCents: sum}
}

func (m *mockCart) CheckoutPayload(userID int64) domain.CheckoutPayload {
	items := make([]domain.CheckoutItem, 0, len(m.lines))
	for _, l := range m.lines {
		items = append(items, domain.CheckoutItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return domain.CheckoutPayload{UserID: userID, Items: items}
}

func (m *mockCart) Clear() {
	m.cleared = true
	m.lines = nil
}

type mockGateway struct {
	resp    *api.CreateOrderResponse
	err     error
	calls   int
	payload domain.CheckoutPayload
}

func (m *mockGateway) CreateOrder(_ context.Context, payload domain.CheckoutPayload) (*api.CreateOrderResponse, error) {
	m.calls++
	m.payload = payload
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func taxRate(t *testing.T) decimal.Decimal {
	d, err := decimal.NewFromString(DefaultTaxRate)
	require.NoError(t, err)
	return d
}

func oneLine() []domain.CartLine {
	return []domain.CartLine{
		{LineKey: "1:M", ProductID: 1, Name: "Tee", Size: "M", Quantity: 1, UnitPriceCents: 1999},
	}
}

func TestPlaceOrder_EmptyCart_NoNetworkCall(t *testing.T) {
	cart := &mockCart{}
	gateway := &mockGateway{}
	sut := NewService(cart, gateway, taxRate(t))

	_, err := sut.PlaceOrder(context.Background(), 1)

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, gateway.calls)
	assert.False(t, cart.cleared)
}

func TestPlaceOrder_Success_ClearsCart(t *testing.T) {
	cart := &mockCart{lines: oneLine()}
	gateway := &mockGateway{resp: &api.CreateOrderResponse{OrderID: "order-7"}}
	sut := NewService(cart, gateway, taxRate(t))

	orderID, err := sut.PlaceOrder(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "order-7", orderID)
	assert.True(t, cart.cleared)

	// Amount sent is the grand total: 19.99 + 2.60 tax.
	assert.Equal(t, 22.59, gateway.payload.Amount)
	assert.Equal(t, int64(1), gateway.payload.UserID)
	require.Len(t, gateway.payload.Items, 1)
	assert.Equal(t, int64(1), gateway.payload.Items[0].ProductID)
}

func TestPlaceOrder_AcceptsIDAlias(t *testing.T) {
	cart := &mockCart{lines: oneLine()}
	gateway := &mockGateway{resp: &api.CreateOrderResponse{ID: "42"}}
	sut := NewService(cart, gateway, taxRate(t))

	orderID, err := sut.PlaceOrder(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "42", orderID)
}

func TestPlaceOrder_PrefersOrderIDOverID(t *testing.T) {
	cart := &mockCart{lines: oneLine()}
	gateway := &mockGateway{resp: &api.CreateOrderResponse{OrderID: "primary", ID: "legacy"}}
	sut := NewService(cart, gateway, taxRate(t))

	orderID, err := sut.PlaceOrder(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "primary", orderID)
}

func TestPlaceOrder_GatewayError_CartUntouched(t *testing.T) {
	cart := &mockCart{lines: oneLine()}
	gateway := &mockGateway{err: &api.HTTPError{Op: "create order", Status: 502}}
	sut := NewService(cart, gateway, taxRate(t))

	before := cart.Lines()
	_, err := sut.PlaceOrder(context.Background(), 1)

	var httpErr *api.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 502, httpErr.Status)
	assert.False(t, cart.cleared)
	assert.Equal(t, before, cart.Lines())
}

func TestPlaceOrder_NoOrderID_MalformedResponse(t *testing.T) {
	cart := &mockCart{lines: oneLine()}
	gateway := &mockGateway{resp: &api.CreateOrderResponse{}}
	sut := NewService(cart, gateway, taxRate(t))

	_, err := sut.PlaceOrder(context.Background(), 1)

	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.False(t, cart.cleared)
}

func TestTotals_FromCartHint(t *testing.T) {
	cart := &mockCart{lines: oneLine()}
	sut := NewService(cart, &mockGateway{}, taxRate(t))

	totals := sut.Totals()

	assert.Equal(t, "19.99", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "2.60", totals.Tax.StringFixed(2))
	assert.Equal(t, "22.59", totals.GrandTotal.StringFixed(2))
}
