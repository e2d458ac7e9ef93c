package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fjod/go_storefront/internal/api"
	"github.com/fjod/go_storefront/internal/domain"
)

// Cart is the slice of cart-store behavior checkout needs. The consumer
// defines this interface, not the store.
type Cart interface {
	Lines() []domain.CartLine
	Totals() domain.CartTotals
	CheckoutPayload(userID int64) domain.CheckoutPayload
	Clear()
}

// OrderGateway creates orders against the backend.
type OrderGateway interface {
	CreateOrder(ctx context.Context, payload domain.CheckoutPayload) (*api.CreateOrderResponse, error)
}

type Service struct {
	cart    Cart
	gateway OrderGateway
	taxRate decimal.Decimal
}

func NewService(cart Cart, gateway OrderGateway, taxRate decimal.Decimal) *Service {
	return &Service{
		cart:    cart,
		gateway: gateway,
		taxRate: taxRate,
	}
}

// Totals computes the current checkout breakdown from the cart.
func (s *Service) Totals() Totals {
	totals := s.cart.Totals()
	return ComputeTotals(s.cart.Lines(), &totals, s.taxRate)
}

// PlaceOrder submits the cart as an order for the given user.
//
// The cart is validated before any network call and cleared only after a
// successful response carrying an order id; on any failure the cart is
// left untouched.
func (s *Service) PlaceOrder(ctx context.Context, userID int64) (string, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	payload := s.cart.CheckoutPayload(userID)
	payload.Amount = s.Totals().GrandTotal.InexactFloat64()

	resp, err := s.gateway.CreateOrder(ctx, payload)
	if err != nil {
		return "", err
	}

	orderID := resp.ResolvedID()
	if orderID == "" {
		return "", ErrMalformedResponse
	}

	s.cart.Clear()
	return orderID, nil
}
