package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/fjod/go_storefront/internal/domain"
)

// flexID decodes an identifier that the backend sends either as a JSON
// string or as a number. Ambiguous contract, kept tolerant on purpose.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// CreateOrderResponse is the order-creation reply. The backend has been
// seen returning the identifier under either field name; both are kept as
// accepted aliases.
type CreateOrderResponse struct {
	OrderID flexID  `json:"order_id"`
	ID      flexID  `json:"id"`
	Amount  float64 `json:"amount"`
}

// ResolvedID returns the order identifier, preferring order_id over id.
// Empty when the response carried neither.
func (r CreateOrderResponse) ResolvedID() string {
	if r.OrderID != "" {
		return string(r.OrderID)
	}
	return string(r.ID)
}

// CreateOrder posts the checkout payload to the order API.
func (c *Client) CreateOrder(ctx context.Context, payload domain.CheckoutPayload) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.do(ctx, "create order", http.MethodPost, "/api/orders", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type orderRecord struct {
	ID     flexID           `json:"id"`
	UserID int64            `json:"userId"`
	Amount float64          `json:"amount"`
	Cart   domain.OrderCart `json:"Cart"`
}

// GetOrder fetches an existing order by id. Not-found and every other
// non-success status surface as *HTTPError.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var rec orderRecord
	path := "/api/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, "fetch order", http.MethodGet, path, nil, &rec); err != nil {
		return nil, err
	}

	return &domain.Order{
		ID:     string(rec.ID),
		UserID: rec.UserID,
		Amount: rec.Amount,
		Cart:   rec.Cart,
	}, nil
}
