package domain

// OrderItem is one line of a placed order as returned by the backend.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Size      *string `json:"size"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Name      string  `json:"name,omitempty"`
}

// OrderCart mirrors the backend's nested order shape: line items live under
// Cart.CartItem.
type OrderCart struct {
	Items []OrderItem `json:"CartItem"`
}

// Order is the backend's order record. Read-only from this side; the shape
// is owned by the order API.
type Order struct {
	ID     string    `json:"id"`
	UserID int64     `json:"userId"`
	Amount float64   `json:"amount"`
	Cart   OrderCart `json:"Cart"`
}
