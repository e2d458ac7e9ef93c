package devserver

// Wire shapes matching the storefront API contract. Field names mirror the
// production backend, nested casing included.

type Product struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	CategoryID  int64         `json:"categoryId"`
	ImageURL    string        `json:"imageUrl"`
	ProductSize []ProductSize `json:"ProductSize"`
}

type ProductSize struct {
	Stock int      `json:"stock"`
	Size  SizeName `json:"Size"`
}

type SizeName struct {
	Size string `json:"size"`
}

type CreateOrderRequest struct {
	UserID int64             `json:"userId"`
	Items  []CreateOrderItem `json:"items"`
	Amount float64           `json:"amount"`
}

// CreateOrderItem uses the request-side field casing; stored order items
// use the snake_case the backend serves back.
type CreateOrderItem struct {
	ProductID int64   `json:"productId"`
	Size      *string `json:"size"`
	Quantity  int     `json:"quantity"`
}

type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Size      *string `json:"size"`
	Quantity  int     `json:"quantity"`
}

type OrderCart struct {
	CartItem []OrderItem `json:"CartItem"`
}

type OrderRecord struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	UserID  int64     `json:"userId"`
	Amount  float64   `json:"amount"`
	Cart    OrderCart `json:"Cart"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
