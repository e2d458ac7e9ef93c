package domain

// Product is a catalog record as served by the backend. Price is in decimal
// currency units because that is what the API sends; the cart converts it to
// cents at add-time.
type Product struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	CategoryID  int64         `json:"categoryId"`
	ImageURL    string        `json:"imageUrl"`
	Sizes       []ProductSize `json:"sizes,omitempty"`
}

// ProductSize is one size variant with its remaining stock.
type ProductSize struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

// FirstAvailableSize returns the first size with stock, falling back to the
// first listed size when everything is sold out. Empty when the product has
// no size variants.
func (p Product) FirstAvailableSize() string {
	for _, s := range p.Sizes {
		if s.Stock > 0 {
			return s.Size
		}
	}
	if len(p.Sizes) > 0 {
		return p.Sizes[0].Size
	}
	return ""
}

// SizeInStock reports whether the given size exists and has stock left.
func (p Product) SizeInStock(size string) bool {
	for _, s := range p.Sizes {
		if s.Size == size {
			return s.Stock > 0
		}
	}
	return false
}

// CategoryName maps the backend's numeric category ids to display names.
// The ids come from the catalog service and are stable.
var CategoryName = map[int64]string{
	101: "T-Shirts",
	106: "Shoes",
	107: "Sweat Shirt",
	108: "Lowers",
	109: "Jacket",
	111: "Accessories",
}
