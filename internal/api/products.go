package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/imageutil"
)

// productRecord matches the catalog's JSON shape, including the nested
// per-size stock list.
type productRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"categoryId"`
	ProductSize []struct {
		Stock int `json:"stock"`
		Size  struct {
			Size string `json:"size"`
		} `json:"Size"`
	} `json:"ProductSize"`
}

// toProduct converts a raw catalog record. The image URL is probed from the
// raw JSON object because the catalog is inconsistent about the field name.
func (c *Client) toProduct(raw json.RawMessage) (domain.Product, error) {
	var rec productRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Product{}, fmt.Errorf("failed to parse product: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Product{}, fmt.Errorf("failed to parse product: %w", err)
	}

	p := domain.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		CategoryID:  rec.CategoryID,
		ImageURL:    imageutil.ProductImage(fields, c.img),
	}
	for _, ps := range rec.ProductSize {
		p.Sizes = append(p.Sizes, domain.ProductSize{Size: ps.Size.Size, Stock: ps.Stock})
	}
	return p, nil
}

// ListProducts fetches the catalog, optionally filtered by category id and
// search term.
func (c *Client) ListProducts(ctx context.Context, category, search string) ([]domain.Product, error) {
	q := url.Values{}
	if category != "" {
		q.Set("cat", category)
	}
	if search != "" {
		q.Set("search", search)
	}

	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var raws []json.RawMessage
	if err := c.do(ctx, "fetch products", http.MethodGet, path, nil, &raws); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		p, err := c.toProduct(raw)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var raw json.RawMessage
	path := "/api/products/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, "fetch product", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	p, err := c.toProduct(raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
