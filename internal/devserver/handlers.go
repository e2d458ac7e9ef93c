// Package devserver is a local stand-in for the storefront backend. It
// implements the order and product endpoints the client talks to, backed by
// seed data and an in-memory order store.
package devserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Handler struct {
	products []Product
	orders   *OrderStore
}

func NewHandler(products []Product, orders *OrderStore) *Handler {
	return &Handler{
		products: products,
		orders:   orders,
	}
}

// Router assembles the API with the usual middleware stack.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/{id}", h.GetOrder)
	})

	return otelhttp.NewHandler(r, "devserver")
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	cat := r.URL.Query().Get("cat")
	search := strings.ToLower(r.URL.Query().Get("search"))

	result := make([]Product, 0, len(h.products))
	for _, p := range h.products {
		if cat != "" && strconv.FormatInt(p.CategoryID, 10) != cat {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		result = append(result, p)
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	for _, p := range h.products {
		if p.ID == id {
			respondJSON(w, http.StatusOK, p)
			return
		}
	}

	respondError(w, http.StatusNotFound, "not_found", "product not found")
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.UserID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_user_id", "userId must be positive")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_order", "order must contain at least one item")
		return
	}

	items := make([]OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_item", "items need a product id and a positive quantity")
			return
		}
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	order := h.orders.Create(req.UserID, items, req.Amount)
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
