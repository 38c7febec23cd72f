package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

type productDTO struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Shippable bool            `json:"shippable"`
	WeightKG  *float64        `json:"weight_kg,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

type cartLineDTO struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type addItemRequestDTO struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.catalog.List()
	result := make([]productDTO, 0, len(products))
	for _, p := range products {
		dto := productDTO{
			Name:     p.Name(),
			Price:    p.Price(),
			Quantity: p.Quantity(),
		}
		if details, ok := p.ShippingDetails(); ok {
			dto.Shippable = true
			weight := details.Weight
			dto.WeightKG = &weight
		}
		if expiry, ok := p.Expiry(); ok {
			dto.ExpiresAt = &expiry
		}
		result = append(result, dto)
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]cartLineDTO, 0, len(s.cart.Items()))
	for _, item := range s.cart.Items() {
		lines = append(lines, cartLineDTO{Product: item.Product.Name(), Quantity: item.Quantity})
	}
	respondJSON(w, http.StatusOK, lines)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Product == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.Get(req.Product)
	if err != nil {
		respondError(w, http.StatusNotFound, "product_not_found", req.Product)
		return
	}

	if err := s.cart.Add(product, req.Quantity); err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			respondError(w, http.StatusConflict, "insufficient_stock", stockErr.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, cartLineDTO{Product: product.Name(), Quantity: req.Quantity})
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.checkout.Checkout(s.customer, s.cart)
	if err != nil {
		s.metrics.Checkouts.WithLabelValues(checkout.StatusRejected.String()).Inc()
		s.respondCheckoutError(w, err)
		return
	}
	s.metrics.Checkouts.WithLabelValues(checkout.StatusCleared.String()).Inc()
	respondJSON(w, http.StatusOK, receipt)
}

func (s *Server) respondCheckoutError(w http.ResponseWriter, err error) {
	var expiredErr *domain.ExpiredProductError
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.As(err, &expiredErr):
		respondError(w, http.StatusConflict, "expired_product", expiredErr.Error())
	case errors.As(err, &stockErr):
		respondError(w, http.StatusConflict, "insufficient_stock", stockErr.Error())
	case errors.Is(err, checkout.ErrInsufficientBalance):
		respondError(w, http.StatusPaymentRequired, "insufficient_balance", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, code, details string) {
	respondJSON(w, status, errorResponse{Error: http.StatusText(status), Code: code, Details: details})
}
