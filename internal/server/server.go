package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/catalog"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

// Server exposes one POS terminal session over HTTP: a catalog, one customer
// and one cart. Concurrent checkout sessions are out of scope, but the router
// still serves requests on concurrent goroutines, so every handler touching
// the session takes the terminal mutex. The cart, customer and product
// entities themselves stay unguarded; exclusive access lives here at the
// session boundary.
type Server struct {
	catalog  *catalog.Store
	customer *domain.Customer
	cart     *domain.Cart
	checkout *checkout.Service
	metrics  *Metrics
	registry *prometheus.Registry

	mu sync.Mutex // serializes the single terminal session
}

func New(store *catalog.Store, customer *domain.Customer, svc *checkout.Service) *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		catalog:  store,
		customer: customer,
		cart:     domain.NewCart(),
		checkout: svc,
		metrics:  NewMetrics(registry),
		registry: registry,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", MetricsHandler(s.registry))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", s.instrumented("list_products", s.handleListProducts))
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.instrumented("get_cart", s.handleGetCart))
			r.Post("/items", s.instrumented("add_item", s.handleAddItem))
		})
		r.Post("/checkout", s.instrumented("checkout", s.handleCheckout))
	})

	return r
}

func (s *Server) instrumented(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.metrics.LatencyMS.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
	}
}
