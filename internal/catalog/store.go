package catalog

import (
	"errors"
	"sync"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Store is an in-memory product registry keyed by name. The lock guards the
// registry itself; product quantities are mutated by checkout, which runs a
// single session at a time.
type Store struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string // listing order is insertion order
}

func NewStore() *Store {
	return &Store{products: make(map[string]*domain.Product)}
}

// Add registers a product. A product with the same name replaces the
// previous entry but keeps its original listing position.
func (s *Store) Add(product *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.Name()]; !exists {
		s.order = append(s.order, product.Name())
	}
	s.products[product.Name()] = product
}

func (s *Store) Get(name string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[name]
	if !exists {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// List returns all products in insertion order.
func (s *Store) List() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.products[name])
	}
	return result
}
