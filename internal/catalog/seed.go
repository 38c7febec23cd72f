package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

// SeedDemo builds the stock demo catalog and customer: two expirable
// shippable groceries, a heavy shippable TV, a plain scratch card, and a
// customer with a balance of 1000.
func SeedDemo() (*Store, *domain.Customer) {
	tomorrow := time.Now().Add(24 * time.Hour)

	store := NewStore()
	store.Add(domain.NewExpirableShippableProduct("Cheese", decimal.NewFromInt(100), 10, tomorrow, 0.2))
	store.Add(domain.NewExpirableShippableProduct("Biscuits", decimal.NewFromInt(150), 5, tomorrow, 0.7))
	store.Add(domain.NewShippableProduct("TV", decimal.NewFromInt(5000), 3, 10.0))
	store.Add(domain.NewProduct("Scratch Card", decimal.NewFromInt(50), 100))

	customer := domain.NewCustomer("Ibrahim", decimal.NewFromInt(1000))
	return store, customer
}
