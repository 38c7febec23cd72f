package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Expiry and weight are two independent optional
// capabilities: a product with no expiry never expires, a product with no
// weight never ships. Callers query behavior through IsExpired and Shippable
// and never need to know which variant they hold.
type Product struct {
	name     string
	price    decimal.Decimal
	quantity int
	expiry   *time.Time
	weight   *float64
}

// Shippable is the shipping view of a product: what a shipment line needs.
type Shippable struct {
	Name   string
	Weight float64 // kg per unit
}

// NewProduct creates a product with neither capability.
func NewProduct(name string, price decimal.Decimal, quantity int) *Product {
	return &Product{name: name, price: price, quantity: quantity}
}

// NewExpirableProduct creates a product that expires at the given time.
func NewExpirableProduct(name string, price decimal.Decimal, quantity int, expiry time.Time) *Product {
	return &Product{name: name, price: price, quantity: quantity, expiry: &expiry}
}

// NewShippableProduct creates a product with a per-unit weight in kg.
func NewShippableProduct(name string, price decimal.Decimal, quantity int, weight float64) *Product {
	return &Product{name: name, price: price, quantity: quantity, weight: &weight}
}

// NewExpirableShippableProduct creates a product carrying both capabilities.
func NewExpirableShippableProduct(name string, price decimal.Decimal, quantity int, expiry time.Time, weight float64) *Product {
	return &Product{name: name, price: price, quantity: quantity, expiry: &expiry, weight: &weight}
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Quantity() int {
	return p.quantity
}

// ReduceQuantity deducts purchased stock. Trusted operation: callers must
// have validated amount against the current quantity.
func (p *Product) ReduceQuantity(amount int) {
	p.quantity -= amount
}

// IsExpired reports whether the product's expiry, if any, has passed.
func (p *Product) IsExpired() bool {
	return p.expiry != nil && time.Now().After(*p.expiry)
}

// Expiry returns the expiry timestamp; ok is false for products that never
// expire.
func (p *Product) Expiry() (time.Time, bool) {
	if p.expiry == nil {
		return time.Time{}, false
	}
	return *p.expiry, true
}

// ShippingDetails returns the shipping view of the product; ok is false for
// products that never ship.
func (p *Product) ShippingDetails() (Shippable, bool) {
	if p.weight == nil {
		return Shippable{}, false
	}
	return Shippable{Name: p.name, Weight: *p.weight}, true
}
