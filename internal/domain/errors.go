package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity is returned when a cart add requests a non-positive
// quantity.
var ErrInvalidQuantity = errors.New("quantity must be a positive amount")

// InsufficientStockError is returned when a requested quantity exceeds the
// product's available stock, at cart-add time or at checkout re-validation.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

// ExpiredProductError is returned when a cart line's product has passed its
// expiry at checkout time.
type ExpiredProductError struct {
	Name string
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("%s is expired", e.Name)
}
