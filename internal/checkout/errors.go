package checkout

import "errors"

var (
	ErrEmptyCart           = errors.New("cart is empty, nothing to checkout")
	ErrInsufficientBalance = errors.New("customer balance is insufficient")
	ErrIllegalTransition   = errors.New("illegal transition of checkout status")
)
