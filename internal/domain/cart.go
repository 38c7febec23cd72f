package domain

// CartItem is one (product, quantity) line. Lines referencing the same
// product are kept separate; checkout validates their cumulative quantity.
type CartItem struct {
	Product  *Product
	Quantity int
}

// Cart accumulates lines in insertion order. Adding checks stock at that
// point in time only; nothing is reserved until checkout settles.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line after checking that the requested quantity is positive
// and within the product's current stock. Stock may still change before
// checkout, which re-validates every line.
func (c *Cart) Add(product *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > product.Quantity() {
		return &InsufficientStockError{
			Name:      product.Name(),
			Requested: quantity,
			Available: product.Quantity(),
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: quantity})
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns the cart lines in insertion order. The slice is the cart's
// backing storage; callers must not modify it.
func (c *Cart) Items() []CartItem {
	return c.items
}
