package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/shipping"
	"github.com/IbrahimKhaled19/Fawry-Challenge/pkg/logging"
)

// Sink receives everything a checkout reports: the shipment notice (when any
// line ships), the receipt, and the settled balance, in that order.
// Formatting and destination are the sink's concern.
type Sink interface {
	ShipmentNotice(notice shipping.Notice)
	Receipt(receipt Receipt)
	Balance(balance decimal.Decimal)
}

// Service runs the one-shot checkout pipeline against a customer and a cart.
type Service struct {
	sink Sink
}

func NewService(sink Sink) *Service {
	return &Service{sink: sink}
}

// Checkout validates every cart line, prices the order, verifies solvency,
// emits the shipment notice and receipt, mutates inventory, settles payment
// and clears the cart. Any failure before settling aborts with no observable
// mutation; the cart is left as-is on failure.
func (s *Service) Checkout(customer *domain.Customer, cart *domain.Cart) (*Receipt, error) {
	status := StatusValidating

	if cart.IsEmpty() {
		return nil, s.reject(&status, "validate", ErrEmptyCart)
	}

	subtotal := decimal.Zero
	shippingCost := decimal.Zero
	var shipmentItems []shipping.Item

	// Running per-product tally: several lines referencing one product must
	// not each pass against the full stock when their sum exceeds it.
	requested := make(map[*domain.Product]int)

	for _, item := range cart.Items() {
		product := item.Product

		if product.IsExpired() {
			return nil, s.reject(&status, "validate", &domain.ExpiredProductError{Name: product.Name()})
		}

		requested[product] += item.Quantity
		if requested[product] > product.Quantity() {
			return nil, s.reject(&status, "validate", &domain.InsufficientStockError{
				Name:      product.Name(),
				Requested: requested[product],
				Available: product.Quantity(),
			})
		}

		subtotal = subtotal.Add(product.Price().Mul(decimal.NewFromInt(int64(item.Quantity))))

		if details, ok := product.ShippingDetails(); ok {
			line, cost := shipping.Line(details, item.Quantity)
			shipmentItems = append(shipmentItems, line)
			shippingCost = shippingCost.Add(cost)
		}
	}

	if err := advance(&status, StatusPricing); err != nil {
		return nil, err
	}
	total := subtotal.Add(shippingCost)

	if err := advance(&status, StatusSolvencyCheck); err != nil {
		return nil, err
	}
	if customer.Balance().LessThan(total) {
		return nil, s.reject(&status, "solvency", ErrInsufficientBalance)
	}

	if err := advance(&status, StatusShippingNotice); err != nil {
		return nil, err
	}
	if len(shipmentItems) > 0 {
		s.sink.ShipmentNotice(shipping.BuildNotice(shipmentItems))
	}

	receipt := &Receipt{
		OrderID:  uuid.New(),
		Subtotal: subtotal,
		Shipping: shippingCost,
		Total:    total,
	}
	for _, item := range cart.Items() {
		receipt.Lines = append(receipt.Lines, ReceiptLine{
			Quantity:  item.Quantity,
			Name:      item.Product.Name(),
			LineTotal: item.Product.Price().Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	s.sink.Receipt(*receipt)

	if err := advance(&status, StatusSettling); err != nil {
		return nil, err
	}
	for _, item := range cart.Items() {
		item.Product.ReduceQuantity(item.Quantity)
	}
	customer.Pay(total)
	s.sink.Balance(customer.Balance())
	cart.Clear()

	if err := advance(&status, StatusCleared); err != nil {
		return nil, err
	}
	logging.Log(logging.Fields{
		Service: "checkout",
		OrderID: receipt.OrderID.String(),
		Step:    "settle",
		Status:  StatusCleared.String(),
	})
	return receipt, nil
}

// advance moves the pipeline forward, guarding against out-of-order steps.
func advance(current *Status, next Status) error {
	if !CanTransitionTo(*current, next) {
		return ErrIllegalTransition
	}
	*current = next
	return nil
}

func (s *Service) reject(current *Status, step string, cause error) error {
	*current = StatusRejected
	logging.Log(logging.Fields{
		Service: "checkout",
		Step:    step,
		Status:  StatusRejected.String(),
		Message: cause.Error(),
	})
	return cause
}
