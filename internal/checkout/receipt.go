package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptLine is one purchased cart line as printed on the receipt.
type ReceiptLine struct {
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Receipt is the settled order: lines in cart order plus the totals.
type Receipt struct {
	OrderID  uuid.UUID       `json:"order_id"`
	Lines    []ReceiptLine   `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}
