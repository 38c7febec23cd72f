package display

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/shipping"
)

// Console writes human-readable notices and receipts to a writer.
// Implements checkout.Sink.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) ShipmentNotice(notice shipping.Notice) {
	fmt.Fprintln(c.w, "** Shipment notice **")
	for _, item := range notice.Items {
		fmt.Fprintln(c.w, item.Description)
	}
	fmt.Fprintf(c.w, "Total package weight %.1fkg\n\n", notice.TotalWeight)
}

func (c *Console) Receipt(receipt checkout.Receipt) {
	fmt.Fprintln(c.w, "** Checkout receipt **")
	for _, line := range receipt.Lines {
		fmt.Fprintf(c.w, "%dx %s    %s\n", line.Quantity, line.Name, line.LineTotal)
	}
	fmt.Fprintln(c.w, "----------------------")
	fmt.Fprintf(c.w, "Subtotal         %s\n", receipt.Subtotal.StringFixed(2))
	fmt.Fprintf(c.w, "Shipping         %s\n", receipt.Shipping.StringFixed(2))
	fmt.Fprintf(c.w, "Amount           %s\n\n", receipt.Total.StringFixed(2))
}

func (c *Console) Balance(balance decimal.Decimal) {
	fmt.Fprintf(c.w, "Customer Balance: %s\n", balance.StringFixed(2))
}
