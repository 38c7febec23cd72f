package display

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/shipping"
)

func TestConsole_ShipmentNotice(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.ShipmentNotice(shipping.Notice{
		Items: []shipping.Item{
			{Description: "1x Cheese    200g", Weight: 0.2},
			{Description: "1x Biscuits    700g", Weight: 0.7},
		},
		TotalWeight: 0.9,
	})

	want := "** Shipment notice **\n" +
		"1x Cheese    200g\n" +
		"1x Biscuits    700g\n" +
		"Total package weight 0.9kg\n\n"
	assert.Equal(t, want, buf.String())
}

func TestConsole_Receipt(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Receipt(checkout.Receipt{
		OrderID: uuid.New(),
		Lines: []checkout.ReceiptLine{
			{Quantity: 1, Name: "Cheese", LineTotal: decimal.NewFromInt(100)},
			{Quantity: 2, Name: "Scratch Card", LineTotal: decimal.NewFromInt(100)},
		},
		Subtotal: decimal.NewFromInt(200),
		Shipping: decimal.NewFromInt(2),
		Total:    decimal.NewFromInt(202),
	})

	want := "** Checkout receipt **\n" +
		"1x Cheese    100\n" +
		"2x Scratch Card    100\n" +
		"----------------------\n" +
		"Subtotal         200.00\n" +
		"Shipping         2.00\n" +
		"Amount           202.00\n\n"
	assert.Equal(t, want, buf.String())
}

func TestConsole_Balance(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Balance(decimal.NewFromInt(691))

	assert.Equal(t, "Customer Balance: 691.00\n", buf.String())
}
