package display

import (
	"github.com/shopspring/decimal"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/shipping"
)

// Multi fans every report out to each sink in order.
type Multi []checkout.Sink

func (m Multi) ShipmentNotice(notice shipping.Notice) {
	for _, sink := range m {
		sink.ShipmentNotice(notice)
	}
}

func (m Multi) Receipt(receipt checkout.Receipt) {
	for _, sink := range m {
		sink.Receipt(receipt)
	}
}

func (m Multi) Balance(balance decimal.Decimal) {
	for _, sink := range m {
		sink.Balance(balance)
	}
}
