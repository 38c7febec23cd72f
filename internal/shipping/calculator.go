package shipping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

// RatePerKG is the flat shipping cost per kilogram of shipped weight. There
// is no distance or zone model.
var RatePerKG = decimal.NewFromInt(10)

// Item is one shippable cart line prepared for shipment.
type Item struct {
	Description string  // "<qty>x <name>    <grams>g"
	Weight      float64 // line weight, kg
}

// Notice is the pre-receipt shipment message: every shippable line plus the
// aggregate package weight.
type Notice struct {
	Items       []Item
	TotalWeight float64
}

// Line computes the shipment item and shipping cost for quantity units of a
// shippable product. Grams in the description truncate toward zero.
func Line(details domain.Shippable, quantity int) (Item, decimal.Decimal) {
	weight := details.Weight * float64(quantity)
	item := Item{
		Description: fmt.Sprintf("%dx %s    %dg", quantity, details.Name, int(weight*1000)),
		Weight:      weight,
	}
	cost := decimal.NewFromFloat(weight).Mul(RatePerKG)
	return item, cost
}

// BuildNotice aggregates shipment items into the notice sent to the sink.
func BuildNotice(items []Item) Notice {
	notice := Notice{Items: items}
	for _, item := range items {
		notice.TotalWeight += item.Weight
	}
	return notice
}
