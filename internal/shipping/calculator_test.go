package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

func TestLine_SingleUnit(t *testing.T) {
	item, cost := Line(domain.Shippable{Name: "Cheese", Weight: 0.2}, 1)

	assert.Equal(t, "1x Cheese    200g", item.Description)
	assert.Equal(t, 0.2, item.Weight)
	assert.True(t, cost.Equal(decimal.NewFromInt(2)), "cost = 0.2kg x 10, got %s", cost)
}

func TestLine_QuantityScalesWeightAndCost(t *testing.T) {
	item, cost := Line(domain.Shippable{Name: "TV", Weight: 10.0}, 2)

	assert.Equal(t, "2x TV    20000g", item.Description)
	assert.Equal(t, 20.0, item.Weight)
	assert.True(t, cost.Equal(decimal.NewFromInt(200)), "got %s", cost)
}

func TestLine_GramsTruncateTowardZero(t *testing.T) {
	// 249.9g truncates to 249, not 250
	item, _ := Line(domain.Shippable{Name: "Stamp", Weight: 0.2499}, 1)

	assert.Equal(t, "1x Stamp    249g", item.Description)
}

func TestBuildNotice_AggregatesWeight(t *testing.T) {
	items := []Item{
		{Description: "1x Cheese    200g", Weight: 0.2},
		{Description: "1x Biscuits    700g", Weight: 0.7},
	}

	notice := BuildNotice(items)
	assert.Len(t, notice.Items, 2)
	assert.InDelta(t, 0.9, notice.TotalWeight, 1e-9)
}

func TestBuildNotice_Empty(t *testing.T) {
	notice := BuildNotice(nil)
	assert.Empty(t, notice.Items)
	assert.Zero(t, notice.TotalWeight)
}
