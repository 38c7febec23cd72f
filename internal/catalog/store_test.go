package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

func TestStore_AddAndGet(t *testing.T) {
	store := NewStore()
	store.Add(domain.NewProduct("Widget", decimal.NewFromInt(10), 5))

	product, err := store.Get("Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Name())

	_, err = store.Get("Missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStore_ListInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Add(domain.NewProduct("B", decimal.NewFromInt(2), 1))
	store.Add(domain.NewProduct("A", decimal.NewFromInt(1), 1))
	store.Add(domain.NewProduct("C", decimal.NewFromInt(3), 1))

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "B", list[0].Name())
	assert.Equal(t, "A", list[1].Name())
	assert.Equal(t, "C", list[2].Name())
}

func TestStore_ReplaceKeepsPosition(t *testing.T) {
	store := NewStore()
	store.Add(domain.NewProduct("A", decimal.NewFromInt(1), 1))
	store.Add(domain.NewProduct("B", decimal.NewFromInt(2), 1))
	store.Add(domain.NewProduct("A", decimal.NewFromInt(9), 7))

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name())
	assert.Equal(t, 7, list[0].Quantity())
}

func TestSeedDemo(t *testing.T) {
	store, customer := SeedDemo()

	assert.True(t, customer.Balance().Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "Ibrahim", customer.Name())

	list := store.List()
	require.Len(t, list, 4)

	cheese, err := store.Get("Cheese")
	require.NoError(t, err)
	details, ok := cheese.ShippingDetails()
	require.True(t, ok)
	assert.Equal(t, 0.2, details.Weight)
	assert.False(t, cheese.IsExpired(), "demo groceries expire tomorrow, not today")

	scratchCard, err := store.Get("Scratch Card")
	require.NoError(t, err)
	_, ok = scratchCard.ShippingDetails()
	assert.False(t, ok)
	assert.Equal(t, 100, scratchCard.Quantity())
}
