package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func limitedItem(stock, sold int) *Item {
	return &Item{
		IsActive: true,
		Inventory: Inventory{
			IsLimited:     true,
			StockQuantity: intPtr(stock),
			SoldQuantity:  sold,
		},
	}
}

func TestRemaining(t *testing.T) {
	remaining := limitedItem(5, 3).Inventory.Remaining()
	require.NotNil(t, remaining)
	assert.Equal(t, 2, *remaining)

	unlimited := Inventory{IsLimited: false, SoldQuantity: 9000}
	assert.Nil(t, unlimited.Remaining())

	noFigure := Inventory{IsLimited: true}
	assert.Nil(t, noFigure.Remaining())
}

func TestIsPurchasableBoundaries(t *testing.T) {
	soldOut := limitedItem(5, 5)
	assert.False(t, soldOut.IsPurchasable())

	lastUnit := limitedItem(5, 4)
	assert.True(t, lastUnit.IsPurchasable())
	assert.Equal(t, 1, *lastUnit.Inventory.Remaining())

	oversold := limitedItem(5, 7)
	assert.False(t, oversold.IsPurchasable())

	unlimited := &Item{IsActive: true, Inventory: Inventory{SoldQuantity: 123456}}
	assert.True(t, unlimited.IsPurchasable())

	inactive := limitedItem(5, 0)
	inactive.IsActive = false
	assert.False(t, inactive.IsPurchasable())
}

func TestPurchaseButtonState(t *testing.T) {
	testCases := []struct {
		name     string
		item     *Item
		inFlight bool
		want     ButtonState
	}{
		{name: "purchasable", item: limitedItem(5, 0), want: StateBuy},
		{name: "purchase in flight", item: limitedItem(5, 0), inFlight: true, want: StateBuying},
		{name: "sold out", item: limitedItem(5, 5), want: StateSoldOut},
		{name: "sold out beats in flight", item: limitedItem(5, 5), inFlight: true, want: StateSoldOut},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PurchaseButtonState(tc.item, tc.inFlight))
		})
	}

	inactive := limitedItem(5, 0)
	inactive.IsActive = false
	assert.Equal(t, StateInactive, PurchaseButtonState(inactive, false))
}
