package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPack builds an item that passes validation, to be broken per test.
func validPack() *Item {
	return &Item{
		ID:          uuid.New(),
		Name:        "Daily Booster",
		Description: "Five random cards",
		ItemType:    TypePack,
		Rarity:      RarityBooster,
		Pricing: Pricing{
			PriceCoins:   300,
			PriceGems:    15,
			CurrencyType: CurrencyBoth,
		},
		Contents: RandomCards{PoolCardIDs: []uuid.UUID{uuid.New()}, CardsPerPack: 5},
		IsActive: true,
	}
}

func TestValidateAcceptsValidItem(t *testing.T) {
	assert.Nil(t, validPack().Validate())
}

func TestValidateFieldRules(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(item *Item)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(item *Item) { item.Name = "  " },
			wantField: "name",
		},
		{
			name:      "missing description on pack",
			mutate:    func(item *Item) { item.Description = "" },
			wantField: "description",
		},
		{
			name:      "unknown item type",
			mutate:    func(item *Item) { item.ItemType = "mystery" },
			wantField: "itemType",
		},
		{
			name:      "unknown rarity",
			mutate:    func(item *Item) { item.Rarity = "mythic" },
			wantField: "rarity",
		},
		{
			name:      "negative coin price",
			mutate:    func(item *Item) { item.Pricing.PriceCoins = -1 },
			wantField: "priceCoins",
		},
		{
			name:      "negative gem price",
			mutate:    func(item *Item) { item.Pricing.PriceGems = -10 },
			wantField: "priceGems",
		},
		{
			name:      "negative dollar price",
			mutate:    func(item *Item) { item.Pricing.PriceDollars = -0.5 },
			wantField: "priceDollars",
		},
		{
			name:      "unknown currency type",
			mutate:    func(item *Item) { item.Pricing.CurrencyType = "shells" },
			wantField: "currencyType",
		},
		{
			name:      "discount above range",
			mutate:    func(item *Item) { item.DiscountPercentage = 101 },
			wantField: "discountPercentage",
		},
		{
			name:      "real discount below range",
			mutate:    func(item *Item) { item.RealDiscountPercentage = -1 },
			wantField: "realDiscountPercentage",
		},
		{
			name:      "negative stock",
			mutate:    func(item *Item) { item.Inventory.StockQuantity = intPtr(-3) },
			wantField: "stockQuantity",
		},
		{
			name:      "zero purchase cap",
			mutate:    func(item *Item) { item.Eligibility.MaxPurchasesPerUser = intPtr(0) },
			wantField: "maxPurchasesPerUser",
		},
		{
			name:      "missing contents",
			mutate:    func(item *Item) { item.Contents = nil },
			wantField: "contents",
		},
		{
			name:      "empty random pool",
			mutate:    func(item *Item) { item.Contents = RandomCards{CardsPerPack: 5} },
			wantField: "contents",
		},
		{
			name:      "zero cards per pack",
			mutate:    func(item *Item) { item.Contents = RandomCards{PoolCardIDs: []uuid.UUID{uuid.New()}} },
			wantField: "cardsPerPack",
		},
		{
			name:      "empty rarity quota",
			mutate:    func(item *Item) { item.Contents = RarityQuota{Quota: map[Rarity]int{RarityRare: 0}} },
			wantField: "contents",
		},
		{
			name:      "negative quota count",
			mutate:    func(item *Item) { item.Contents = RarityQuota{Quota: map[Rarity]int{RarityRare: -2}} },
			wantField: "contents",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := validPack()
			tc.mutate(item)

			errs := item.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tc.wantField)
		})
	}
}

func TestValidateReportsAllFailingFields(t *testing.T) {
	item := validPack()
	item.Name = ""
	item.Pricing.PriceCoins = -5
	item.DiscountPercentage = 200

	errs := item.Validate()
	require.NotNil(t, errs)
	assert.Len(t, errs, 3)
}

func TestValidateContentsKindPerItemType(t *testing.T) {
	single := validPack()
	single.ItemType = TypeSingle
	single.Contents = CurrencyGrant{Coins: 100}

	errs := single.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "contents")

	bundle := validPack()
	bundle.ItemType = TypeBundle
	bundle.Contents = CurrencyGrant{Coins: 100}
	assert.Nil(t, bundle.Validate())

	booster := validPack()
	booster.ItemType = TypeBooster
	booster.Contents = RarityQuota{Quota: map[Rarity]int{RarityRare: 1, RarityCommon: 4}}
	assert.Nil(t, booster.Validate())
}

func TestValidateEmptyCurrencyGrant(t *testing.T) {
	bundle := validPack()
	bundle.ItemType = TypeBundle
	bundle.Contents = CurrencyGrant{}

	errs := bundle.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "contents")
}

func TestValidationErrorsMessage(t *testing.T) {
	item := validPack()
	item.Name = ""

	err := item.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}
