package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentsRoundTrip(t *testing.T) {
	cardA, cardB := uuid.New(), uuid.New()
	perPack := 3

	testCases := []struct {
		name     string
		contents Contents
	}{
		{name: "fixed cards with repeats", contents: FixedCards{CardIDs: []uuid.UUID{cardA, cardA, cardB}}},
		{name: "fixed cards capped", contents: FixedCards{CardIDs: []uuid.UUID{cardA}, CardsPerPack: &perPack}},
		{name: "random cards", contents: RandomCards{PoolCardIDs: []uuid.UUID{cardA, cardB}, CardsPerPack: 5}},
		{name: "rarity quota", contents: RarityQuota{Quota: map[Rarity]int{RarityCommon: 4, RarityRare: 1}}},
		{name: "currency grant", contents: CurrencyGrant{Coins: 500, Gems: 10}},
		{name: "cosmetic grant", contents: CosmeticGrant{CustomizationIDs: []uuid.UUID{cardA}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := EncodeContents(tc.contents)
			require.NoError(t, err)

			decoded, err := DecodeContents(raw)
			require.NoError(t, err)

			assert.Equal(t, tc.contents, decoded)
			assert.Equal(t, tc.contents.Kind(), decoded.Kind())
		})
	}
}

func TestEncodeContentsIncludesKindTag(t *testing.T) {
	raw, err := EncodeContents(CurrencyGrant{Coins: 100})
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.JSONEq(t, `"currency_grant"`, string(fields["kind"]))
}

func TestDecodeContentsUnknownKind(t *testing.T) {
	_, err := DecodeContents([]byte(`{"kind":"mystery_box"}`))
	assert.ErrorIs(t, err, ErrUnknownContentsKind)

	_, err = DecodeContents([]byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownContentsKind)
}

func TestEncodeContentsNil(t *testing.T) {
	_, err := EncodeContents(nil)
	assert.Error(t, err)
}

func TestItemJSONRoundTrip(t *testing.T) {
	cardA, cardB := uuid.New(), uuid.New()
	item := Item{
		ID:          uuid.New(),
		Name:        "Starter Bundle",
		Description: "Everything a new player needs",
		ItemType:    TypeBundle,
		Rarity:      RarityRare,
		Pricing: Pricing{
			PriceCoins:   1200,
			CurrencyType: CurrencyCoins,
		},
		DiscountPercentage:     20,
		RealDiscountPercentage: 10,
		Contents:               FixedCards{CardIDs: []uuid.UUID{cardA, cardA, cardB}},
		IsActive:               true,
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kind":"fixed_cards"`)

	var decoded Item
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, item.Name, decoded.Name)
	assert.Equal(t, item.ItemType, decoded.ItemType)
	assert.Equal(t, item.DiscountPercentage, decoded.DiscountPercentage)
	assert.Equal(t, item.Contents, decoded.Contents)
}

func TestItemJSONBadContents(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"name":"x","contents":{"kind":"nope"}}`), &item)
	assert.ErrorIs(t, err, ErrUnknownContentsKind)
}
