// Package catalog defines the canonical shape of everything sold in the
// Famand shop: single cards, bundles, starter and premium sets, and booster
// packs. It owns the validation rules applied before any write reaches the
// database, the pricing/discount display math, and the purchasability gate.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ItemType selects which contents payload and validation rules apply to an item.
type ItemType string

const (
	TypeSingle  ItemType = "single"
	TypeBundle  ItemType = "bundle"
	TypeStarter ItemType = "starter"
	TypePremium ItemType = "premium"
	TypePack    ItemType = "pack"
	TypeBooster ItemType = "booster"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case TypeSingle, TypeBundle, TypeStarter, TypePremium, TypePack, TypeBooster:
		return true
	}
	return false
}

// requiresDescription reports whether the shop listing for this type shows a
// description block, making the field mandatory on save.
func (t ItemType) requiresDescription() bool {
	return t != TypeSingle
}

// Rarity is the display tier of a card or item. It orders visual presentation
// only; no gameplay logic depends on it.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityUltra     Rarity = "ultra"
	RaritySecret    Rarity = "secret"
	RarityLegendary Rarity = "legendary"
	RarityCrisis    Rarity = "crisis"
	RarityBooster   Rarity = "booster"
)

// rarityRank fixes the display ordering of the rarity tiers.
var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityUltra:     3,
	RaritySecret:    4,
	RarityLegendary: 5,
	RarityCrisis:    6,
	RarityBooster:   7,
}

// Valid reports whether r is one of the known rarity tiers.
func (r Rarity) Valid() bool {
	_, ok := rarityRank[r]
	return ok
}

// Rank returns the position of r in the display ordering, lowest first.
// Unknown rarities sort last.
func (r Rarity) Rank() int {
	if rank, ok := rarityRank[r]; ok {
		return rank
	}
	return len(rarityRank)
}

// CurrencyType identifies which of the item's price fields are offered at
// checkout.
type CurrencyType string

const (
	CurrencyCoins   CurrencyType = "coins"
	CurrencyGems    CurrencyType = "gems"
	CurrencyBoth    CurrencyType = "both"
	CurrencyDollars CurrencyType = "dollars"
)

// Valid reports whether c is one of the known currency modes.
func (c CurrencyType) Valid() bool {
	switch c {
	case CurrencyCoins, CurrencyGems, CurrencyBoth, CurrencyDollars:
		return true
	}
	return false
}

// Pricing holds the stored (post-discount) prices of an item in each currency.
type Pricing struct {
	PriceCoins   int          `json:"priceCoins"`
	PriceGems    int          `json:"priceGems"`
	PriceDollars float64      `json:"priceDollars"`
	CurrencyType CurrencyType `json:"currencyType"`
}

// Inventory tracks limited-stock accounting. StockQuantity is meaningful only
// while IsLimited is set; SoldQuantity is incremented by the purchase
// procedure, never by this service.
type Inventory struct {
	IsLimited     bool `json:"isLimited"`
	StockQuantity *int `json:"stockQuantity,omitempty"`
	SoldQuantity  int  `json:"soldQuantity"`
}

// Eligibility carries the optional per-user purchase throttle used by
// unlimited pack variants.
type Eligibility struct {
	MaxPurchasesPerUser    *int `json:"maxPurchasesPerUser,omitempty"`
	PurchaseTimeLimitHours *int `json:"purchaseTimeLimitHours,omitempty"`
}

// Item is a purchasable catalog entry. The stored prices are always the
// amounts charged at checkout; DiscountPercentage is a marketing figure used
// to back-compute the crossed-out "was" price, while RealDiscountPercentage
// is what the purchase procedure actually deducts. The two fields are
// independent and are never reconciled here.
type Item struct {
	ID                     uuid.UUID   `json:"id"`
	Name                   string      `json:"name"`
	Description            string      `json:"description"`
	ItemType               ItemType    `json:"itemType"`
	Rarity                 Rarity      `json:"rarity"`
	Pricing                Pricing     `json:"pricing"`
	DiscountPercentage     int         `json:"discountPercentage"`
	RealDiscountPercentage int         `json:"realDiscountPercentage"`
	Inventory              Inventory   `json:"inventory"`
	Eligibility            Eligibility `json:"eligibility"`
	Contents               Contents    `json:"-"`
	IsActive               bool        `json:"isActive"`
	IsSpecial              bool        `json:"isSpecial"`
	IsDailyRotation        bool        `json:"isDailyRotation"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
}

// Card is a reference row from the card table, used as a lookup when
// composing item contents. Cards are managed by their own editing flow.
type Card struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Type   string    `json:"type"`
	Rarity Rarity    `json:"rarity"`
	ArtURL string    `json:"artUrl"`
}
