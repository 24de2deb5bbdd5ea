package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps a field name to the message shown next to it in the
// admin form. A nil map means the item is valid.
type ValidationErrors map[string]string

// Error implements the error interface, joining field messages in a stable
// order for logs.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(v))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "catalog: invalid item: " + strings.Join(parts, "; ")
}

// Validate checks an item before it is written. It returns nil when the item
// is valid; otherwise every failing field is reported so the form can show
// inline messages in one pass. No write may proceed on a non-nil result.
func (item *Item) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(item.Name) == "" {
		errs["name"] = "name is required"
	}
	if !item.ItemType.Valid() {
		errs["itemType"] = fmt.Sprintf("unknown item type %q", item.ItemType)
	} else if item.ItemType.requiresDescription() && strings.TrimSpace(item.Description) == "" {
		errs["description"] = "description is required"
	}
	if !item.Rarity.Valid() {
		errs["rarity"] = fmt.Sprintf("unknown rarity %q", item.Rarity)
	}

	validatePricing(item, errs)
	validateInventory(item, errs)
	validateEligibility(item, errs)
	validateContents(item, errs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validatePricing(item *Item, errs ValidationErrors) {
	if item.Pricing.PriceCoins < 0 {
		errs["priceCoins"] = "price must not be negative"
	}
	if item.Pricing.PriceGems < 0 {
		errs["priceGems"] = "price must not be negative"
	}
	if item.Pricing.PriceDollars < 0 {
		errs["priceDollars"] = "price must not be negative"
	}
	if !item.Pricing.CurrencyType.Valid() {
		errs["currencyType"] = fmt.Sprintf("unknown currency type %q", item.Pricing.CurrencyType)
	}
	if item.DiscountPercentage < 0 || item.DiscountPercentage > 100 {
		errs["discountPercentage"] = "discount must be between 0 and 100"
	}
	if item.RealDiscountPercentage < 0 || item.RealDiscountPercentage > 100 {
		errs["realDiscountPercentage"] = "discount must be between 0 and 100"
	}
}

func validateInventory(item *Item, errs ValidationErrors) {
	if item.Inventory.StockQuantity != nil && *item.Inventory.StockQuantity < 0 {
		errs["stockQuantity"] = "stock must not be negative"
	}
	if item.Inventory.SoldQuantity < 0 {
		errs["soldQuantity"] = "sold count must not be negative"
	}
}

func validateEligibility(item *Item, errs ValidationErrors) {
	if item.Eligibility.MaxPurchasesPerUser != nil && *item.Eligibility.MaxPurchasesPerUser < 1 {
		errs["maxPurchasesPerUser"] = "purchase cap must be positive"
	}
	if item.Eligibility.PurchaseTimeLimitHours != nil && *item.Eligibility.PurchaseTimeLimitHours < 1 {
		errs["purchaseTimeLimitHours"] = "time limit must be positive"
	}
}

// validateContents checks the payload against its own kind and against the
// item type carrying it. The switch is exhaustive over the union: adding a
// contents kind without a case here falls through to the unknown-kind error.
func validateContents(item *Item, errs ValidationErrors) {
	if item.Contents == nil {
		errs["contents"] = "contents are required"
		return
	}

	switch c := item.Contents.(type) {
	case FixedCards:
		if len(c.CardIDs) == 0 {
			errs["contents"] = "at least one card is required"
		}
		if c.CardsPerPack != nil && *c.CardsPerPack < 1 {
			errs["cardsPerPack"] = "cards per pack must be positive"
		}
	case RandomCards:
		if len(c.PoolCardIDs) == 0 {
			errs["contents"] = "the card pool must not be empty"
		}
		if c.CardsPerPack < 1 {
			errs["cardsPerPack"] = "cards per pack must be positive"
		}
	case RarityQuota:
		total := 0
		for rarity, count := range c.Quota {
			if !rarity.Valid() {
				errs["contents"] = fmt.Sprintf("unknown rarity %q in quota", rarity)
				return
			}
			if count < 0 {
				errs["contents"] = "quota counts must not be negative"
				return
			}
			total += count
		}
		if total == 0 {
			errs["contents"] = "the rarity quota must grant at least one card"
		}
	case CurrencyGrant:
		if c.Coins < 0 || c.Gems < 0 {
			errs["contents"] = "currency amounts must not be negative"
		} else if c.Coins == 0 && c.Gems == 0 {
			errs["contents"] = "the grant must include coins or gems"
		}
	case CosmeticGrant:
		if len(c.CustomizationIDs) == 0 {
			errs["contents"] = "at least one customization is required"
		}
	default:
		errs["contents"] = fmt.Sprintf("unknown contents kind %q", item.Contents.Kind())
		return
	}

	if !contentsAllowed(item.ItemType, item.Contents.Kind()) {
		errs["contents"] = fmt.Sprintf("%s items cannot carry %s contents", item.ItemType, item.Contents.Kind())
	}
}

// contentsAllowed pins which payload kinds each item type may carry. Singles,
// starters and premium sets are explicit card lists; packs and boosters may
// also draw randomly or by rarity quota; bundles may mix in currency and
// cosmetic grants.
func contentsAllowed(t ItemType, kind ContentsKind) bool {
	switch t {
	case TypeSingle, TypeStarter, TypePremium:
		return kind == KindFixedCards
	case TypePack, TypeBooster:
		return kind == KindFixedCards || kind == KindRandomCards || kind == KindRarityQuota
	case TypeBundle:
		return kind == KindFixedCards || kind == KindCurrencyGrant || kind == KindCosmeticGrant
	}
	return false
}
