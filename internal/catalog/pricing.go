package catalog

import (
	"fmt"
	"strconv"
)

// DisplayPrice is the "was / now" pair rendered on a shop tile. Now is always
// the stored, charged price; Was is back-computed from the advertised
// discount and only meaningful when Discounted is set.
type DisplayPrice struct {
	Now        float64
	Was        float64
	Discounted bool
}

// ResolveDisplayPrice turns the stored price and the advertised discount into
// the displayed pair. The stored price is the post-discount amount, so the
// "original" price is derived: was = now / (1 - pct/100). Editing the
// discount alone therefore moves the implied original price, never the
// charged one. Percentages outside (0,100) produce an undiscounted display.
func ResolveDisplayPrice(currentPrice float64, discountPercentage int) DisplayPrice {
	if discountPercentage <= 0 || discountPercentage >= 100 {
		return DisplayPrice{Now: currentPrice}
	}
	return DisplayPrice{
		Now:        currentPrice,
		Was:        currentPrice / (1 - float64(discountPercentage)/100),
		Discounted: true,
	}
}

// RealDiscount returns the percentage actually deducted by the purchase
// procedure. It is not reconciled with the advertised DiscountPercentage;
// the two fields may diverge.
func (item *Item) RealDiscount() int {
	return item.RealDiscountPercentage
}

// FormatAmount renders an amount for display: dollar prices with two
// decimals, in-game currencies as whole units.
func FormatAmount(currency CurrencyType, amount float64) string {
	if currency == CurrencyDollars {
		return fmt.Sprintf("%.2f", amount)
	}
	return strconv.Itoa(int(amount))
}
