package catalog

// Remaining returns how many units are left of a limited item, or nil when
// the item is unlimited or has no stock figure recorded. Stock accounting is
// maintained by the purchase procedure; a negative remainder is reported
// as-is rather than clamped, so an inconsistent counter stays visible.
func (inv Inventory) Remaining() *int {
	if !inv.IsLimited || inv.StockQuantity == nil {
		return nil
	}
	remaining := *inv.StockQuantity - inv.SoldQuantity
	return &remaining
}

// IsPurchasable reports whether the buy action is enabled right now, from the
// current data alone. It never reserves stock: two buyers may both see a
// purchasable item and race, and the losing purchase comes back from the
// procedure as an ordinary sold-out rejection.
func (item *Item) IsPurchasable() bool {
	if !item.IsActive {
		return false
	}
	remaining := item.Inventory.Remaining()
	if item.Inventory.IsLimited && remaining != nil && *remaining <= 0 {
		return false
	}
	return true
}

// ButtonState is the rendering state of a shop tile's buy control.
type ButtonState string

const (
	// StateBuy shows the price and accepts a purchase.
	StateBuy ButtonState = "buy"
	// StateBuying disables the control while a purchase call is in flight.
	StateBuying ButtonState = "buying"
	// StateSoldOut disables the control for exhausted limited stock.
	StateSoldOut ButtonState = "sold_out"
	// StateInactive hides the tile entirely.
	StateInactive ButtonState = "inactive"
)

// PurchaseButtonState resolves the buy control's state for an item,
// re-evaluated on every render rather than cached.
func PurchaseButtonState(item *Item, inFlight bool) ButtonState {
	if !item.IsActive {
		return StateInactive
	}
	if !item.IsPurchasable() {
		return StateSoldOut
	}
	if inFlight {
		return StateBuying
	}
	return StateBuy
}
