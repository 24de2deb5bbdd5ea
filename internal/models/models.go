// Package models defines the request and response payloads of the admin API
// together with the secondary dashboard records (admins, announcements,
// customizations, report rows) that do not belong to the catalog core.
package models

import (
	"time"

	"famand_admin/internal/catalog"

	"github.com/google/uuid"
)

// AuthRequest is the login payload for a dashboard operator.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the token issued on successful login.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the generic error payload returned by every handler.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// ValidationErrorResponse carries field-level messages for a blocked submit,
// so the form can show each message inline without losing operator input.
type ValidationErrorResponse struct {
	Errors string            `json:"errors"`
	Fields map[string]string `json:"fields"`
}

// Admin is a dashboard operator account.
type Admin struct {
	ID       int32
	Username string
	Password string
}

// ItemListResponse returns one page of catalog items with the total count the
// pagination controls need.
type ItemListResponse struct {
	Items []catalog.Item `json:"items"`
	Total int            `json:"total"`
}

// DeleteItemResponse reports the outcome of a delete request. When the item
// is referenced by purchase history the delete does not proceed; the response
// instead asks the operator to pick one of the listed options and resubmit.
type DeleteItemResponse struct {
	Deleted              bool     `json:"deleted"`
	Deactivated          bool     `json:"deactivated"`
	RequiresConfirmation bool     `json:"requiresConfirmation"`
	PurchaseCount        int      `json:"purchaseCount,omitempty"`
	Options              []string `json:"options,omitempty"`
}

// OpenPackResponse lists the cards awarded by a pack opening.
type OpenPackResponse struct {
	Cards []catalog.Card `json:"cards"`
}

// Announcement is a dashboard-managed notice shown in the game client,
// optionally constrained to a display window.
type Announcement struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	IsActive  bool       `json:"isActive"`
	StartsAt  *time.Time `json:"startsAt,omitempty"`
	EndsAt    *time.Time `json:"endsAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Customization is a cosmetic unlockable (card back, board skin, avatar
// frame) sold or granted through bundles.
type Customization struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Slot       string         `json:"slot"`
	Rarity     catalog.Rarity `json:"rarity"`
	ImageURL   string         `json:"imageUrl"`
	PriceCoins int            `json:"priceCoins"`
	PriceGems  int            `json:"priceGems"`
	IsActive   bool           `json:"isActive"`
}

// SalesReportRow aggregates the purchases of one catalog item for the
// monetization report.
type SalesReportRow struct {
	ItemID   uuid.UUID `json:"itemId"`
	ItemName string    `json:"itemName"`
	Units    int       `json:"units"`
	Coins    int       `json:"coins"`
	Gems     int       `json:"gems"`
	Dollars  float64   `json:"dollars"`
}

// UploadResponse returns the public URLs of a stored image and its thumbnail.
type UploadResponse struct {
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl"`
}

// Preference is one per-operator dashboard setting, read on screen mount and
// written back on change.
type Preference struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
