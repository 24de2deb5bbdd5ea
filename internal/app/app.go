// Package app provides the core business logic of the Famand admin service:
// operator sign-in, catalog item management with the delete/deactivate
// decision flow, card and cosmetics upkeep, pack-opening calls, the
// monetization report, and operator preferences. Every mutation follows
// write-then-refetch: the response is re-read from storage, never patched
// locally.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"famand_admin/internal/catalog"
	"famand_admin/internal/models"
	"famand_admin/internal/pkg/auth"
	"famand_admin/internal/pkg/logger"
	"famand_admin/internal/storage"

	"github.com/google/uuid"
)

// Predefined errors for invalid requests.
var (
	// ErrMissingUsernameOrPassword indicates that either the username or password is not provided.
	ErrMissingUsernameOrPassword = errors.New("app: missing username or password")
	// ErrInvalidDeleteMode indicates an unrecognized delete mode parameter.
	ErrInvalidDeleteMode = errors.New("app: invalid delete mode")
	// ErrMissingPreferenceKey indicates a preference operation without a key.
	ErrMissingPreferenceKey = errors.New("app: missing preference key")
)

// DeleteMode selects how a delete request resolves when the item is
// referenced by purchase history.
type DeleteMode string

const (
	// DeleteModeNone asks for a plain delete; it succeeds only for
	// unreferenced items.
	DeleteModeNone DeleteMode = ""
	// DeleteModeDeactivate hides the item from the shop but keeps it and its
	// purchase history. Reversible.
	DeleteModeDeactivate DeleteMode = "deactivate"
	// DeleteModeForce removes the purchase history rows and then the item.
	// Irreversible and destructive to reporting.
	DeleteModeForce DeleteMode = "force"
)

// deleteOptions is the choice set offered when a delete needs confirmation.
var deleteOptions = []string{string(DeleteModeDeactivate), string(DeleteModeForce), "cancel"}

// App encapsulates the application logic and dependencies required to
// process requests.
type App struct {
	db  storage.Storage
	log *logger.Logger
}

// NewApp creates a new App with the provided storage and logger dependencies.
func NewApp(db storage.Storage, log *logger.Logger) *App {
	return &App{db: db, log: log}
}

// ProcessAuth authenticates an operator, creating the account on first
// sign-in, and returns a signed token.
func (app *App) ProcessAuth(ctx context.Context, req models.AuthRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", ErrMissingUsernameOrPassword
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: req.Password,
	}

	admin, err := app.db.CheckAdmin(ctx, admin)
	if err != nil {
		return "", err
	}

	if admin.ID == 0 {
		admin, err = app.db.CreateAdmin(ctx, admin)
		if err != nil {
			return "", err
		}
	}

	return auth.GenerateToken(admin.ID)
}

// ProcessListItems returns one page of catalog items along with the total
// matching count for the pagination controls.
func (app *App) ProcessListItems(ctx context.Context, filter storage.ItemFilter) (*models.ItemListResponse, error) {
	items, err := app.db.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := app.db.CountItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.ItemListResponse{Items: items, Total: total}, nil
}

// ProcessGetItem retrieves a single catalog item.
func (app *App) ProcessGetItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	return app.db.GetItem(ctx, id)
}

// ProcessCreateItem validates and inserts a new catalog item, then re-reads
// it so the caller sees the stored state.
func (app *App) ProcessCreateItem(ctx context.Context, item *catalog.Item) (*catalog.Item, error) {
	if errs := item.Validate(); errs != nil {
		return nil, errs
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.IsActive = true
	item.Inventory.SoldQuantity = 0

	if err := app.db.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return app.db.GetItem(ctx, item.ID)
}

// ProcessUpdateItem validates and rewrites a catalog item, then re-reads it.
// A vanished row surfaces as storage's no-rows error so the caller can treat
// the edit as stale and refetch its list.
func (app *App) ProcessUpdateItem(ctx context.Context, item *catalog.Item) (*catalog.Item, error) {
	if errs := item.Validate(); errs != nil {
		return nil, errs
	}

	if err := app.db.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return app.db.GetItem(ctx, item.ID)
}

// ProcessDeleteItem drives the delete/deactivate decision flow. An
// unreferenced item is hard-deleted directly. A referenced item is never
// silently deleted: without an explicit mode the response asks the operator
// to choose between deactivating, force-deleting, or cancelling.
func (app *App) ProcessDeleteItem(ctx context.Context, id uuid.UUID, mode DeleteMode) (*models.DeleteItemResponse, error) {
	switch mode {
	case DeleteModeDeactivate:
		if err := app.db.SetItemActive(ctx, id, false); err != nil {
			return nil, err
		}
		return &models.DeleteItemResponse{Deactivated: true}, nil

	case DeleteModeForce:
		if err := app.db.ForceDeleteItem(ctx, id); err != nil {
			return nil, err
		}
		return &models.DeleteItemResponse{Deleted: true}, nil

	case DeleteModeNone:
		count, err := app.db.CountItemPurchases(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return &models.DeleteItemResponse{
				RequiresConfirmation: true,
				PurchaseCount:        count,
				Options:              deleteOptions,
			}, nil
		}
		if err := app.db.DeleteItem(ctx, id); err != nil {
			return nil, err
		}
		return &models.DeleteItemResponse{Deleted: true}, nil

	default:
		return nil, ErrInvalidDeleteMode
	}
}

// ProcessActivateItem returns a deactivated item to the shop with a single
// action, no form involved.
func (app *App) ProcessActivateItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	if err := app.db.SetItemActive(ctx, id, true); err != nil {
		return nil, err
	}
	return app.db.GetItem(ctx, id)
}

// ProcessSetDailyRotation flips an item's daily-rotation flag by rewriting
// the row through the ordinary update path.
func (app *App) ProcessSetDailyRotation(ctx context.Context, id uuid.UUID, daily bool) (*catalog.Item, error) {
	item, err := app.db.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.IsDailyRotation = daily
	if err := app.db.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return app.db.GetItem(ctx, id)
}

// ProcessOpenPack invokes the pack-opening procedure on behalf of the
// authenticated operator and returns the awarded cards.
func (app *App) ProcessOpenPack(ctx context.Context, itemID uuid.UUID, adminID int32) (*models.OpenPackResponse, error) {
	cards, err := app.db.OpenPack(ctx, itemID, adminID)
	if err != nil {
		return nil, err
	}
	return &models.OpenPackResponse{Cards: cards}, nil
}

// ProcessTestOpenPack invokes the preview variant of the pack-opening
// procedure, which draws without recording a purchase.
func (app *App) ProcessTestOpenPack(ctx context.Context, itemID uuid.UUID) (*models.OpenPackResponse, error) {
	cards, err := app.db.TestOpenPack(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &models.OpenPackResponse{Cards: cards}, nil
}

// ProcessListCards returns the card lookup table for contents composition.
func (app *App) ProcessListCards(ctx context.Context, filter storage.CardFilter) ([]catalog.Card, error) {
	return app.db.ListCards(ctx, filter)
}

// ProcessSaveCard validates and upserts a card row: a nil ID inserts, any
// other ID updates.
func (app *App) ProcessSaveCard(ctx context.Context, card *catalog.Card) (*catalog.Card, error) {
	errs := catalog.ValidationErrors{}
	if strings.TrimSpace(card.Name) == "" {
		errs["name"] = "name is required"
	}
	if !card.Rarity.Valid() {
		errs["rarity"] = "unknown rarity"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if card.ID == uuid.Nil {
		card.ID = uuid.New()
		if err := app.db.CreateCard(ctx, card); err != nil {
			return nil, err
		}
		return card, nil
	}

	if err := app.db.UpdateCard(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// ProcessListAnnouncements returns every announcement.
func (app *App) ProcessListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return app.db.ListAnnouncements(ctx)
}

// ProcessSaveAnnouncement validates and upserts an announcement.
func (app *App) ProcessSaveAnnouncement(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {
	errs := catalog.ValidationErrors{}
	if strings.TrimSpace(a.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(a.Body) == "" {
		errs["body"] = "body is required"
	}
	if a.StartsAt != nil && a.EndsAt != nil && !a.EndsAt.After(*a.StartsAt) {
		errs["endsAt"] = "end must be after start"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
		if err := app.db.CreateAnnouncement(ctx, a); err != nil {
			return nil, err
		}
		return a, nil
	}

	if err := app.db.UpdateAnnouncement(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ProcessDeleteAnnouncement removes an announcement.
func (app *App) ProcessDeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	return app.db.DeleteAnnouncement(ctx, id)
}

// ProcessListCustomizations returns every customization.
func (app *App) ProcessListCustomizations(ctx context.Context) ([]models.Customization, error) {
	return app.db.ListCustomizations(ctx)
}

// ProcessSaveCustomization validates and upserts a customization.
func (app *App) ProcessSaveCustomization(ctx context.Context, c *models.Customization) (*models.Customization, error) {
	errs := catalog.ValidationErrors{}
	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(c.Slot) == "" {
		errs["slot"] = "slot is required"
	}
	if !c.Rarity.Valid() {
		errs["rarity"] = "unknown rarity"
	}
	if c.PriceCoins < 0 {
		errs["priceCoins"] = "price must not be negative"
	}
	if c.PriceGems < 0 {
		errs["priceGems"] = "price must not be negative"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
		if err := app.db.CreateCustomization(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := app.db.UpdateCustomization(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ProcessDeleteCustomization removes a customization.
func (app *App) ProcessDeleteCustomization(ctx context.Context, id uuid.UUID) error {
	return app.db.DeleteCustomization(ctx, id)
}

// ProcessSalesReport aggregates purchases per item over an optional time
// range; nil bounds leave that side open.
func (app *App) ProcessSalesReport(ctx context.Context, from, to *time.Time) ([]models.SalesReportRow, error) {
	return app.db.SalesReport(ctx, from, to)
}

// ProcessGetPreference reads one per-operator dashboard setting.
func (app *App) ProcessGetPreference(ctx context.Context, adminID int32, key string) (*models.Preference, error) {
	if key == "" {
		return nil, ErrMissingPreferenceKey
	}
	value, err := app.db.GetPreference(ctx, adminID, key)
	if err != nil {
		return nil, err
	}
	return &models.Preference{Key: key, Value: value}, nil
}

// ProcessSetPreference writes one per-operator dashboard setting.
func (app *App) ProcessSetPreference(ctx context.Context, adminID int32, pref models.Preference) error {
	if pref.Key == "" {
		return ErrMissingPreferenceKey
	}
	return app.db.SetPreference(ctx, adminID, pref.Key, pref.Value)
}
