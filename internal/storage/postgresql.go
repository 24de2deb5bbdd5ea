// Package storage provides the data gateway of the admin service. It defines
// the Storage interface covering the query, mutation, and remote-procedure
// surfaces, along with a PostgreSQL implementation that manages catalog
// items, cards, purchases, announcements, customizations, operator accounts,
// and per-operator preferences.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"famand_admin/internal/catalog"
	"famand_admin/internal/models"
	"famand_admin/internal/pkg/logger"
	"famand_admin/internal/pkg/security"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	createAdminQuery = `INSERT INTO content.admins (username, password_hash) VALUES ($1, $2) RETURNING id;`
	checkAdminQuery  = `SELECT id, password_hash FROM content.admins WHERE username = $1;`

	itemColumns = `id, name, description, item_type, rarity, price_coins, price_gems, price_dollars, currency_type,
		discount_percentage, real_discount_percentage, is_limited, stock_quantity, sold_quantity,
		max_purchases_per_user, purchase_time_limit_hours, contents, is_active, is_special, is_daily_rotation,
		created_at, updated_at`

	getItemQuery = `SELECT ` + itemColumns + ` FROM content.catalog_items WHERE id = $1;`

	createItemQuery = `INSERT INTO content.catalog_items
		(id, name, description, item_type, rarity, price_coins, price_gems, price_dollars, currency_type,
		discount_percentage, real_discount_percentage, is_limited, stock_quantity, sold_quantity,
		max_purchases_per_user, purchase_time_limit_hours, contents, is_active, is_special, is_daily_rotation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`

	updateItemQuery = `UPDATE content.catalog_items SET
		name = $2, description = $3, item_type = $4, rarity = $5, price_coins = $6, price_gems = $7,
		price_dollars = $8, currency_type = $9, discount_percentage = $10, real_discount_percentage = $11,
		is_limited = $12, stock_quantity = $13, max_purchases_per_user = $14, purchase_time_limit_hours = $15,
		contents = $16, is_special = $17, is_daily_rotation = $18, updated_at = NOW()
		WHERE id = $1;`

	deleteItemQuery          = `DELETE FROM content.catalog_items WHERE id = $1;`
	deleteItemPurchasesQuery = `DELETE FROM content.purchases WHERE item_id = $1;`
	setItemActiveQuery       = `UPDATE content.catalog_items SET is_active = $2, updated_at = NOW() WHERE id = $1;`
	countItemPurchasesQuery  = `SELECT COUNT(*) FROM content.purchases WHERE item_id = $1;`

	cardColumns     = `id, name, card_type, rarity, art_url`
	createCardQuery = `INSERT INTO content.cards (id, name, card_type, rarity, art_url) VALUES ($1, $2, $3, $4, $5);`
	updateCardQuery = `UPDATE content.cards SET name = $2, card_type = $3, rarity = $4, art_url = $5 WHERE id = $1;`

	openPackQuery     = `SELECT ` + cardColumns + ` FROM content.open_pack($1, $2);`
	testOpenPackQuery = `SELECT ` + cardColumns + ` FROM content.test_open_pack($1);`

	listAnnouncementsQuery  = `SELECT id, title, body, is_active, starts_at, ends_at, created_at FROM content.announcements ORDER BY created_at DESC;`
	createAnnouncementQuery = `INSERT INTO content.announcements (id, title, body, is_active, starts_at, ends_at) VALUES ($1, $2, $3, $4, $5, $6);`
	updateAnnouncementQuery = `UPDATE content.announcements SET title = $2, body = $3, is_active = $4, starts_at = $5, ends_at = $6 WHERE id = $1;`
	deleteAnnouncementQuery = `DELETE FROM content.announcements WHERE id = $1;`

	listCustomizationsQuery  = `SELECT id, name, slot, rarity, image_url, price_coins, price_gems, is_active FROM content.customizations ORDER BY name;`
	createCustomizationQuery = `INSERT INTO content.customizations (id, name, slot, rarity, image_url, price_coins, price_gems, is_active) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	updateCustomizationQuery = `UPDATE content.customizations SET name = $2, slot = $3, rarity = $4, image_url = $5, price_coins = $6, price_gems = $7, is_active = $8 WHERE id = $1;`
	deleteCustomizationQuery = `DELETE FROM content.customizations WHERE id = $1;`

	salesReportQuery = `SELECT i.id, i.name, COALESCE(SUM(p.quantity), 0),
		COALESCE(SUM(p.coins_spent), 0), COALESCE(SUM(p.gems_spent), 0), COALESCE(SUM(p.dollars_spent), 0)
		FROM content.catalog_items i
		JOIN content.purchases p ON p.item_id = i.id
		WHERE ($1::timestamptz IS NULL OR p.created_at >= $1) AND ($2::timestamptz IS NULL OR p.created_at < $2)
		GROUP BY i.id, i.name
		ORDER BY SUM(p.quantity) DESC;`

	getPreferenceQuery = `SELECT value FROM content.preferences WHERE admin_id = $1 AND key = $2;`
	setPreferenceQuery = `INSERT INTO content.preferences (admin_id, key, value) VALUES ($1, $2, $3)
		ON CONFLICT (admin_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`
)

// ItemFilter narrows and pages a catalog listing. Types is an in-set match;
// the zero value lists everything in the default order.
type ItemFilter struct {
	Types             []catalog.ItemType
	ActiveOnly        bool
	DailyRotationOnly bool
	OrderBy           string
	Limit             int
	Offset            int
}

// CardFilter narrows the card lookup table by exact type and rarity match.
type CardFilter struct {
	Type   string
	Rarity catalog.Rarity
}

// Storage defines the methods required of the data gateway.
type Storage interface {
	// Close closes the database connection.
	Close()

	// Operator account methods.
	CheckAdmin(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) (*models.Admin, error)

	// Catalog query interface.
	ListItems(ctx context.Context, filter ItemFilter) ([]catalog.Item, error)
	CountItems(ctx context.Context, filter ItemFilter) (int, error)
	GetItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error)

	// Catalog mutation interface.
	CreateItem(ctx context.Context, item *catalog.Item) error
	UpdateItem(ctx context.Context, item *catalog.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ForceDeleteItem(ctx context.Context, id uuid.UUID) error
	SetItemActive(ctx context.Context, id uuid.UUID, active bool) error
	CountItemPurchases(ctx context.Context, id uuid.UUID) (int, error)

	// Card lookup table.
	ListCards(ctx context.Context, filter CardFilter) ([]catalog.Card, error)
	CreateCard(ctx context.Context, card *catalog.Card) error
	UpdateCard(ctx context.Context, card *catalog.Card) error

	// Remote-procedure interface for pack opening.
	OpenPack(ctx context.Context, itemID uuid.UUID, adminID int32) ([]catalog.Card, error)
	TestOpenPack(ctx context.Context, itemID uuid.UUID) ([]catalog.Card, error)

	// Announcements panel.
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	UpdateAnnouncement(ctx context.Context, a *models.Announcement) error
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error

	// Customizations panel.
	ListCustomizations(ctx context.Context) ([]models.Customization, error)
	CreateCustomization(ctx context.Context, c *models.Customization) error
	UpdateCustomization(ctx context.Context, c *models.Customization) error
	DeleteCustomization(ctx context.Context, id uuid.UUID) error

	// Monetization report.
	SalesReport(ctx context.Context, from, to *time.Time) ([]models.SalesReportRow, error)

	// Operator preferences.
	GetPreference(ctx context.Context, adminID int32, key string) (string, error)
	SetPreference(ctx context.Context, adminID int32, key, value string) error
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB
	log *logger.Logger
}

// NewPostgreSQL opens a connection with the provided connection string and
// pings the database to ensure connectivity.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// CheckAdmin verifies an operator's credentials. A missing account is not an
// error; the caller detects it through the zero ID and may register the
// account instead.
func (postgresql *PostgreSQL) CheckAdmin(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	var encryptedPassword string

	err := postgresql.db.QueryRowContext(ctx, checkAdminQuery, admin.Username).Scan(&admin.ID, &encryptedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return admin, nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query checkAdminQuery: %s", err)
		return admin, err
	}

	if err := security.CheckPassword(encryptedPassword, admin.Password); err != nil {
		postgresql.log.Sugar().Errorf("Password check failed for %q: %s", admin.Username, err)
		return admin, err
	}

	return admin, nil
}

// CreateAdmin registers a new operator account with a bcrypt-hashed password.
func (postgresql *PostgreSQL) CreateAdmin(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	encryptedPassword := security.HashPassword(admin.Password)

	err := postgresql.db.QueryRowContext(ctx, createAdminQuery, admin.Username, encryptedPassword).Scan(&admin.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createAdminQuery: %s", err)
		return admin, err
	}
	return admin, nil
}

// itemOrderings whitelists the ORDER BY clauses a listing may request.
var itemOrderings = map[string]string{
	"":        "created_at DESC",
	"created": "created_at DESC",
	"name":    "name ASC",
	"price":   "price_coins ASC",
}

// buildItemFilter renders the WHERE clause and arguments shared by the list
// and count queries.
func buildItemFilter(filter ItemFilter) (string, []any) {
	var conds []string
	var args []any

	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		args = append(args, types)
		conds = append(conds, fmt.Sprintf("item_type = ANY($%d)", len(args)))
	}
	if filter.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if filter.DailyRotationOnly {
		conds = append(conds, "is_daily_rotation = TRUE")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListItems returns the catalog rows matching the filter, ordered and paged.
func (postgresql *PostgreSQL) ListItems(ctx context.Context, filter ItemFilter) ([]catalog.Item, error) {
	where, args := buildItemFilter(filter)

	ordering, ok := itemOrderings[filter.OrderBy]
	if !ok {
		ordering = itemOrderings[""]
	}

	query := `SELECT ` + itemColumns + ` FROM content.catalog_items` + where + ` ORDER BY ` + ordering
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := postgresql.db.QueryContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listItemsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialItemsCapacity = 20
	items := make([]catalog.Item, 0, initialItemsCapacity)

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a catalog item in ListItems method: %s", err)
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListItems method: %s", err)
		return items, err
	}

	return items, nil
}

// CountItems returns the aggregate count of rows matching the filter,
// ignoring pagination.
func (postgresql *PostgreSQL) CountItems(ctx context.Context, filter ItemFilter) (int, error) {
	where, args := buildItemFilter(filter)

	var count int
	err := postgresql.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content.catalog_items`+where, args...).Scan(&count)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countItemsQuery: %s", err)
		return 0, err
	}
	return count, nil
}

// GetItem retrieves a single catalog item by its identifier.
func (postgresql *PostgreSQL) GetItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	row := postgresql.db.QueryRowContext(ctx, getItemQuery, id)
	item, err := scanItem(row)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query getItemQuery: %s", err)
		}
		return nil, err
	}
	return item, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem maps one catalog row, including the jsonb contents column, back
// into the tagged union model.
func scanItem(row rowScanner) (*catalog.Item, error) {
	var item catalog.Item
	var stockQuantity, maxPurchases, timeLimitHours sql.NullInt64
	var contentsRaw []byte

	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.ItemType, &item.Rarity,
		&item.Pricing.PriceCoins, &item.Pricing.PriceGems, &item.Pricing.PriceDollars, &item.Pricing.CurrencyType,
		&item.DiscountPercentage, &item.RealDiscountPercentage,
		&item.Inventory.IsLimited, &stockQuantity, &item.Inventory.SoldQuantity,
		&maxPurchases, &timeLimitHours, &contentsRaw,
		&item.IsActive, &item.IsSpecial, &item.IsDailyRotation,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if stockQuantity.Valid {
		v := int(stockQuantity.Int64)
		item.Inventory.StockQuantity = &v
	}
	if maxPurchases.Valid {
		v := int(maxPurchases.Int64)
		item.Eligibility.MaxPurchasesPerUser = &v
	}
	if timeLimitHours.Valid {
		v := int(timeLimitHours.Int64)
		item.Eligibility.PurchaseTimeLimitHours = &v
	}

	if len(contentsRaw) > 0 {
		contents, err := catalog.DecodeContents(contentsRaw)
		if err != nil {
			return nil, err
		}
		item.Contents = contents
	}

	return &item, nil
}

// itemArgs renders the insert argument list for an item.
func itemArgs(item *catalog.Item, contentsRaw []byte) []any {
	return []any{
		item.ID, item.Name, item.Description, item.ItemType, item.Rarity,
		item.Pricing.PriceCoins, item.Pricing.PriceGems, item.Pricing.PriceDollars, item.Pricing.CurrencyType,
		item.DiscountPercentage, item.RealDiscountPercentage,
		item.Inventory.IsLimited, item.Inventory.StockQuantity, item.Inventory.SoldQuantity,
		item.Eligibility.MaxPurchasesPerUser, item.Eligibility.PurchaseTimeLimitHours,
		contentsRaw, item.IsActive, item.IsSpecial, item.IsDailyRotation,
	}
}

// CreateItem inserts a new catalog row with its contents serialized to jsonb.
func (postgresql *PostgreSQL) CreateItem(ctx context.Context, item *catalog.Item) error {
	contentsRaw, err := catalog.EncodeContents(item.Contents)
	if err != nil {
		return err
	}

	if _, err := postgresql.db.ExecContext(ctx, createItemQuery, itemArgs(item, contentsRaw)...); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createItemQuery: %s", err)
		return err
	}
	return nil
}

// UpdateItem rewrites a catalog row. The sold counter and active flag are
// deliberately not touched here: the purchase procedure owns the former and
// SetItemActive the latter. A vanished row reports sql.ErrNoRows so the
// caller can treat it as a stale reference.
func (postgresql *PostgreSQL) UpdateItem(ctx context.Context, item *catalog.Item) error {
	contentsRaw, err := catalog.EncodeContents(item.Contents)
	if err != nil {
		return err
	}

	result, err := postgresql.db.ExecContext(ctx, updateItemQuery,
		item.ID, item.Name, item.Description, item.ItemType, item.Rarity,
		item.Pricing.PriceCoins, item.Pricing.PriceGems, item.Pricing.PriceDollars, item.Pricing.CurrencyType,
		item.DiscountPercentage, item.RealDiscountPercentage,
		item.Inventory.IsLimited, item.Inventory.StockQuantity,
		item.Eligibility.MaxPurchasesPerUser, item.Eligibility.PurchaseTimeLimitHours,
		contentsRaw, item.IsSpecial, item.IsDailyRotation,
	)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateItemQuery: %s", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in updateItemQuery: %s", err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteItem removes an unreferenced catalog row. A foreign-key violation
// from a purchase row inserted after the caller's reference check propagates
// unchanged so the decision flow can re-prompt.
func (postgresql *PostgreSQL) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result, err := postgresql.db.ExecContext(ctx, deleteItemQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteItemQuery: %s", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in deleteItemQuery: %s", err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ForceDeleteItem removes the item together with its purchase history inside
// one transaction: the dependent purchase rows first, then the item itself.
func (postgresql *PostgreSQL) ForceDeleteItem(ctx context.Context, id uuid.UUID) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteItemPurchasesQuery, id); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteItemPurchasesQuery: %s", err)
		return err
	}

	result, err := tx.ExecContext(ctx, deleteItemQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteItemQuery: %s", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in ForceDeleteItem method: %s", err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// SetItemActive flips the soft-delete flag, moving the item between the
// Active and Deactivated states.
func (postgresql *PostgreSQL) SetItemActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := postgresql.db.ExecContext(ctx, setItemActiveQuery, id, active)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setItemActiveQuery: %s", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in setItemActiveQuery: %s", err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountItemPurchases returns how many purchase rows reference the item.
func (postgresql *PostgreSQL) CountItemPurchases(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := postgresql.db.QueryRowContext(ctx, countItemPurchasesQuery, id).Scan(&count)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query countItemPurchasesQuery: %s", err)
		return 0, err
	}
	return count, nil
}

// ListCards returns the card lookup table, optionally narrowed by exact type
// and rarity.
func (postgresql *PostgreSQL) ListCards(ctx context.Context, filter CardFilter) ([]catalog.Card, error) {
	var conds []string
	var args []any

	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("card_type = $%d", len(args)))
	}
	if filter.Rarity != "" {
		args = append(args, filter.Rarity)
		conds = append(conds, fmt.Sprintf("rarity = $%d", len(args)))
	}

	query := `SELECT ` + cardColumns + ` FROM content.cards`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY name;`

	rows, err := postgresql.db.QueryContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listCardsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	return collectCards(rows, postgresql.log)
}

// CreateCard inserts a row into the card lookup table.
func (postgresql *PostgreSQL) CreateCard(ctx context.Context, card *catalog.Card) error {
	if _, err := postgresql.db.ExecContext(ctx, createCardQuery, card.ID, card.Name, card.Type, card.Rarity, card.ArtURL); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createCardQuery: %s", err)
		return err
	}
	return nil
}

// UpdateCard rewrites a card row; a vanished row reports sql.ErrNoRows.
func (postgresql *PostgreSQL) UpdateCard(ctx context.Context, card *catalog.Card) error {
	result, err := postgresql.db.ExecContext(ctx, updateCardQuery, card.ID, card.Name, card.Type, card.Rarity, card.ArtURL)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateCardQuery: %s", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in updateCardQuery: %s", err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// OpenPack invokes the server-side pack-opening procedure for the calling
// operator and returns the awarded cards. The selection algorithm (draws,
// guarantees, stock decrement) lives entirely inside the procedure.
func (postgresql *PostgreSQL) OpenPack(ctx context.Context, itemID uuid.UUID, adminID int32) ([]catalog.Card, error) {
	rows, err := postgresql.db.QueryContext(ctx, openPackQuery, itemID, adminID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query openPackQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	return collectCards(rows, postgresql.log)
}

// TestOpenPack invokes the unauthenticated preview variant of the
// pack-opening procedure, which draws without recording a purchase.
func (postgresql *PostgreSQL) TestOpenPack(ctx context.Context, itemID uuid.UUID) ([]catalog.Card, error) {
	rows, err := postgresql.db.QueryContext(ctx, testOpenPackQuery, itemID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query testOpenPackQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	return collectCards(rows, postgresql.log)
}

// collectCards drains a card result set.
func collectCards(rows *sql.Rows, log *logger.Logger) ([]catalog.Card, error) {
	const initialCardsCapacity = 10
	cards := make([]catalog.Card, 0, initialCardsCapacity)

	for rows.Next() {
		var card catalog.Card
		if err := rows.Scan(&card.ID, &card.Name, &card.Type, &card.Rarity, &card.ArtURL); err != nil {
			log.Sugar().Errorf("Failed to scan a card row: %s", err)
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		log.Sugar().Errorf("The last error encountered by Rows.Scan while collecting cards: %s", err)
		return cards, err
	}

	return cards, nil
}

// ListAnnouncements returns every announcement, newest first.
func (postgresql *PostgreSQL) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	rows, err := postgresql.db.QueryContext(ctx, listAnnouncementsQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listAnnouncementsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		var startsAt, endsAt sql.NullTime
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.IsActive, &startsAt, &endsAt, &a.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan an announcement in ListAnnouncements method: %s", err)
			return nil, err
		}
		if startsAt.Valid {
			a.StartsAt = &startsAt.Time
		}
		if endsAt.Valid {
			a.EndsAt = &endsAt.Time
		}
		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListAnnouncements method: %s", err)
		return announcements, err
	}

	return announcements, nil
}

// CreateAnnouncement inserts an announcement row.
func (postgresql *PostgreSQL) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	if _, err := postgresql.db.ExecContext(ctx, createAnnouncementQuery, a.ID, a.Title, a.Body, a.IsActive, a.StartsAt, a.EndsAt); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createAnnouncementQuery: %s", err)
		return err
	}
	return nil
}

// UpdateAnnouncement rewrites an announcement row.
func (postgresql *PostgreSQL) UpdateAnnouncement(ctx context.Context, a *models.Announcement) error {
	result, err := postgresql.db.ExecContext(ctx, updateAnnouncementQuery, a.ID, a.Title, a.Body, a.IsActive, a.StartsAt, a.EndsAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateAnnouncementQuery: %s", err)
		return err
	}
	return requireAffected(result, postgresql.log, "updateAnnouncementQuery")
}

// DeleteAnnouncement removes an announcement row.
func (postgresql *PostgreSQL) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	result, err := postgresql.db.ExecContext(ctx, deleteAnnouncementQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteAnnouncementQuery: %s", err)
		return err
	}
	return requireAffected(result, postgresql.log, "deleteAnnouncementQuery")
}

// ListCustomizations returns every customization, ordered by name.
func (postgresql *PostgreSQL) ListCustomizations(ctx context.Context) ([]models.Customization, error) {
	rows, err := postgresql.db.QueryContext(ctx, listCustomizationsQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listCustomizationsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	var customizations []models.Customization
	for rows.Next() {
		var c models.Customization
		if err := rows.Scan(&c.ID, &c.Name, &c.Slot, &c.Rarity, &c.ImageURL, &c.PriceCoins, &c.PriceGems, &c.IsActive); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a customization in ListCustomizations method: %s", err)
			return nil, err
		}
		customizations = append(customizations, c)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListCustomizations method: %s", err)
		return customizations, err
	}

	return customizations, nil
}

// CreateCustomization inserts a customization row.
func (postgresql *PostgreSQL) CreateCustomization(ctx context.Context, c *models.Customization) error {
	if _, err := postgresql.db.ExecContext(ctx, createCustomizationQuery, c.ID, c.Name, c.Slot, c.Rarity, c.ImageURL, c.PriceCoins, c.PriceGems, c.IsActive); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createCustomizationQuery: %s", err)
		return err
	}
	return nil
}

// UpdateCustomization rewrites a customization row.
func (postgresql *PostgreSQL) UpdateCustomization(ctx context.Context, c *models.Customization) error {
	result, err := postgresql.db.ExecContext(ctx, updateCustomizationQuery, c.ID, c.Name, c.Slot, c.Rarity, c.ImageURL, c.PriceCoins, c.PriceGems, c.IsActive)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateCustomizationQuery: %s", err)
		return err
	}
	return requireAffected(result, postgresql.log, "updateCustomizationQuery")
}

// DeleteCustomization removes a customization row.
func (postgresql *PostgreSQL) DeleteCustomization(ctx context.Context, id uuid.UUID) error {
	result, err := postgresql.db.ExecContext(ctx, deleteCustomizationQuery, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteCustomizationQuery: %s", err)
		return err
	}
	return requireAffected(result, postgresql.log, "deleteCustomizationQuery")
}

// SalesReport aggregates purchases per item over an optional time range;
// nil bounds leave that side open.
func (postgresql *PostgreSQL) SalesReport(ctx context.Context, from, to *time.Time) ([]models.SalesReportRow, error) {
	rows, err := postgresql.db.QueryContext(ctx, salesReportQuery, from, to)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query salesReportQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	var report []models.SalesReportRow
	for rows.Next() {
		var row models.SalesReportRow
		if err := rows.Scan(&row.ItemID, &row.ItemName, &row.Units, &row.Coins, &row.Gems, &row.Dollars); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan a report row in SalesReport method: %s", err)
			return nil, err
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in SalesReport method: %s", err)
		return report, err
	}

	return report, nil
}

// GetPreference reads one per-operator setting; a missing key reports
// sql.ErrNoRows.
func (postgresql *PostgreSQL) GetPreference(ctx context.Context, adminID int32, key string) (string, error) {
	var value string
	err := postgresql.db.QueryRowContext(ctx, getPreferenceQuery, adminID, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			postgresql.log.Sugar().Errorf("Failed to execute a query getPreferenceQuery: %s", err)
		}
		return "", err
	}
	return value, nil
}

// SetPreference upserts one per-operator setting.
func (postgresql *PostgreSQL) SetPreference(ctx context.Context, adminID int32, key, value string) error {
	if _, err := postgresql.db.ExecContext(ctx, setPreferenceQuery, adminID, key, value); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setPreferenceQuery: %s", err)
		return err
	}
	return nil
}

// requireAffected converts a zero-row mutation into sql.ErrNoRows.
func requireAffected(result sql.Result, log *logger.Logger, query string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		log.Sugar().Errorf("Failed to execute RowsAffected in %s: %s", query, err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
