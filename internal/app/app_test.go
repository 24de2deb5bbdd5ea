package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"famand_admin/internal/catalog"
	"famand_admin/internal/config"
	"famand_admin/internal/models"
	"famand_admin/internal/pkg/logger"
	"famand_admin/internal/storage/mocks"
)

func newTestApp(t *testing.T) (*App, *mocks.MockStorage) {
	t.Helper()

	l, err := logger.CreateLogger(config.LogLevel)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := mocks.NewMockStorage(ctrl)
	return NewApp(mockDB, l), mockDB
}

func validItem() *catalog.Item {
	return &catalog.Item{
		Name:        "Premium Pack",
		Description: "Ten cards with a guaranteed rare",
		ItemType:    catalog.TypePack,
		Rarity:      catalog.RarityUltra,
		Pricing: catalog.Pricing{
			PriceGems:    50,
			CurrencyType: catalog.CurrencyGems,
		},
		Contents: catalog.RandomCards{PoolCardIDs: []uuid.UUID{uuid.New()}, CardsPerPack: 10},
	}
}

func TestProcessDeleteItem_UnreferencedDeletesDirectly(t *testing.T) {
	app, mockDB := newTestApp(t)
	id := uuid.New()

	mockDB.EXPECT().CountItemPurchases(gomock.Any(), id).Return(0, nil)
	mockDB.EXPECT().DeleteItem(gomock.Any(), id).Return(nil)

	outcome, err := app.ProcessDeleteItem(context.Background(), id, DeleteModeNone)
	require.NoError(t, err)

	assert.True(t, outcome.Deleted)
	assert.False(t, outcome.RequiresConfirmation)
}

func TestProcessDeleteItem_ReferencedRequiresConfirmation(t *testing.T) {
	app, mockDB := newTestApp(t)
	id := uuid.New()

	// No DeleteItem expectation: a referenced item must never be deleted
	// without an explicit force mode.
	mockDB.EXPECT().CountItemPurchases(gomock.Any(), id).Return(7, nil)

	outcome, err := app.ProcessDeleteItem(context.Background(), id, DeleteModeNone)
	require.NoError(t, err)

	assert.True(t, outcome.RequiresConfirmation)
	assert.False(t, outcome.Deleted)
	assert.Equal(t, 7, outcome.PurchaseCount)
	assert.Equal(t, []string{"deactivate", "force", "cancel"}, outcome.Options)
}

func TestProcessDeleteItem_Deactivate(t *testing.T) {
	app, mockDB := newTestApp(t)
	id := uuid.New()

	mockDB.EXPECT().SetItemActive(gomock.Any(), id, false).Return(nil)

	outcome, err := app.ProcessDeleteItem(context.Background(), id, DeleteModeDeactivate)
	require.NoError(t, err)

	assert.True(t, outcome.Deactivated)
	assert.False(t, outcome.Deleted)
}

func TestProcessDeleteItem_Force(t *testing.T) {
	app, mockDB := newTestApp(t)
	id := uuid.New()

	mockDB.EXPECT().ForceDeleteItem(gomock.Any(), id).Return(nil)

	outcome, err := app.ProcessDeleteItem(context.Background(), id, DeleteModeForce)
	require.NoError(t, err)

	assert.True(t, outcome.Deleted)
}

func TestProcessDeleteItem_InvalidMode(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.ProcessDeleteItem(context.Background(), uuid.New(), DeleteMode("shred"))
	assert.ErrorIs(t, err, ErrInvalidDeleteMode)
}

func TestProcessActivateItem(t *testing.T) {
	app, mockDB := newTestApp(t)
	id := uuid.New()
	stored := validItem()
	stored.ID = id
	stored.IsActive = true

	mockDB.EXPECT().SetItemActive(gomock.Any(), id, true).Return(nil)
	mockDB.EXPECT().GetItem(gomock.Any(), id).Return(stored, nil)

	item, err := app.ProcessActivateItem(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, item.IsActive)
}

func TestProcessCreateItem_ValidationBlocksWrite(t *testing.T) {
	app, _ := newTestApp(t)

	item := validItem()
	item.Name = ""
	item.Pricing.PriceGems = -1

	// No storage expectations: a validation failure must not reach the
	// gateway.
	_, err := app.ProcessCreateItem(context.Background(), item)
	require.Error(t, err)

	var validation catalog.ValidationErrors
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation, "name")
	assert.Contains(t, validation, "priceGems")
}

func TestProcessCreateItem_WritesThenRefetches(t *testing.T) {
	app, mockDB := newTestApp(t)
	item := validItem()

	mockDB.EXPECT().CreateItem(gomock.Any(), gomock.AssignableToTypeOf(&catalog.Item{})).
		DoAndReturn(func(ctx context.Context, created *catalog.Item) error {
			assert.NotEqual(t, uuid.Nil, created.ID, "an identifier is assigned before insert")
			assert.True(t, created.IsActive, "new items start active")
			assert.Zero(t, created.Inventory.SoldQuantity)
			return nil
		})
	mockDB.EXPECT().GetItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
			stored := validItem()
			stored.ID = id
			stored.IsActive = true
			return stored, nil
		})

	created, err := app.ProcessCreateItem(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, item.ID, created.ID)
}

func TestProcessUpdateItem_StaleReference(t *testing.T) {
	app, mockDB := newTestApp(t)
	item := validItem()
	item.ID = uuid.New()

	mockDB.EXPECT().UpdateItem(gomock.Any(), item).Return(sql.ErrNoRows)

	_, err := app.ProcessUpdateItem(context.Background(), item)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProcessOpenPack(t *testing.T) {
	app, mockDB := newTestApp(t)
	packID := uuid.New()
	awarded := []catalog.Card{
		{ID: uuid.New(), Name: "Ember Drake", Rarity: catalog.RarityRare},
		{ID: uuid.New(), Name: "Pond Sprite", Rarity: catalog.RarityCommon},
	}

	mockDB.EXPECT().OpenPack(gomock.Any(), packID, int32(42)).Return(awarded, nil)

	opened, err := app.ProcessOpenPack(context.Background(), packID, 42)
	require.NoError(t, err)
	assert.Equal(t, awarded, opened.Cards)
}

func TestProcessOpenPack_ProcedureErrorPropagates(t *testing.T) {
	app, mockDB := newTestApp(t)
	packID := uuid.New()
	soldOut := errors.New("pack is sold out")

	mockDB.EXPECT().OpenPack(gomock.Any(), packID, int32(1)).Return(nil, soldOut)

	_, err := app.ProcessOpenPack(context.Background(), packID, 1)
	assert.ErrorIs(t, err, soldOut)
}

func TestProcessSetDailyRotation(t *testing.T) {
	app, mockDB := newTestApp(t)
	id := uuid.New()
	stored := validItem()
	stored.ID = id

	mockDB.EXPECT().GetItem(gomock.Any(), id).Return(stored, nil)
	mockDB.EXPECT().UpdateItem(gomock.Any(), gomock.AssignableToTypeOf(&catalog.Item{})).
		DoAndReturn(func(ctx context.Context, updated *catalog.Item) error {
			assert.True(t, updated.IsDailyRotation)
			return nil
		})
	rotated := validItem()
	rotated.ID = id
	rotated.IsDailyRotation = true
	mockDB.EXPECT().GetItem(gomock.Any(), id).Return(rotated, nil)

	item, err := app.ProcessSetDailyRotation(context.Background(), id, true)
	require.NoError(t, err)
	assert.True(t, item.IsDailyRotation)
}

func TestProcessSaveAnnouncement_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.ProcessSaveAnnouncement(context.Background(), &models.Announcement{Title: "Launch"})
	require.Error(t, err)

	var validation catalog.ValidationErrors
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation, "body")
}

func TestProcessPreferences(t *testing.T) {
	app, mockDB := newTestApp(t)

	mockDB.EXPECT().SetPreference(gomock.Any(), int32(3), "activeTab", "packs").Return(nil)
	require.NoError(t, app.ProcessSetPreference(context.Background(), 3, models.Preference{Key: "activeTab", Value: "packs"}))

	mockDB.EXPECT().GetPreference(gomock.Any(), int32(3), "activeTab").Return("packs", nil)
	pref, err := app.ProcessGetPreference(context.Background(), 3, "activeTab")
	require.NoError(t, err)
	assert.Equal(t, "packs", pref.Value)

	_, err = app.ProcessGetPreference(context.Background(), 3, "")
	assert.ErrorIs(t, err, ErrMissingPreferenceKey)
}
