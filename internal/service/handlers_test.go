package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	pgx_pgconn "github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"famand_admin/internal/app"
	"famand_admin/internal/catalog"
	"famand_admin/internal/config"
	"famand_admin/internal/models"
	"famand_admin/internal/pkg/auth"
	"famand_admin/internal/pkg/logger"
	"famand_admin/internal/storage"
	"famand_admin/internal/storage/mocks"
)

// fakeUploads satisfies UploadStore without touching the filesystem.
type fakeUploads struct {
	dir string
	err error
}

func (f *fakeUploads) Save(originalName string, r io.Reader) (*models.UploadResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UploadResponse{URL: "/assets/key.png", ThumbURL: "/assets/key_thumb.jpg"}, nil
}

func (f *fakeUploads) Dir() string { return f.dir }

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockStorage) {
	t.Helper()

	l, err := logger.CreateLogger(config.LogLevel)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := mocks.NewMockStorage(ctrl)
	appInstance := app.NewApp(mockDB, l)

	service := NewService(appInstance, &fakeUploads{dir: t.TempDir()}, config.ServerRunAddress, l)
	testServer := httptest.NewServer(service.NewRouter())
	t.Cleanup(testServer.Close)

	return testServer, mockDB
}

func testRequest(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(requestBody))
	require.NoError(t, err)

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func testRequestWithAuth(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte, token string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(requestBody))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func itemBody(t *testing.T) []byte {
	t.Helper()

	item := catalog.Item{
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
	raw, err := json.Marshal(item)
	require.NoError(t, err)
	return raw
}

func TestAuthHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	type expectedData struct {
		expectedContentType string
		expectedStatusCode  int
		expectedBody        string
	}

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Invalid JSON",
			requestBody: []byte("some body"),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid character 's' looking for beginning of value\"}\n",
			},
		},
		{
			name:        "Missing username",
			requestBody: []byte(`{"username": "", "password": "pass"}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"missing username or password\"}\n",
			},
		},
		{
			name:        "Incorrect password",
			requestBody: []byte(`{"username": "incorrect_password_admin", "password": "wrongpass"}`),
			setupMock: func() {
				mockDB.EXPECT().CheckAdmin(gomock.Any(), gomock.AssignableToTypeOf(&models.Admin{})).
					DoAndReturn(func(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
						return &models.Admin{ID: 1, Username: admin.Username}, bcrypt.ErrMismatchedHashAndPassword
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusUnauthorized,
				expectedBody:        "{\"errors\":\"incorrect password\"}\n",
			},
		},
		{
			name:        "Admin already exists (unique violation)",
			requestBody: []byte(`{"username": "new_existing_admin", "password": "pass"}`),
			setupMock: func() {
				mockDB.EXPECT().CheckAdmin(gomock.Any(), gomock.AssignableToTypeOf(&models.Admin{})).
					DoAndReturn(func(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
						return &models.Admin{ID: 0, Username: admin.Username}, nil
					})
				mockDB.EXPECT().CreateAdmin(gomock.Any(), gomock.AssignableToTypeOf(&models.Admin{})).
					DoAndReturn(func(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
						pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
						return nil, pgErr
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusUnauthorized,
				expectedBody:        "{\"errors\":\"admin with provided name already exists\"}\n",
			},
		},
		{
			name:        "Successful authorization - new admin",
			requestBody: []byte(`{"username": "new_admin", "password": "pass"}`),
			setupMock: func() {
				mockDB.EXPECT().CheckAdmin(gomock.Any(), gomock.AssignableToTypeOf(&models.Admin{})).
					DoAndReturn(func(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
						return &models.Admin{ID: 0, Username: admin.Username}, nil
					})
				mockDB.EXPECT().CreateAdmin(gomock.Any(), gomock.AssignableToTypeOf(&models.Admin{})).
					DoAndReturn(func(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
						return &models.Admin{ID: 123, Username: admin.Username}, nil
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody:        "",
			},
		},
		{
			name:        "Successful authorization - existing admin",
			requestBody: []byte(`{"username": "existing_admin", "password": "pass"}`),
			setupMock: func() {
				mockDB.EXPECT().CheckAdmin(gomock.Any(), gomock.AssignableToTypeOf(&models.Admin{})).
					DoAndReturn(func(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
						return &models.Admin{ID: 456, Username: admin.Username}, nil
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody:        "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/auth", tc.requestBody)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))

			if tc.expected.expectedStatusCode == http.StatusOK {
				var authResp models.AuthResponse
				err := json.Unmarshal([]byte(body), &authResp)
				require.NoError(t, err)
				assert.NotEmpty(t, authResp.Token, "token should not be empty")
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestItemsHandlers_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	t.Run("Unauthorized - no token", func(t *testing.T) {
		resp, body := testRequestWithAuth(t, testServer, http.MethodGet, "/api/items", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"missing auth header\"}\n", body)
	})

	t.Run("List items with filters", func(t *testing.T) {
		mockDB.EXPECT().ListItems(gomock.Any(), gomock.AssignableToTypeOf(storage.ItemFilter{})).
			DoAndReturn(func(ctx context.Context, filter storage.ItemFilter) ([]catalog.Item, error) {
				assert.Equal(t, []catalog.ItemType{catalog.TypePack, catalog.TypeBooster}, filter.Types)
				assert.True(t, filter.ActiveOnly)
				assert.Equal(t, 20, filter.Limit)
				return []catalog.Item{}, nil
			})
		mockDB.EXPECT().CountItems(gomock.Any(), gomock.Any()).Return(57, nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodGet,
			"/api/items?type=pack,booster&active=true&limit=20", nil, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list models.ItemListResponse
		require.NoError(t, json.Unmarshal([]byte(body), &list))
		assert.Equal(t, 57, list.Total)
	})

	t.Run("Get item - unknown id", func(t *testing.T) {
		id := uuid.New()
		mockDB.EXPECT().GetItem(gomock.Any(), id).Return(nil, sql.ErrNoRows)

		resp, body := testRequestWithAuth(t, testServer, http.MethodGet, "/api/items/"+id.String(), nil, token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"not found\"}\n", body)
	})

	t.Run("Get item - malformed id", func(t *testing.T) {
		resp, body := testRequestWithAuth(t, testServer, http.MethodGet, "/api/items/not-a-uuid", nil, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"invalid identifier provided\"}\n", body)
	})

	t.Run("Create item - validation failure", func(t *testing.T) {
		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/items",
			[]byte(`{"name":"","itemType":"pack"}`), token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var validationResp models.ValidationErrorResponse
		require.NoError(t, json.Unmarshal([]byte(body), &validationResp))
		assert.Equal(t, "validation failed", validationResp.Errors)
		assert.Contains(t, validationResp.Fields, "name")
		assert.Contains(t, validationResp.Fields, "contents")
	})

	t.Run("Create item - success", func(t *testing.T) {
		mockDB.EXPECT().CreateItem(gomock.Any(), gomock.AssignableToTypeOf(&catalog.Item{})).Return(nil)
		mockDB.EXPECT().GetItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
				return &catalog.Item{ID: id, Name: "Premium Pack", IsActive: true}, nil
			})

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/items", itemBody(t), token)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created catalog.Item
		require.NoError(t, json.Unmarshal([]byte(body), &created))
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.True(t, created.IsActive)
	})

	t.Run("Update item - stale reference", func(t *testing.T) {
		id := uuid.New()
		mockDB.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)

		resp, _ := testRequestWithAuth(t, testServer, http.MethodPut, "/api/items/"+id.String(), itemBody(t), token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteItemHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)
	id := uuid.New()

	t.Run("Unreferenced item deletes directly", func(t *testing.T) {
		mockDB.EXPECT().CountItemPurchases(gomock.Any(), id).Return(0, nil)
		mockDB.EXPECT().DeleteItem(gomock.Any(), id).Return(nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodDelete, "/api/items/"+id.String(), nil, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var outcome models.DeleteItemResponse
		require.NoError(t, json.Unmarshal([]byte(body), &outcome))
		assert.True(t, outcome.Deleted)
	})

	t.Run("Referenced item answers with the choice set", func(t *testing.T) {
		mockDB.EXPECT().CountItemPurchases(gomock.Any(), id).Return(12, nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodDelete, "/api/items/"+id.String(), nil, token)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var outcome models.DeleteItemResponse
		require.NoError(t, json.Unmarshal([]byte(body), &outcome))
		assert.True(t, outcome.RequiresConfirmation)
		assert.Equal(t, 12, outcome.PurchaseCount)
		assert.Equal(t, []string{"deactivate", "force", "cancel"}, outcome.Options)
		assert.False(t, outcome.Deleted)
	})

	t.Run("Deactivate mode", func(t *testing.T) {
		mockDB.EXPECT().SetItemActive(gomock.Any(), id, false).Return(nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodDelete,
			"/api/items/"+id.String()+"?mode=deactivate", nil, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var outcome models.DeleteItemResponse
		require.NoError(t, json.Unmarshal([]byte(body), &outcome))
		assert.True(t, outcome.Deactivated)
	})

	t.Run("Force mode", func(t *testing.T) {
		mockDB.EXPECT().ForceDeleteItem(gomock.Any(), id).Return(nil)

		resp, _ := testRequestWithAuth(t, testServer, http.MethodDelete,
			"/api/items/"+id.String()+"?mode=force", nil, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Invalid mode", func(t *testing.T) {
		resp, body := testRequestWithAuth(t, testServer, http.MethodDelete,
			"/api/items/"+id.String()+"?mode=shred", nil, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"invalid delete mode\"}\n", body)
	})

	t.Run("Purchase raced the delete", func(t *testing.T) {
		mockDB.EXPECT().CountItemPurchases(gomock.Any(), id).Return(0, nil)
		mockDB.EXPECT().DeleteItem(gomock.Any(), id).
			Return(&pgx_pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		resp, body := testRequestWithAuth(t, testServer, http.MethodDelete, "/api/items/"+id.String(), nil, token)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var outcome models.DeleteItemResponse
		require.NoError(t, json.Unmarshal([]byte(body), &outcome))
		assert.True(t, outcome.RequiresConfirmation)
	})
}

func TestOpenPackHandlers_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(42)
	require.NoError(t, err)
	id := uuid.New()

	t.Run("Open pack - success", func(t *testing.T) {
		awarded := []catalog.Card{{ID: uuid.New(), Name: "Ember Drake", Rarity: catalog.RarityRare}}
		mockDB.EXPECT().OpenPack(gomock.Any(), id, int32(42)).Return(awarded, nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost,
			"/api/packs/"+id.String()+"/open", nil, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var opened models.OpenPackResponse
		require.NoError(t, json.Unmarshal([]byte(body), &opened))
		require.Len(t, opened.Cards, 1)
		assert.Equal(t, "Ember Drake", opened.Cards[0].Name)
	})

	t.Run("Open pack - sold out", func(t *testing.T) {
		mockDB.EXPECT().OpenPack(gomock.Any(), id, int32(42)).
			Return(nil, &pgx_pgconn.PgError{Code: pgerrcode.CheckViolation})

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost,
			"/api/packs/"+id.String()+"/open", nil, token)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"sold out\"}\n", body)
	})

	t.Run("Open pack - procedure rejection", func(t *testing.T) {
		mockDB.EXPECT().OpenPack(gomock.Any(), id, int32(42)).
			Return(nil, &pgx_pgconn.PgError{Code: pgerrcode.RaiseException})

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost,
			"/api/packs/"+id.String()+"/open", nil, token)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"sold out\"}\n", body)
	})

	t.Run("Open pack - unknown pack", func(t *testing.T) {
		mockDB.EXPECT().OpenPack(gomock.Any(), id, int32(42)).Return(nil, sql.ErrNoRows)

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost,
			"/api/packs/"+id.String()+"/open", nil, token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"invalid pack id provided\"}\n", body)
	})

	t.Run("Open pack - unauthorized", func(t *testing.T) {
		resp, _ := testRequestWithAuth(t, testServer, http.MethodPost,
			"/api/packs/"+id.String()+"/open", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Test open is public", func(t *testing.T) {
		mockDB.EXPECT().TestOpenPack(gomock.Any(), id).
			Return([]catalog.Card{{ID: uuid.New(), Name: "Pond Sprite"}}, nil)

		resp, body := testRequest(t, testServer, http.MethodPost, "/api/packs/"+id.String()+"/test-open", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var opened models.OpenPackResponse
		require.NoError(t, json.Unmarshal([]byte(body), &opened))
		require.Len(t, opened.Cards, 1)
	})

	t.Run("Generic error in opening pack", func(t *testing.T) {
		mockDB.EXPECT().OpenPack(gomock.Any(), id, int32(42)).Return(nil, errors.New("open error"))

		resp, body := testRequestWithAuth(t, testServer, http.MethodPost,
			"/api/packs/"+id.String()+"/open", nil, token)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "{\"errors\":\"open error\"}\n", body)
	})
}

func TestPreferenceHandlers_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	token, err := auth.GenerateToken(7)
	require.NoError(t, err)

	t.Run("Set value", func(t *testing.T) {
		mockDB.EXPECT().SetPreference(gomock.Any(), int32(7), "activeTab", "packs").Return(nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodPut,
			"/api/prefs/activeTab", []byte(`{"value":"packs"}`), token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var pref models.Preference
		require.NoError(t, json.Unmarshal([]byte(body), &pref))
		assert.Equal(t, "activeTab", pref.Key)
		assert.Equal(t, "packs", pref.Value)
	})

	t.Run("Get stored value", func(t *testing.T) {
		mockDB.EXPECT().GetPreference(gomock.Any(), int32(7), "activeTab").Return("packs", nil)

		resp, body := testRequestWithAuth(t, testServer, http.MethodGet, "/api/prefs/activeTab", nil, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var pref models.Preference
		require.NoError(t, json.Unmarshal([]byte(body), &pref))
		assert.Equal(t, "packs", pref.Value)
	})

	t.Run("Unset key answers 404", func(t *testing.T) {
		mockDB.EXPECT().GetPreference(gomock.Any(), int32(7), "theme").Return("", sql.ErrNoRows)

		resp, _ := testRequestWithAuth(t, testServer, http.MethodGet, "/api/prefs/theme", nil, token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUploadHandler_Gomock(t *testing.T) {
	testServer, _ := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "art.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png, the fake store does not care"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, testServer.URL+"/api/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := (&http.Client{}).Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored models.UploadResponse
	require.NoError(t, json.Unmarshal(body, &stored))
	assert.Equal(t, "/assets/key.png", stored.URL)
	assert.Equal(t, "/assets/key_thumb.jpg", stored.ThumbURL)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	testServer, _ := newTestServer(t)

	token, err := auth.GenerateToken(1)
	require.NoError(t, err)

	resp, body := testRequestWithAuth(t, testServer, http.MethodPost, "/api/uploads", nil, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "{\"errors\":\"missing file field\"}\n", body)
}
