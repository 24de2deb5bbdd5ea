// Package service contains the HTTP handlers of the Famand admin API. It
// parses requests, calls the business logic in the app package, maps
// database-specific errors onto the API's error taxonomy, and writes JSON
// responses. Every gateway error is caught here; none crashes the screen
// that triggered it.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"famand_admin/internal/app"
	"famand_admin/internal/catalog"
	"famand_admin/internal/models"
	"famand_admin/internal/pkg/auth"
	"famand_admin/internal/pkg/logger"
	"famand_admin/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	pgconn "github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	pgx_pgconn "github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const requestTimeout = 10 * time.Second

// handlers aggregates dependencies needed by HTTP handlers.
type handlers struct {
	app     *app.App
	uploads UploadStore
	log     *logger.Logger
}

// UploadStore is the blob-store surface the upload handler needs.
type UploadStore interface {
	Save(originalName string, r io.Reader) (*models.UploadResponse, error)
	Dir() string
}

// newHandlers initializes a handlers instance with the provided dependencies.
func newHandlers(app *app.App, uploads UploadStore, l *logger.Logger) *handlers {
	return &handlers{app: app, uploads: uploads, log: l}
}

// authHandler handles operator sign-in. It reads the credentials, invokes
// the authentication process, and returns a JSON response with a token.
func (handlers *handlers) authHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var authRequest models.AuthRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}
	if err = json.Unmarshal(requestBody, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	var pgError *pgconn.PgError
	token, err := handlers.app.ProcessAuth(ctx, authRequest)
	if err != nil {
		if ok := errors.As(err, &pgError); ok && pgError.Code == pgerrcode.UniqueViolation {
			writeErrorResponse(res, "admin with provided name already exists", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, app.ErrMissingUsernameOrPassword) {
			writeErrorResponse(res, "missing username or password", http.StatusBadRequest)
			return
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			writeErrorResponse(res, "incorrect password", http.StatusUnauthorized)
			return
		}
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, http.StatusOK, models.AuthResponse{Token: token})
}

// listItemsHandler returns one page of catalog items. Filters come from
// query parameters: type (comma-separated in-set), active, daily, orderBy,
// limit, offset.
func (handlers *handlers) listItemsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	filter := storage.ItemFilter{
		ActiveOnly:        req.URL.Query().Get("active") == "true",
		DailyRotationOnly: req.URL.Query().Get("daily") == "true",
		OrderBy:           req.URL.Query().Get("orderBy"),
	}
	if types := req.URL.Query().Get("type"); types != "" {
		for _, t := range strings.Split(types, ",") {
			filter.Types = append(filter.Types, catalog.ItemType(t))
		}
	}
	filter.Limit, _ = strconv.Atoi(req.URL.Query().Get("limit"))
	filter.Offset, _ = strconv.Atoi(req.URL.Query().Get("offset"))

	list, err := handlers.app.ProcessListItems(ctx, filter)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, list)
}

// getItemHandler returns a single catalog item.
func (handlers *handlers) getItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}

	item, err := handlers.app.ProcessGetItem(ctx, id)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, item)
}

// createItemHandler validates and inserts a catalog item, responding with
// the re-read stored row.
func (handlers *handlers) createItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var item catalog.Item
	if !decodeJSONBody(res, req, &item) {
		return
	}

	created, err := handlers.app.ProcessCreateItem(ctx, &item)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusCreated, created)
}

// updateItemHandler rewrites a catalog item. The identifier comes from the
// URL; a stale reference (row deleted by another session) maps to 404 so the
// dashboard refetches its list.
func (handlers *handlers) updateItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}

	var item catalog.Item
	if !decodeJSONBody(res, req, &item) {
		return
	}
	item.ID = id

	updated, err := handlers.app.ProcessUpdateItem(ctx, &item)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, updated)
}

// deleteItemHandler drives the delete/deactivate decision flow. Without a
// mode parameter a referenced item answers 409 and the choice set; the
// dashboard resubmits with mode=deactivate or mode=force, or simply drops
// the request to cancel.
func (handlers *handlers) deleteItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}
	mode := app.DeleteMode(req.URL.Query().Get("mode"))

	outcome, err := handlers.app.ProcessDeleteItem(ctx, id, mode)
	if err != nil {
		if errors.Is(err, app.ErrInvalidDeleteMode) {
			writeErrorResponse(res, "invalid delete mode", http.StatusBadRequest)
			return
		}
		// A purchase inserted between the reference check and the delete
		// surfaces as a foreign-key violation; re-prompt instead of failing.
		var pgError *pgx_pgconn.PgError
		if ok := errors.As(err, &pgError); ok && pgError.Code == pgerrcode.ForeignKeyViolation {
			writeJSONResponse(res, http.StatusConflict, models.DeleteItemResponse{
				RequiresConfirmation: true,
				Options:              []string{"deactivate", "force", "cancel"},
			})
			return
		}
		handlers.writeMappedError(res, err)
		return
	}

	if outcome.RequiresConfirmation {
		writeJSONResponse(res, http.StatusConflict, outcome)
		return
	}
	writeJSONResponse(res, http.StatusOK, outcome)
}

// activateItemHandler returns a deactivated item to the shop.
func (handlers *handlers) activateItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}

	item, err := handlers.app.ProcessActivateItem(ctx, id)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, item)
}

// rotationHandler flips an item's daily-rotation flag.
func (handlers *handlers) rotationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}

	var body struct {
		Daily bool `json:"daily"`
	}
	if !decodeJSONBody(res, req, &body) {
		return
	}

	item, err := handlers.app.ProcessSetDailyRotation(ctx, id, body.Daily)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, item)
}

// openPackHandler invokes the pack-opening procedure for the authenticated
// operator. A sold-out rejection from the procedure is an expected outcome
// and answers 409, not a server error.
func (handlers *handlers) openPackHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	adminID, ok := auth.AdminIDFromContext(req.Context())
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, okID := pathUUID(res, req, "id")
	if !okID {
		return
	}

	opened, err := handlers.app.ProcessOpenPack(ctx, id, adminID)
	if err != nil {
		handlers.writePackError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, opened)
}

// testOpenPackHandler invokes the unauthenticated preview variant of the
// pack-opening procedure.
func (handlers *handlers) testOpenPackHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}

	opened, err := handlers.app.ProcessTestOpenPack(ctx, id)
	if err != nil {
		handlers.writePackError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, opened)
}

// writePackError maps pack-opening failures: unknown pack to 404, a
// stock or eligibility rejection raised by the procedure to 409 "sold out".
func (handlers *handlers) writePackError(res http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		writeErrorResponse(res, "invalid pack id provided", http.StatusNotFound)
		return
	}
	var pgError *pgx_pgconn.PgError
	if ok := errors.As(err, &pgError); ok &&
		(pgError.Code == pgerrcode.CheckViolation || pgError.Code == pgerrcode.RaiseException) {
		writeErrorResponse(res, "sold out", http.StatusConflict)
		return
	}
	writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
}

// listCardsHandler returns the card lookup table, filtered by exact type and
// rarity for the contents-composition editor.
func (handlers *handlers) listCardsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	filter := storage.CardFilter{
		Type:   req.URL.Query().Get("type"),
		Rarity: catalog.Rarity(req.URL.Query().Get("rarity")),
	}

	cards, err := handlers.app.ProcessListCards(ctx, filter)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, cards)
}

// saveCardHandler upserts a card row.
func (handlers *handlers) saveCardHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var card catalog.Card
	if !decodeJSONBody(res, req, &card) {
		return
	}

	saved, err := handlers.app.ProcessSaveCard(ctx, &card)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}

	writeJSONResponse(res, http.StatusOK, saved)
}

// listAnnouncementsHandler returns every announcement.
func (handlers *handlers) listAnnouncementsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	announcements, err := handlers.app.ProcessListAnnouncements(ctx)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	writeJSONResponse(res, http.StatusOK, announcements)
}

// saveAnnouncementHandler upserts an announcement.
func (handlers *handlers) saveAnnouncementHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var announcement models.Announcement
	if !decodeJSONBody(res, req, &announcement) {
		return
	}

	saved, err := handlers.app.ProcessSaveAnnouncement(ctx, &announcement)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	writeJSONResponse(res, http.StatusOK, saved)
}

// deleteAnnouncementHandler removes an announcement.
func (handlers *handlers) deleteAnnouncementHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}

	if err := handlers.app.ProcessDeleteAnnouncement(ctx, id); err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// listCustomizationsHandler returns every customization.
func (handlers *handlers) listCustomizationsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	customizations, err := handlers.app.ProcessListCustomizations(ctx)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	writeJSONResponse(res, http.StatusOK, customizations)
}

// saveCustomizationHandler upserts a customization.
func (handlers *handlers) saveCustomizationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var customization models.Customization
	if !decodeJSONBody(res, req, &customization) {
		return
	}

	saved, err := handlers.app.ProcessSaveCustomization(ctx, &customization)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	writeJSONResponse(res, http.StatusOK, saved)
}

// deleteCustomizationHandler removes a customization.
func (handlers *handlers) deleteCustomizationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathUUID(res, req, "id")
	if !ok {
		return
	}

	if err := handlers.app.ProcessDeleteCustomization(ctx, id); err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// salesReportHandler aggregates purchases per item over an optional
// RFC 3339 time range (from inclusive, to exclusive).
func (handlers *handlers) salesReportHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var from, to *time.Time
	if raw := req.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeErrorResponse(res, "invalid from timestamp", http.StatusBadRequest)
			return
		}
		from = &t
	}
	if raw := req.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeErrorResponse(res, "invalid to timestamp", http.StatusBadRequest)
			return
		}
		to = &t
	}

	report, err := handlers.app.ProcessSalesReport(ctx, from, to)
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	writeJSONResponse(res, http.StatusOK, report)
}

// getPreferenceHandler reads one per-operator dashboard setting; a key that
// was never written answers 404 so the dashboard falls back to its default.
func (handlers *handlers) getPreferenceHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	adminID, ok := auth.AdminIDFromContext(req.Context())
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	pref, err := handlers.app.ProcessGetPreference(ctx, adminID, chi.URLParam(req, "key"))
	if err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	writeJSONResponse(res, http.StatusOK, pref)
}

// setPreferenceHandler writes one per-operator dashboard setting.
func (handlers *handlers) setPreferenceHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	adminID, ok := auth.AdminIDFromContext(req.Context())
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if !decodeJSONBody(res, req, &body) {
		return
	}

	pref := models.Preference{Key: chi.URLParam(req, "key"), Value: body.Value}
	if err := handlers.app.ProcessSetPreference(ctx, adminID, pref); err != nil {
		handlers.writeMappedError(res, err)
		return
	}
	writeJSONResponse(res, http.StatusOK, pref)
}

// uploadHandler accepts a multipart image upload and returns its public
// URLs.
func (handlers *handlers) uploadHandler(res http.ResponseWriter, req *http.Request) {
	file, header, err := req.FormFile("file")
	if err != nil {
		writeErrorResponse(res, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	stored, err := handlers.uploads.Save(header.Filename, file)
	if err != nil {
		handlers.log.Sugar().Errorf("Failed to store an upload: %s", err)
		writeErrorResponse(res, "failed to store upload", http.StatusBadRequest)
		return
	}

	writeJSONResponse(res, http.StatusCreated, stored)
}

// writeMappedError converts app and storage errors into the API's taxonomy:
// field-level validation failures, stale references, and structured Postgres
// rejections each get their own shape and status.
func (handlers *handlers) writeMappedError(res http.ResponseWriter, err error) {
	var validation catalog.ValidationErrors
	if errors.As(err, &validation) {
		writeJSONResponse(res, http.StatusBadRequest, models.ValidationErrorResponse{
			Errors: "validation failed",
			Fields: validation,
		})
		return
	}

	if errors.Is(err, sql.ErrNoRows) {
		writeErrorResponse(res, "not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, app.ErrMissingPreferenceKey) {
		writeErrorResponse(res, "missing preference key", http.StatusBadRequest)
		return
	}

	var pgError *pgx_pgconn.PgError
	if ok := errors.As(err, &pgError); ok {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			writeErrorResponse(res, "a record with these values already exists", http.StatusConflict)
			return
		case pgerrcode.ForeignKeyViolation:
			writeErrorResponse(res, "the record is referenced by other data", http.StatusConflict)
			return
		case pgerrcode.CheckViolation:
			writeErrorResponse(res, "the change violates a data constraint", http.StatusBadRequest)
			return
		}
	}

	writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
}

// decodeJSONBody reads and unmarshals a request body, answering 400 on
// malformed input. It reports whether decoding succeeded.
func decodeJSONBody(res http.ResponseWriter, req *http.Request, v any) bool {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return false
	}
	if err := json.Unmarshal(requestBody, v); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// pathUUID parses a UUID URL parameter, answering 400 on a malformed value.
func pathUUID(res http.ResponseWriter, req *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(req, name))
	if err != nil {
		writeErrorResponse(res, "invalid identifier provided", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeJSONResponse(res http.ResponseWriter, statusCode int, v any) {
	result, err := json.Marshal(v)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
