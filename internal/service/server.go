package service

import (
	"net/http"

	"famand_admin/internal/app"
	"famand_admin/internal/pkg/auth"
	"famand_admin/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration: the application's
// business logic, the handlers, the run address, and the logger.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
func NewService(app *app.App, uploads UploadStore, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, uploads, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up the chi router: logging middleware globally, the public
// sign-in, preview, and asset routes, and JWT authentication around every
// management route.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())

	router.Post("/api/auth", service.handlers.authHandler)
	router.Post("/api/packs/{id}/test-open", service.handlers.testOpenPackHandler)
	router.Handle("/assets/*", http.StripPrefix("/assets/",
		http.FileServer(http.Dir(service.handlers.uploads.Dir()))))

	router.Route("/", func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())

		r.Get("/api/items", service.handlers.listItemsHandler)
		r.Post("/api/items", service.handlers.createItemHandler)
		r.Get("/api/items/{id}", service.handlers.getItemHandler)
		r.Put("/api/items/{id}", service.handlers.updateItemHandler)
		r.Delete("/api/items/{id}", service.handlers.deleteItemHandler)
		r.Post("/api/items/{id}/activate", service.handlers.activateItemHandler)
		r.Post("/api/items/{id}/rotation", service.handlers.rotationHandler)

		r.Post("/api/packs/{id}/open", service.handlers.openPackHandler)

		r.Get("/api/cards", service.handlers.listCardsHandler)
		r.Post("/api/cards", service.handlers.saveCardHandler)

		r.Get("/api/announcements", service.handlers.listAnnouncementsHandler)
		r.Post("/api/announcements", service.handlers.saveAnnouncementHandler)
		r.Delete("/api/announcements/{id}", service.handlers.deleteAnnouncementHandler)

		r.Get("/api/customizations", service.handlers.listCustomizationsHandler)
		r.Post("/api/customizations", service.handlers.saveCustomizationHandler)
		r.Delete("/api/customizations/{id}", service.handlers.deleteCustomizationHandler)

		r.Get("/api/reports/sales", service.handlers.salesReportHandler)

		r.Get("/api/prefs/{key}", service.handlers.getPreferenceHandler)
		r.Put("/api/prefs/{key}", service.handlers.setPreferenceHandler)

		r.Post("/api/uploads", service.handlers.uploadHandler)
	})
	return router
}
