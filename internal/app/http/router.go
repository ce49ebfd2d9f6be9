package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"quotedesk/backend/internal/app/config"
	"quotedesk/backend/internal/app/http/handlers"
	"quotedesk/backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))
		r.Use(middleware.ForwardedIdentity)

		r.Get("/catalog", h.ListCatalog)
		r.Post("/wizard/advance", h.WizardAdvance)
		r.Post("/wizard/back", h.WizardBack)
		r.Post("/register", h.Register)

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.ListQuotes())
			r.Post("/preview", h.PreviewQuote)
			r.Post("/pdf", h.QuotePDF)
			r.Post("/send", h.SendQuote)
			r.Patch("/{id}/status", h.UpdateQuoteStatus)
			r.With(middleware.RequireRole(middleware.RoleAdmin)).Get("/submissions", h.ListSubmissions)
		})

		r.Route("/agents", func(r chi.Router) {
			r.Get("/", h.ListAgents())
			r.Get("/export.csv", h.ExportAgents())
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(middleware.RoleAdmin))
				r.Post("/", h.CreateAgent())
				r.Put("/{id}", h.UpdateAgent())
				r.Delete("/{id}", h.DeleteAgent())
				r.Post("/{id}/toggle", h.ToggleAgent())
			})
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.ListClients())
			r.Get("/export.csv", h.ExportClients())
			r.Post("/", h.CreateClient())
			r.Put("/{id}", h.UpdateClient())
			r.Delete("/{id}", h.DeleteClient())
			r.Post("/{id}/toggle", h.ToggleClient())
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts())
			r.Get("/export.csv", h.ExportProducts())
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(middleware.RoleAdmin))
				r.Post("/", h.CreateProduct())
				r.Put("/{id}", h.UpdateProduct())
				r.Delete("/{id}", h.DeleteProduct())
				r.Post("/{id}/toggle", h.ToggleProduct())
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.ListTransactions())
			r.Post("/", h.CreateTransaction())
			r.Put("/{id}", h.UpdateTransaction())
			r.Delete("/{id}", h.DeleteTransaction())
		})

		r.Route("/payouts", func(r chi.Router) {
			r.Get("/", h.ListPayouts())
			r.Get("/export.csv", h.ExportPayouts())
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(middleware.RoleAdmin))
				r.Post("/generate", h.GeneratePayouts)
				r.Patch("/{id}/status", h.UpdatePayoutStatus)
				r.Delete("/{id}", h.DeletePayout())
			})
		})
	})

	return r
}
