package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/ping", h.ping)
	router.Get("/info", h.info)

	router.Get("/accounts", h.getAccounts)
	router.Get("/transactions", h.getAllTransactions)
	router.Get("/transactions/{accountID}", h.getAccountTransactions)

	router.Get("/backups", h.listBackups)

	// body-carrying routes
	router.Group(func(r chi.Router) {
		r.Use(h.withHashCheck)

		r.Post("/transactions", h.uploadTransactions)
		r.Post("/sync/prepare", h.prepareSync)
		r.Post("/sync/execute", h.executeSync)
		r.Post("/backups/restore", h.restoreBackup)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
