package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/ws", h.serveWS)
	router.Get("/api/version/", h.getServerVersion)

	// static chat page
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/*", h.static.ServeHTTP)
		r.Head("/*", h.static.ServeHTTP)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
