package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind JWT authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/items", h.listItems)
			r.Post("/items", h.createItem)
			r.Get("/items/{id}", h.getItem)
			r.Put("/items/{id}", h.updateItem)
			r.Delete("/items/{id}", h.deleteItem)

			r.Post("/kafka", h.publishMessage)

			r.Post("/tasks", h.enqueueTask)
			r.Get("/tasks/{id}", h.getTaskResult)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
