package request

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers project request routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/v1/project-requests", func(r chi.Router) {
		r.Get("/", h.ListRequests)
		r.Get("/{id}", h.GetRequest)
		r.Get("/{id}/brief", h.GetBrief)
	})
}
