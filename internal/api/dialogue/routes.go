package dialogue

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers dialogue routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/v1/dialogues", func(r chi.Router) {
		r.Post("/", h.StartDialogue)
		r.Get("/{id}", h.GetDialogue)
		r.Get("/{id}/brief", h.GetBrief)
		r.Post("/{id}/messages", h.PostMessage)
		r.Post("/{id}/cancel", h.CancelDialogue)
	})
}
