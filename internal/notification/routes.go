package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Patch("/{id}/lida", h.MarkRead)
	r.Delete("/{id}", h.Delete)

	return r
}
