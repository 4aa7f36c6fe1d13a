package assistant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/ping", h.Ping)
	r.Post("/chat", h.Chat)
	r.Post("/metas/sugerir", h.SuggestGoals)

	return r
}
