package invoice

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/monevo-app/monevo-api/internal/auth"
	"github.com/monevo-app/monevo-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	cardID, err := uuid.Parse(q.Get("conta_cartao_id"))
	if err != nil {
		http.Error(w, "conta_cartao_id inválido", http.StatusBadRequest)
		return
	}

	var start, end *time.Time
	if raw := q.Get("inicio"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "inicio inválido", http.StatusBadRequest)
			return
		}
		start = &t
	}
	if raw := q.Get("fim"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "fim inválido", http.StatusBadRequest)
			return
		}
		end = &t
	}
	if (start == nil) != (end == nil) {
		http.Error(w, "inicio e fim devem ser informados juntos", http.StatusBadRequest)
		return
	}

	invoice, err := h.service.Generate(r.Context(), uuid.MustParse(claims.UserID), cardID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound):
			http.Error(w, "conta não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrNotCard), errors.Is(err, ErrMissingClosing):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			log.WithError(err).Error("Failed to generate invoice")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, invoice)
}
