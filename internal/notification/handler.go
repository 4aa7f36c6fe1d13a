package notification

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := h.service.List(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list notifications")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, notifications)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.withNotification(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return h.service.MarkRead(r.Context(), id, userID)
	}, http.StatusOK)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.withNotification(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return nil, h.service.Delete(r.Context(), id, userID)
	}, http.StatusNoContent)
}

func (h *Handler) withNotification(w http.ResponseWriter, r *http.Request, fn func(id, userID uuid.UUID) (interface{}, error), status int) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	result, err := fn(id, uuid.MustParse(claims.UserID))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotificationNotFound):
			http.Error(w, "notificação não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Notification operation failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	if result == nil {
		w.WriteHeader(status)
		return
	}
	config.JSON(w, status, result)
}
