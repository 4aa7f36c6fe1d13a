package account

import (
	"encoding/json"
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	a, err := h.service.Create(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidType) || errors.Is(err, ErrInvalidCardDay) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.WithError(err).Error("Failed to create account")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, a)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accounts, err := h.service.List(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list accounts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, accounts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.withAccount(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return h.service.Get(r.Context(), id, userID)
	}, http.StatusOK)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.withAccount(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return h.service.Update(r.Context(), id, userID, dto)
	}, http.StatusOK)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.withAccount(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return nil, h.service.Delete(r.Context(), id, userID)
	}, http.StatusNoContent)
}

func (h *Handler) withAccount(w http.ResponseWriter, r *http.Request, fn func(id, userID uuid.UUID) (interface{}, error), status int) {
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
		case errors.Is(err, ErrAccountNotFound):
			http.Error(w, "conta não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidCardDay):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			log.WithError(err).Error("Account operation failed")
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
