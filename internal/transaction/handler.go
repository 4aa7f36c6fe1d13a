package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/monevo-app/monevo-api/internal/auth"
	"github.com/monevo-app/monevo-api/internal/config"
	util "github.com/monevo-app/monevo-api/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func isValidationErr(err error) bool {
	return errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidPercent) ||
		errors.Is(err, ErrMissingDate)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Create(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.WithError(err).Error("Failed to create transaction")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.service.List(r.Context(), uuid.MustParse(claims.UserID), filter)
	if err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.WithError(err).Error("Failed to list transactions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, txs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.withTransaction(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return h.service.Get(r.Context(), id, userID)
	}, http.StatusOK)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.withTransaction(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return h.service.Update(r.Context(), id, userID, dto)
	}, http.StatusOK)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.withTransaction(w, r, func(id, userID uuid.UUID) (interface{}, error) {
		return nil, h.service.Delete(r.Context(), id, userID)
	}, http.StatusNoContent)
}

func (h *Handler) withTransaction(w http.ResponseWriter, r *http.Request, fn func(id, userID uuid.UUID) (interface{}, error), status int) {
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
		case errors.Is(err, ErrTransactionNotFound):
			http.Error(w, "transação não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case isValidationErr(err):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			log.WithError(err).Error("Transaction operation failed")
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

func parseListFilter(r *http.Request) (ListFilter, error) {
	var filter ListFilter
	q := r.URL.Query()

	parseID := func(param string, dst **uuid.UUID) error {
		raw := q.Get(param)
		if raw == "" {
			return nil
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return errors.New("invalid " + param)
		}
		*dst = &id
		return nil
	}
	if err := parseID("conta_id", &filter.AccountID); err != nil {
		return filter, err
	}
	if err := parseID("categoria_id", &filter.CategoryID); err != nil {
		return filter, err
	}
	if err := parseID("meta_id", &filter.GoalID); err != nil {
		return filter, err
	}

	if raw := q.Get("tipo"); raw != "" {
		kind := TransactionKind(raw)
		filter.Kind = &kind
	}

	parseDate := func(param string, dst **util.LocalDate) error {
		raw := q.Get(param)
		if raw == "" {
			return nil
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return errors.New("invalid " + param)
		}
		*dst = &util.LocalDate{Time: t}
		return nil
	}
	if err := parseDate("inicio", &filter.Start); err != nil {
		return filter, err
	}
	if err := parseDate("fim", &filter.End); err != nil {
		return filter, err
	}

	if raw := q.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, errors.New("invalid skip")
		}
		filter.Skip = n
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = n
	}

	return filter, nil
}
