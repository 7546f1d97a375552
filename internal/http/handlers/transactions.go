package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/avoronova/go-fintrack/internal/errors"
	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	var in createTransactionRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	input := service.CreateTransactionInput{
		CategoryID:       in.CategoryID,
		Amount:           in.Amount,
		Type:             models.CategoryType(in.Type),
		Description:      in.Description,
		Date:             time.Time(in.Date),
		IsRecurring:      in.IsRecurring,
		RecurringEndDate: timePtrFromAPI(in.RecurringEndDate),
	}
	if in.RecurringFrequency != nil {
		freq := models.RecurringFrequency(*in.RecurringFrequency)
		input.RecurringFrequency = &freq
	}

	tx, err := h.Service.CreateTransaction(r.Context(), userID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, transactionFromModel(tx))
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	q := r.URL.Query()
	input := service.ListTransactionsInput{
		Type:      models.CategoryType(q.Get("type")),
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if v := q.Get("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidParam("category_id"))
			return
		}
		input.CategoryID = id
	}

	var err error
	if input.StartDate, err = queryDate(q, "start_date"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.EndDate, err = queryDate(q, "end_date"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if input.Month, err = queryInt(q, "month"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.Year, err = queryInt(q, "year"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.Page, err = queryInt(q, "page"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.PerPage, err = queryInt(q, "per_page"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.Service.ListTransactions(r.Context(), userID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageFromModel(page))
}

func (h *Handlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidParam("id"))
		return
	}

	tx, err := h.Service.TransactionByID(r.Context(), userID, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transactionFromModel(tx))
}

func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidParam("id"))
		return
	}

	var in updateTransactionRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	input := service.UpdateTransactionInput{
		CategoryID:       in.CategoryID,
		Amount:           in.Amount,
		Description:      in.Description,
		Date:             timePtrFromAPI(in.Date),
		IsRecurring:      in.IsRecurring,
		RecurringEndDate: timePtrFromAPI(in.RecurringEndDate),
	}
	if in.Type != nil {
		typ := models.CategoryType(*in.Type)
		input.Type = &typ
	}
	if in.RecurringFrequency != nil {
		freq := models.RecurringFrequency(*in.RecurringFrequency)
		input.RecurringFrequency = &freq
	}

	tx, err := h.Service.UpdateTransaction(r.Context(), userID, id, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transactionFromModel(tx))
}

func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidParam("id"))
		return
	}

	if err := h.Service.DeleteTransaction(r.Context(), userID, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
