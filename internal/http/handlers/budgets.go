package handlers

import (
	"net/http"

	apierrors "github.com/avoronova/go-fintrack/internal/errors"
	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	var in createBudgetRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	input := service.CreateBudgetInput{
		CategoryID: in.CategoryID,
		Amount:     in.Amount,
		Period:     models.BudgetPeriod(in.Period),
		Month:      in.Month,
		Year:       in.Year,
	}

	budget, err := h.Service.CreateBudget(r.Context(), userID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, budgetFromModel(budget))
}

// ListBudgets возвращает бюджеты пользователя с прогрессом.
// month/year опциональны: без них отдаются все бюджеты.
func (h *Handlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	q := r.URL.Query()

	month, err := queryInt(q, "month")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	year, err := queryInt(q, "year")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	budgets, err := h.Service.Budgets(r.Context(), userID, month, year)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, budgetsFromModel(budgets))
}

func (h *Handlers) GetBudget(w http.ResponseWriter, r *http.Request) {
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

	budget, err := h.Service.BudgetByID(r.Context(), userID, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, budgetFromModel(budget))
}

func (h *Handlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
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

	var in updateBudgetRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	input := service.UpdateBudgetInput{Amount: in.Amount}
	if in.Period != nil {
		period := models.BudgetPeriod(*in.Period)
		input.Period = &period
	}

	budget, err := h.Service.UpdateBudget(r.Context(), userID, id, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, budgetFromModel(budget))
}

func (h *Handlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.DeleteBudget(r.Context(), userID, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
