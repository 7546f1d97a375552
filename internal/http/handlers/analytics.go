package handlers

import (
	"net/http"

	apierrors "github.com/avoronova/go-fintrack/internal/errors"
	"github.com/avoronova/go-fintrack/internal/models"
)

// Summary отдаёт сводку доходов и расходов за месяц (по умолчанию текущий).
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
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

	summary, err := h.Service.Summary(r.Context(), userID, month, year)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryFromModel(summary))
}

// SpendingByCategory отдаёт разбивку по категориям за месяц
// (type по умолчанию expense).
func (h *Handlers) SpendingByCategory(w http.ResponseWriter, r *http.Request) {
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

	categoryType := models.CategoryType(q.Get("type"))

	spending, err := h.Service.SpendingByCategory(r.Context(), userID, categoryType, month, year)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, spendingFromModel(spending))
}

// Trends отдаёт помесячную динамику за последние months месяцев.
func (h *Handlers) Trends(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	months, err := queryInt(r.URL.Query(), "months")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	points, err := h.Service.Trends(r.Context(), userID, months)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trendsFromModel(points))
}
