package handlers

import (
	"net/http"

	apierrors "github.com/avoronova/go-fintrack/internal/errors"
	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	var in createGoalRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	input := service.CreateGoalInput{
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		TargetDate:    timePtrFromAPI(in.TargetDate),
		Icon:          in.Icon,
		Color:         in.Color,
		Status:        models.GoalStatus(in.Status),
	}

	goal, err := h.Service.CreateGoal(r.Context(), userID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, goalFromModel(goal))
}

// ListGoals возвращает цели пользователя; query-параметр status фильтрует
// по состоянию (active|completed|cancelled).
func (h *Handlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	status := models.GoalStatus(r.URL.Query().Get("status"))

	goals, err := h.Service.Goals(r.Context(), userID, status)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalsFromModel(goals))
}

func (h *Handlers) GetGoal(w http.ResponseWriter, r *http.Request) {
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

	goal, err := h.Service.GoalByID(r.Context(), userID, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalFromModel(goal))
}

func (h *Handlers) UpdateGoal(w http.ResponseWriter, r *http.Request) {
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

	var in updateGoalRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	input := service.UpdateGoalInput{
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		TargetDate:    timePtrFromAPI(in.TargetDate),
		Icon:          in.Icon,
		Color:         in.Color,
	}
	if in.Status != nil {
		status := models.GoalStatus(*in.Status)
		input.Status = &status
	}

	goal, err := h.Service.UpdateGoal(r.Context(), userID, id, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalFromModel(goal))
}

// Contribute пополняет цель; достижение TargetAmount переводит её в completed.
func (h *Handlers) Contribute(w http.ResponseWriter, r *http.Request) {
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

	var in contributeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	goal, err := h.Service.Contribute(r.Context(), userID, id, in.Amount)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalFromModel(goal))
}

func (h *Handlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.DeleteGoal(r.Context(), userID, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
