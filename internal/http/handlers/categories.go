package handlers

import (
	"net/http"

	apierrors "github.com/avoronova/go-fintrack/internal/errors"
	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	var in createCategoryRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	category, err := h.Service.CreateCategory(r.Context(), userID, in.Name, models.CategoryType(in.Type), in.Icon, in.Color)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryFromModel(category))
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	categoryType := models.CategoryType(r.URL.Query().Get("type"))

	categories, err := h.Service.Categories(r.Context(), userID, categoryType)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesFromModel(categories))
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
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

	category, err := h.Service.CategoryByID(r.Context(), userID, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoryFromModel(category))
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
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

	var in updateCategoryRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	category, err := h.Service.UpdateCategory(r.Context(), userID, id, in.Name, in.Icon, in.Color)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoryFromModel(category))
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.DeleteCategory(r.Context(), userID, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
