package handlers

import (
	"net/http"

	apierrors "github.com/avoronova/go-fintrack/internal/errors"
	"github.com/avoronova/go-fintrack/internal/http/middleware"
	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/service"
)

func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	user, tokens, err := h.Service.RegisterUser(r.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authFromModel(user, tokens))
}

func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	user, tokens, err := h.Service.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authFromModel(user, tokens))
}

// RefreshToken обменивает refresh-токен на новый access-токен.
// Refresh передаётся так же, как access на защищённых маршрутах:
// в Authorization: Bearer. Access-токен здесь отклоняется с 422.
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	access, err := h.Service.RefreshToken(r.Context(), token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	user, err := h.Service.Profile(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	var in updateProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), userID, in.Username, in.Email)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

func (h *Handlers) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	var in updateThemeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	user, err := h.Service.UpdateTheme(r.Context(), userID, models.Theme(in.ThemePreference))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		apierrors.WriteError(w, r, errNoUser())
		return
	}

	var in changePasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidBody())
		return
	}

	if err := h.Service.ChangePassword(r.Context(), userID, in.CurrentPassword, in.NewPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
