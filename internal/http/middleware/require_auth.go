package middleware

import (
	"context"
	"net/http"

	apierrors "github.com/avoronova/go-fintrack/internal/errors"
	"github.com/avoronova/go-fintrack/internal/service"
	"github.com/google/uuid"
)

// AccessValidator проверяет access-токен и возвращает ID его владельца.
// Интерфейс объявлен на стороне потребителя, в тестах его удобно подменять.
type AccessValidator interface {
	ValidateAccessToken(ctx context.Context, accessToken string) (uuid.UUID, error)
}

// RequireAuth закрывает маршрут аутентификацией:
//   - без Bearer-токена — 401/invalid_token;
//   - битый/просроченный токен — 401 (invalid_token/token_expired);
//   - валидный, но не access (например, refresh) — 422/wrong_token_kind.
//
// При успехе кладёт ID пользователя в контекст по ключу CtxUserID.
func RequireAuth(v AccessValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromContext(r.Context())
			if !ok {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			userID, err := v.ValidateAccessToken(r.Context(), token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
