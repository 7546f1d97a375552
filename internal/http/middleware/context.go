package middleware

import (
	"context"

	"github.com/google/uuid"
)

// CtxKey — типизированный ключ для значений, которые мидлвары кладут в контекст.
type CtxKey string

const (
	// CtxRequestID — request_id текущего запроса (строка).
	CtxRequestID CtxKey = "request_id"
	// CtxAuthToken — "сырой" Bearer-токен из Authorization (строка).
	CtxAuthToken CtxKey = "auth_token"
	// CtxUserID — ID аутентифицированного пользователя (uuid.UUID),
	// появляется только после RequireAuth.
	CtxUserID CtxKey = "user_id"
)

// TokenFromContext достаёт сырой Bearer-токен, положенный AuthBearer.
func TokenFromContext(ctx context.Context) (string, bool) {
	if v := ctx.Value(CtxAuthToken); v != nil {
		if tok, ok := v.(string); ok && tok != "" {
			return tok, true
		}
	}
	return "", false
}

// UserIDFromContext достаёт ID пользователя, положенный RequireAuth.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if v := ctx.Value(CtxUserID); v != nil {
		if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
			return id, true
		}
	}
	return uuid.Nil, false
}
