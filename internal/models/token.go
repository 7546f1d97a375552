package models

import "time"

// TokenPair — пара самодостаточных JWT для аутентификации.
// ExpiresAt относится к access-токену; refresh-токен живёт дольше
// и нигде на сервере не сохраняется.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
