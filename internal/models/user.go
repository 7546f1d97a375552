// models содержит доменные сущности трекера личных финансов.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme — тема оформления интерфейса пользователя.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid сообщает, является ли значение темы допустимым.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// User — модель пользователя в системе.
// PasswordHash хранит bcrypt-хеш и никогда не покидает сервисный слой.
type User struct {
	ID              uuid.UUID
	Username        string
	Email           string
	PasswordHash    string
	ThemePreference Theme
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
