package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType — тип категории: доход или расход.
// Тот же enum используется и для типа транзакции.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Valid сообщает, является ли тип категории допустимым.
func (t CategoryType) Valid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category — категория операций пользователя.
// Пара (UserID, Name, Type) уникальна; Icon и Color задают отображение в UI.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
