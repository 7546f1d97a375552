package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringFrequency — периодичность повторяющейся транзакции.
type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// Valid сообщает, является ли периодичность допустимой.
func (f RecurringFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// Transaction — финансовая операция пользователя.
// Amount всегда положителен; знак определяется полем Type.
// Date — календарная дата операции (время обнуляется, зона UTC).
// Category заполняется выборками с JOIN и может быть nil.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CategoryID         uuid.UUID
	Amount             decimal.Decimal
	Type               CategoryType
	Description        string
	Date               time.Time
	IsRecurring        bool
	RecurringFrequency *RecurringFrequency
	RecurringEndDate   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Category *Category
}

// TransactionPage — страница списка транзакций вместе с метаданными пагинации.
type TransactionPage struct {
	Transactions []Transaction
	Total        int64
	Page         int
	PerPage      int
	Pages        int
}
