package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod — горизонт бюджета.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
)

// Valid сообщает, является ли период бюджета допустимым.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodWeekly || p == PeriodMonthly
}

// Budget — лимит расходов по категории на конкретный месяц.
// Пара (UserID, CategoryID, Month, Year) уникальна.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     BudgetPeriod
	Month      int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *Category
}

// BudgetProgress — бюджет вместе с фактическими тратами за его месяц.
// Percentage считается от Amount и может превышать 100.
type BudgetProgress struct {
	Budget     Budget
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64
}
