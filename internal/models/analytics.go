package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary — сводка по доходам и расходам за период.
// SavingsRate — доля отложенного в процентах от дохода (0 при нулевом доходе).
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetBalance       decimal.Decimal
	SavingsRate      float64
	TransactionCount int64
	IncomeCount      int64
	ExpenseCount     int64
	PeriodStart      time.Time
	PeriodEnd        time.Time
}

// CategorySpending — агрегат трат по одной категории за период.
// Percentage — доля категории в общей сумме по всем категориям выборки.
type CategorySpending struct {
	CategoryID uuid.UUID
	Name       string
	Icon       string
	Color      string
	Amount     decimal.Decimal
	Count      int64
	Percentage float64
}

// TrendPoint — суммарные доходы и расходы за один месяц.
// Date — первое число месяца.
type TrendPoint struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}
