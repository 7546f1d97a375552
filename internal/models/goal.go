package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus — состояние накопительной цели.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalCancelled GoalStatus = "cancelled"
)

// Valid сообщает, является ли статус цели допустимым.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalCancelled:
		return true
	default:
		return false
	}
}

// SavingsGoal — накопительная цель пользователя.
// CurrentAmount растёт взносами; при достижении TargetAmount
// статус автоматически переводится в GoalCompleted.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Icon          string
	Color         string
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProgressPercentage — доля накопленного от цели в процентах, не больше 100.
func (g *SavingsGoal) ProgressPercentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}

	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}

	return pct
}

// RemainingAmount — сколько осталось накопить, не меньше нуля.
func (g *SavingsGoal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}

	return remaining
}
