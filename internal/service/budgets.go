package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"
)

var hundredPct = decimal.NewFromInt(100)

// CreateBudgetInput — входные данные создания бюджета.
// Пустой Period означает monthly.
type CreateBudgetInput struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     models.BudgetPeriod
	Month      int
	Year       int
}

// UpdateBudgetInput — частичное обновление бюджета. Категория и месяц
// неизменяемы: бюджет идентифицируется своей корзиной (категория, месяц, год).
type UpdateBudgetInput struct {
	Amount *decimal.Decimal
	Period *models.BudgetPeriod
}

// CreateBudget создает бюджет по расходной категории на месяц.
func (s *Service) CreateBudget(ctx context.Context, userID uuid.UUID, input CreateBudgetInput) (*models.BudgetProgress, error) {
	const op = "service.budgets.CreateBudget"

	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("budget amount must be greater than 0"))
	}

	if input.Period == "" {
		input.Period = models.PeriodMonthly
	}
	if !input.Period.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("period must be weekly or monthly"))
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, fmt.Errorf("%s: %w", op, invalidf("month must be between 1 and 12"))
	}
	if input.Year < 2000 || input.Year > 2100 {
		return nil, fmt.Errorf("%s: %w", op, invalidf("year must be between 2000 and 2100"))
	}

	category, err := s.CategoryByID(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if category.Type != models.CategoryExpense {
		return nil, fmt.Errorf("%s: %w", op, invalidf("budget category must be an expense category"))
	}

	now := time.Now().UTC()
	budget := &models.Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Period:     input.Period,
		Month:      input.Month,
		Year:       input.Year,
		CreatedAt:  now,
		UpdatedAt:  now,
		Category:   category,
	}

	if err := s.storage.SaveBudget(ctx, budget); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrBudgetExists)
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.budgetProgress(ctx, budget)
}

// BudgetByID возвращает бюджет с прогрессом и проверкой владения.
func (s *Service) BudgetByID(ctx context.Context, userID, budgetID uuid.UUID) (*models.BudgetProgress, error) {
	const op = "service.budgets.BudgetByID"

	budget, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.budgetProgress(ctx, budget)
}

// Budgets возвращает бюджеты пользователя с прогрессом.
// Ненулевые month/year сужают выборку.
func (s *Service) Budgets(ctx context.Context, userID uuid.UUID, month, year int) ([]models.BudgetProgress, error) {
	const op = "service.budgets.Budgets"

	if month != 0 && (month < 1 || month > 12) {
		return nil, fmt.Errorf("%s: %w", op, invalidf("month must be between 1 and 12"))
	}

	budgets, err := s.storage.BudgetsByUser(ctx, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]models.BudgetProgress, 0, len(budgets))
	for i := range budgets {
		progress, err := s.budgetProgress(ctx, &budgets[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, *progress)
	}

	return result, nil
}

// UpdateBudget обновляет сумму и/или период бюджета.
func (s *Service) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, input UpdateBudgetInput) (*models.BudgetProgress, error) {
	const op = "service.budgets.UpdateBudget"

	budget, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("budget amount must be greater than 0"))
		}
		budget.Amount = *input.Amount
	}

	if input.Period != nil {
		if !input.Period.Valid() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("period must be weekly or monthly"))
		}
		budget.Period = *input.Period
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateBudget(ctx, budget); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.budgetProgress(ctx, budget)
}

// DeleteBudget удаляет бюджет с проверкой владения.
func (s *Service) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	const op = "service.budgets.DeleteBudget"

	if _, err := s.ownedBudget(ctx, userID, budgetID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteBudget(ctx, budgetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ownedBudget загружает бюджет и сверяет владельца.
func (s *Service) ownedBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.Budget, error) {
	budget, err := s.storage.BudgetByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	if budget.UserID != userID {
		return nil, ErrNotFound
	}

	return budget, nil
}

// budgetProgress досчитывает к бюджету фактические траты его месяца.
func (s *Service) budgetProgress(ctx context.Context, budget *models.Budget) (*models.BudgetProgress, error) {
	const op = "service.budgets.budgetProgress"

	from, to := monthRange(budget.Year, time.Month(budget.Month))

	spent, err := s.storage.SpentByCategory(ctx, budget.UserID, budget.CategoryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	progress := &models.BudgetProgress{
		Budget:    *budget,
		Spent:     spent,
		Remaining: budget.Amount.Sub(spent),
	}

	if budget.Amount.IsPositive() {
		progress.Percentage, _ = spent.Div(budget.Amount).Mul(hundredPct).Float64()
	}

	return progress, nil
}
