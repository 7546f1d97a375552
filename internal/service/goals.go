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

const (
	defaultGoalIcon  = "target"
	defaultGoalColor = "#10b981"
)

// CreateGoalInput — входные данные создания накопительной цели.
// Пустые Icon/Color/Status заменяются значениями по умолчанию.
type CreateGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Icon          string
	Color         string
	Status        models.GoalStatus
}

// UpdateGoalInput — частичное обновление цели. nil означает «поле не менять».
type UpdateGoalInput struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
	Icon          *string
	Color         *string
	Status        *models.GoalStatus
}

// CreateGoal создает накопительную цель.
func (s *Service) CreateGoal(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*models.SavingsGoal, error) {
	const op = "service.goals.CreateGoal"

	name, err := validateName(input.Name, 200)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("target amount must be greater than 0"))
	}

	if input.CurrentAmount.IsNegative() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("current amount must not be negative"))
	}

	if input.Icon == "" {
		input.Icon = defaultGoalIcon
	}
	if err := validateIcon(input.Icon); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Color == "" {
		input.Color = defaultGoalColor
	}
	if err := validateColor(input.Color); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Status == "" {
		input.Status = models.GoalActive
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("status must be active, completed or cancelled"))
	}

	now := time.Now().UTC()
	goal := &models.SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		TargetDate:    normalizeDatePtr(input.TargetDate),
		Icon:          input.Icon,
		Color:         input.Color,
		Status:        input.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.storage.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return goal, nil
}

// GoalByID возвращает цель с проверкой владения.
func (s *Service) GoalByID(ctx context.Context, userID, goalID uuid.UUID) (*models.SavingsGoal, error) {
	const op = "service.goals.GoalByID"

	goal, err := s.storage.GoalByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if goal.UserID != userID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return goal, nil
}

// Goals возвращает цели пользователя, опционально по статусу (пустой — все).
func (s *Service) Goals(ctx context.Context, userID uuid.UUID, status models.GoalStatus) ([]models.SavingsGoal, error) {
	const op = "service.goals.Goals"

	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("status must be active, completed or cancelled"))
	}

	goals, err := s.storage.GoalsByUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return goals, nil
}

// UpdateGoal выполняет частичное обновление цели.
// Достижение цели по итогам обновления переводит её в completed.
func (s *Service) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, input UpdateGoalInput) (*models.SavingsGoal, error) {
	const op = "service.goals.UpdateGoal"

	goal, err := s.GoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Name != nil {
		name, err := validateName(*input.Name, 200)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("target amount must be greater than 0"))
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("current amount must not be negative"))
		}
		goal.CurrentAmount = *input.CurrentAmount
	}

	if input.TargetDate != nil {
		goal.TargetDate = normalizeDatePtr(input.TargetDate)
	}

	if input.Icon != nil {
		if err := validateIcon(*input.Icon); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		goal.Icon = *input.Icon
	}

	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		goal.Color = *input.Color
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("status must be active, completed or cancelled"))
		}
		goal.Status = *input.Status
	}

	completeGoalIfReached(goal)
	goal.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateGoal(ctx, goal); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return goal, nil
}

// DeleteGoal удаляет цель с проверкой владения.
func (s *Service) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	const op = "service.goals.DeleteGoal"

	if _, err := s.GoalByID(ctx, userID, goalID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteGoal(ctx, goalID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Contribute добавляет взнос к активной цели.
// Достижение TargetAmount переводит цель в completed.
func (s *Service) Contribute(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, error) {
	const op = "service.goals.Contribute"

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("contribution amount must be greater than 0"))
	}

	goal, err := s.GoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if goal.Status != models.GoalActive {
		return nil, fmt.Errorf("%s: %w", op, invalidf("goal is not active"))
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	completeGoalIfReached(goal)
	goal.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateGoal(ctx, goal); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return goal, nil
}

// completeGoalIfReached переводит активную цель в completed при достижении цели.
func completeGoalIfReached(goal *models.SavingsGoal) {
	if goal.Status == models.GoalActive && goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.Status = models.GoalCompleted
	}
}
