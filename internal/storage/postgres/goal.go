package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const goalColumns = `id, user_id, name, target_amount, current_amount, target_date,
	icon, color, status, created_at, updated_at`

// SaveGoal создает новую накопительную цель.
func (s *Storage) SaveGoal(ctx context.Context, goal *models.SavingsGoal) error {
	const op = "storage.postgres.SaveGoal"

	query := `
		INSERT INTO savings_goals(id, user_id, name, target_amount, current_amount, target_date,
			icon, color, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.Exec(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.Icon,
		goal.Color,
		string(goal.Status),
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GoalByID находит цель по ID.
func (s *Storage) GoalByID(ctx context.Context, id uuid.UUID) (*models.SavingsGoal, error) {
	const op = "storage.postgres.GoalByID"

	query := fmt.Sprintf(`SELECT %s FROM savings_goals WHERE id = $1`, goalColumns)

	goal, err := scanGoal(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return goal, nil
}

// GoalsByUser возвращает цели пользователя, опционально по статусу.
func (s *Storage) GoalsByUser(ctx context.Context, userID uuid.UUID, status models.GoalStatus) ([]models.SavingsGoal, error) {
	const op = "storage.postgres.GoalsByUser"

	builder := psql.Select(goalColumns).
		From("savings_goals").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != "" {
		builder = builder.Where(sq.Eq{"status": string(status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		goals = append(goals, *goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return goals, nil
}

// UpdateGoal сохраняет изменяемые поля цели, включая накопленную сумму и статус.
func (s *Storage) UpdateGoal(ctx context.Context, goal *models.SavingsGoal) error {
	const op = "storage.postgres.UpdateGoal"

	query := `
		UPDATE savings_goals
		SET name = $2, target_amount = $3, current_amount = $4, target_date = $5,
			icon = $6, color = $7, status = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		goal.ID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.Icon,
		goal.Color,
		string(goal.Status),
		goal.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteGoal удаляет цель.
func (s *Storage) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteGoal"

	tag, err := s.db.Exec(ctx, `DELETE FROM savings_goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// scanGoal — скан одной строки savings_goals.
func scanGoal(row pgx.Row) (*models.SavingsGoal, error) {
	var (
		goal   models.SavingsGoal
		status string
	)

	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
		&goal.Icon,
		&goal.Color,
		&status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	goal.Status = models.GoalStatus(status)

	return &goal, nil
}
