package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Колонки бюджета вместе с категорией (JOIN categories c).
const budgetJoinColumns = `b.id, b.user_id, b.category_id, b.amount, b.period, b.month, b.year,
	b.created_at, b.updated_at,
	c.id, c.user_id, c.name, c.type, c.icon, c.color, c.created_at, c.updated_at`

// SaveBudget создает новый бюджет.
func (s *Storage) SaveBudget(ctx context.Context, budget *models.Budget) error {
	const op = "storage.postgres.SaveBudget"

	query := `
		INSERT INTO budgets(id, user_id, category_id, amount, period, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		budget.ID,
		budget.UserID,
		budget.CategoryID,
		budget.Amount,
		string(budget.Period),
		budget.Month,
		budget.Year,
		budget.CreatedAt,
		budget.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			case pgerrcode.ForeignKeyViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BudgetByID находит бюджет по ID вместе с категорией.
func (s *Storage) BudgetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	const op = "storage.postgres.BudgetByID"

	query := fmt.Sprintf(`
		SELECT %s
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1
	`, budgetJoinColumns)

	budget, err := scanBudget(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return budget, nil
}

// BudgetsByUser возвращает бюджеты пользователя.
// Ненулевые month/year сужают выборку до одного периода.
func (s *Storage) BudgetsByUser(ctx context.Context, userID uuid.UUID, month, year int) ([]models.Budget, error) {
	const op = "storage.postgres.BudgetsByUser"

	builder := psql.Select(budgetJoinColumns).
		From("budgets b").
		Join("categories c ON c.id = b.category_id").
		Where(sq.Eq{"b.user_id": userID}).
		OrderBy("b.year DESC", "b.month DESC", "c.name ASC")

	if month != 0 {
		builder = builder.Where(sq.Eq{"b.month": month})
	}

	if year != 0 {
		builder = builder.Where(sq.Eq{"b.year": year})
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

	var budgets []models.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		budgets = append(budgets, *budget)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return budgets, nil
}

// UpdateBudget сохраняет сумму и период бюджета.
func (s *Storage) UpdateBudget(ctx context.Context, budget *models.Budget) error {
	const op = "storage.postgres.UpdateBudget"

	query := `
		UPDATE budgets
		SET amount = $2, period = $3, month = $4, year = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		budget.ID,
		budget.Amount,
		string(budget.Period),
		budget.Month,
		budget.Year,
		budget.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteBudget удаляет бюджет.
func (s *Storage) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteBudget"

	tag, err := s.db.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// scanBudget — скан строки бюджета вместе с категорией.
func scanBudget(row pgx.Row) (*models.Budget, error) {
	var (
		budget   models.Budget
		period   string
		category models.Category
		ctype    string
	)

	err := row.Scan(
		&budget.ID,
		&budget.UserID,
		&budget.CategoryID,
		&budget.Amount,
		&period,
		&budget.Month,
		&budget.Year,
		&budget.CreatedAt,
		&budget.UpdatedAt,
		&category.ID,
		&category.UserID,
		&category.Name,
		&ctype,
		&category.Icon,
		&category.Color,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	budget.Period = models.BudgetPeriod(period)
	category.Type = models.CategoryType(ctype)
	budget.Category = &category

	return &budget, nil
}
