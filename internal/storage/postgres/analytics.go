package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronova/go-fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary — доходы/расходы/баланс за период [from, to].
// NetBalance и SavingsRate досчитываются здесь же из агрегатов.
func (s *Storage) Summary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*models.Summary, error) {
	const op = "storage.postgres.Summary"

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE type = 'income'),
			COUNT(*) FILTER (WHERE type = 'expense')
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`

	summary := models.Summary{
		PeriodStart: from,
		PeriodEnd:   to,
	}

	err := s.db.QueryRow(ctx, query, userID, from, to).Scan(
		&summary.TotalIncome,
		&summary.TotalExpenses,
		&summary.TransactionCount,
		&summary.IncomeCount,
		&summary.ExpenseCount,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpenses)
	if summary.TotalIncome.IsPositive() {
		summary.SavingsRate, _ = summary.NetBalance.Div(summary.TotalIncome).Mul(hundred).Float64()
	}

	return &summary, nil
}

// SpendingByCategory — агрегаты по категориям заданного типа за период.
// Percentage — доля категории в общей сумме выборки.
func (s *Storage) SpendingByCategory(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType, from, to time.Time) ([]models.CategorySpending, error) {
	const op = "storage.postgres.SpendingByCategory"

	query := `
		SELECT c.id, c.name, c.icon, c.color, SUM(t.amount), COUNT(t.id)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.type = $2 AND t.date >= $3 AND t.date <= $4
		GROUP BY c.id, c.name, c.icon, c.color
		ORDER BY SUM(t.amount) DESC
	`

	rows, err := s.db.Query(ctx, query, userID, string(categoryType), from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var (
		result []models.CategorySpending
		total  = decimal.Zero
	)

	for rows.Next() {
		var item models.CategorySpending
		if err := rows.Scan(
			&item.CategoryID,
			&item.Name,
			&item.Icon,
			&item.Color,
			&item.Amount,
			&item.Count,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		total = total.Add(item.Amount)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if total.IsPositive() {
		for i := range result {
			result[i].Percentage, _ = result[i].Amount.Div(total).Mul(hundred).Float64()
		}
	}

	return result, nil
}

// Trends — суммы доходов/расходов по месяцам за период [from, to].
// Date точки — первое число месяца; месяцы без транзакций в выборку не попадают.
func (s *Storage) Trends(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TrendPoint, error) {
	const op = "storage.postgres.Trends"

	query := `
		SELECT
			date_trunc('month', date)::date,
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY date_trunc('month', date)
		ORDER BY date_trunc('month', date) ASC
	`

	rows, err := s.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var points []models.TrendPoint
	for rows.Next() {
		var point models.TrendPoint
		if err := rows.Scan(&point.Date, &point.Income, &point.Expense); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		point.Net = point.Income.Sub(point.Expense)
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return points, nil
}
