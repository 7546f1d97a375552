package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avoronova/go-fintrack/internal/models"
)

const (
	defaultTrendMonths = 6
	maxTrendMonths     = 24
)

// Summary возвращает сводку доходов/расходов за месяц.
// Нулевые month/year означают текущий месяц/год.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID, month, year int) (*models.Summary, error) {
	const op = "service.analytics.Summary"

	from, to, err := analyticsPeriod(month, year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary, err := s.storage.Summary(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return summary, nil
}

// SpendingByCategory возвращает разбивку по категориям за месяц.
// Пустой тип означает expense, нулевые month/year — текущий месяц/год.
func (s *Service) SpendingByCategory(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType, month, year int) ([]models.CategorySpending, error) {
	const op = "service.analytics.SpendingByCategory"

	if categoryType == "" {
		categoryType = models.CategoryExpense
	}
	if !categoryType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("type must be income or expense"))
	}

	from, to, err := analyticsPeriod(month, year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	spending, err := s.storage.SpendingByCategory(ctx, userID, categoryType, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return spending, nil
}

// Trends возвращает помесячные суммы за последние months месяцев,
// включая текущий. Нулевое значение означает 6, максимум — 24.
func (s *Service) Trends(ctx context.Context, userID uuid.UUID, months int) ([]models.TrendPoint, error) {
	const op = "service.analytics.Trends"

	if months < 1 {
		months = defaultTrendMonths
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	now := time.Now().UTC()
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	from := curStart.AddDate(0, -(months - 1), 0)
	to := curStart.AddDate(0, 1, -1)

	points, err := s.storage.Trends(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return points, nil
}

// analyticsPeriod превращает month/year в границы месяца [from, to].
// Нулевые значения подменяются текущими.
func analyticsPeriod(month, year int) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, invalidf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, time.Time{}, invalidf("year must be between 2000 and 2100")
	}

	from, to := monthRange(year, time.Month(month))

	return from, to, nil
}
