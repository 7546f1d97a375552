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
	defaultPerPage = 20
	maxPerPage     = 100
)

// CreateTransactionInput — входные данные создания транзакции.
type CreateTransactionInput struct {
	CategoryID         uuid.UUID
	Amount             decimal.Decimal
	Type               models.CategoryType
	Description        string
	Date               time.Time
	IsRecurring        bool
	RecurringFrequency *models.RecurringFrequency
	RecurringEndDate   *time.Time
}

// UpdateTransactionInput — частичное обновление транзакции.
// nil означает «поле не менять». Сброс IsRecurring в false очищает
// периодичность и дату окончания.
type UpdateTransactionInput struct {
	CategoryID         *uuid.UUID
	Amount             *decimal.Decimal
	Type               *models.CategoryType
	Description        *string
	Date               *time.Time
	IsRecurring        *bool
	RecurringFrequency *models.RecurringFrequency
	RecurringEndDate   *time.Time
}

// ListTransactionsInput — фильтры списка транзакций.
// Month/Year применяются только когда заданы оба; диапазон месяца
// пересекается с StartDate/EndDate, если те тоже заданы.
type ListTransactionsInput struct {
	Type       models.CategoryType
	CategoryID uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Month      int
	Year       int
	Search     string
	Page       int
	PerPage    int
	SortBy     string
	SortOrder  string
}

// CreateTransaction создает транзакцию. Категория должна принадлежать
// пользователю, а её тип — совпадать с типом транзакции.
func (s *Service) CreateTransaction(ctx context.Context, userID uuid.UUID, input CreateTransactionInput) (*models.Transaction, error) {
	const op = "service.transactions.CreateTransaction"

	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("amount must be greater than 0"))
	}

	if !input.Type.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("type must be income or expense"))
	}

	date, err := validateTransactionDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.RecurringFrequency != nil && !input.RecurringFrequency.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("recurring_frequency must be daily, weekly, monthly or yearly"))
	}

	category, err := s.CategoryByID(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if category.Type != input.Type {
		return nil, fmt.Errorf("%s: %w", op, invalidf("category type must be %s", input.Type))
	}

	now := time.Now().UTC()
	tx := &models.Transaction{
		ID:                 uuid.New(),
		UserID:             userID,
		CategoryID:         input.CategoryID,
		Amount:             input.Amount,
		Type:               input.Type,
		Description:        input.Description,
		Date:               date,
		IsRecurring:        input.IsRecurring,
		RecurringFrequency: input.RecurringFrequency,
		RecurringEndDate:   normalizeDatePtr(input.RecurringEndDate),
		CreatedAt:          now,
		UpdatedAt:          now,
		Category:           category,
	}

	if err := s.storage.SaveTransaction(ctx, tx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tx, nil
}

// TransactionByID возвращает транзакцию с проверкой владения.
func (s *Service) TransactionByID(ctx context.Context, userID, txID uuid.UUID) (*models.Transaction, error) {
	const op = "service.transactions.TransactionByID"

	tx, err := s.storage.TransactionByID(ctx, txID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if tx.UserID != userID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return tx, nil
}

// ListTransactions возвращает страницу транзакций по фильтрам.
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID, input ListTransactionsInput) (*models.TransactionPage, error) {
	const op = "service.transactions.ListTransactions"

	filter, err := buildTransactionFilter(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page, err := s.storage.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// UpdateTransaction выполняет частичное обновление транзакции.
// Тип итоговой пары (категория, тип) обязан совпадать.
func (s *Service) UpdateTransaction(ctx context.Context, userID, txID uuid.UUID, input UpdateTransactionInput) (*models.Transaction, error) {
	const op = "service.transactions.UpdateTransaction"

	tx, err := s.TransactionByID(ctx, userID, txID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category := tx.Category

	if input.CategoryID != nil {
		category, err = s.CategoryByID(ctx, userID, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		tx.CategoryID = *input.CategoryID
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("amount must be greater than 0"))
		}
		tx.Amount = *input.Amount
	}

	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("type must be income or expense"))
		}
		tx.Type = *input.Type
	}

	if input.Description != nil {
		tx.Description = *input.Description
	}

	if input.Date != nil {
		date, err := validateTransactionDate(*input.Date)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tx.Date = date
	}

	if input.IsRecurring != nil {
		tx.IsRecurring = *input.IsRecurring
		if !tx.IsRecurring {
			tx.RecurringFrequency = nil
			tx.RecurringEndDate = nil
		}
	}

	if input.RecurringFrequency != nil {
		if !input.RecurringFrequency.Valid() {
			return nil, fmt.Errorf("%s: %w", op, invalidf("recurring_frequency must be daily, weekly, monthly or yearly"))
		}
		tx.RecurringFrequency = input.RecurringFrequency
	}

	if input.RecurringEndDate != nil {
		tx.RecurringEndDate = normalizeDatePtr(input.RecurringEndDate)
	}

	if category != nil && category.Type != tx.Type {
		return nil, fmt.Errorf("%s: %w", op, invalidf("category type must be %s", tx.Type))
	}

	tx.UpdatedAt = time.Now().UTC()
	tx.Category = category

	if err := s.storage.UpdateTransaction(ctx, tx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tx, nil
}

// DeleteTransaction удаляет транзакцию с проверкой владения.
func (s *Service) DeleteTransaction(ctx context.Context, userID, txID uuid.UUID) error {
	const op = "service.transactions.DeleteTransaction"

	if _, err := s.TransactionByID(ctx, userID, txID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteTransaction(ctx, txID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// buildTransactionFilter превращает входные фильтры в storage.TransactionFilter:
// нормализует пагинацию/сортировку и сводит month/year к диапазону дат.
func buildTransactionFilter(input ListTransactionsInput) (storage.TransactionFilter, error) {
	var filter storage.TransactionFilter

	if input.Type != "" {
		if !input.Type.Valid() {
			return filter, invalidf("type must be income or expense")
		}
		filter.Type = input.Type
	}

	filter.CategoryID = input.CategoryID
	filter.Search = input.Search

	if input.StartDate != nil {
		filter.StartDate = normalizeDate(*input.StartDate)
	}
	if input.EndDate != nil {
		filter.EndDate = normalizeDate(*input.EndDate)
	}

	if input.Month != 0 || input.Year != 0 {
		if input.Month < 1 || input.Month > 12 {
			return filter, invalidf("month must be between 1 and 12")
		}
		if input.Year < 1 {
			return filter, invalidf("year is invalid")
		}

		monthStart, monthEnd := monthRange(input.Year, time.Month(input.Month))
		if filter.StartDate.IsZero() || monthStart.After(filter.StartDate) {
			filter.StartDate = monthStart
		}
		if filter.EndDate.IsZero() || monthEnd.Before(filter.EndDate) {
			filter.EndDate = monthEnd
		}
	}

	filter.Page = input.Page
	if filter.Page < 1 {
		filter.Page = 1
	}

	filter.PerPage = input.PerPage
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	filter.SortBy = "date"
	if input.SortBy == "amount" {
		filter.SortBy = "amount"
	}

	filter.SortOrder = "desc"
	if input.SortOrder == "asc" {
		filter.SortOrder = "asc"
	}

	return filter, nil
}

// validateTransactionDate нормализует дату и запрещает будущее.
func validateTransactionDate(date time.Time) (time.Time, error) {
	normalized := normalizeDate(date)
	if normalized.After(normalizeDate(time.Now().UTC())) {
		return time.Time{}, invalidf("transaction date cannot be in the future")
	}

	return normalized, nil
}

// normalizeDate обнуляет время, оставляя календарный день в UTC.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	normalized := normalizeDate(*t)

	return &normalized
}

// monthRange возвращает первый и последний день месяца.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return start, end
}
