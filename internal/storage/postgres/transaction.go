package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Колонки транзакции вместе с категорией (JOIN categories c).
const txJoinColumns = `t.id, t.user_id, t.category_id, t.amount, t.type, t.description, t.date,
	t.is_recurring, t.recurring_frequency, t.recurring_end_date, t.created_at, t.updated_at,
	c.id, c.user_id, c.name, c.type, c.icon, c.color, c.created_at, c.updated_at`

// SaveTransaction создает новую транзакцию.
func (s *Storage) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	const op = "storage.postgres.SaveTransaction"

	query := `
		INSERT INTO transactions(id, user_id, category_id, amount, type, description, date,
			is_recurring, recurring_frequency, recurring_end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.Exec(ctx, query,
		tx.ID,
		tx.UserID,
		tx.CategoryID,
		tx.Amount,
		string(tx.Type),
		tx.Description,
		tx.Date,
		tx.IsRecurring,
		frequencyParam(tx.RecurringFrequency),
		tx.RecurringEndDate,
		tx.CreatedAt,
		tx.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// TransactionByID находит транзакцию по ID вместе с категорией.
func (s *Storage) TransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	const op = "storage.postgres.TransactionByID"

	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1
	`, txJoinColumns)

	tx, err := scanTransaction(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tx, nil
}

// ListTransactions возвращает страницу транзакций пользователя по фильтру.
// Ожидает уже нормализованные Page/PerPage (клампит сервисный слой).
func (s *Storage) ListTransactions(ctx context.Context, userID uuid.UUID, filter storage.TransactionFilter) (*models.TransactionPage, error) {
	const op = "storage.postgres.ListTransactions"

	cond := listConditions(userID, filter)

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("transactions t").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page := filter.Page
	perPage := filter.PerPage

	query, args, err := psql.Select(txJoinColumns).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(cond).
		OrderBy(orderExpr(filter), "t.created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		transactions = append(transactions, *tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pages := 0
	if total > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return &models.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
		Pages:        pages,
	}, nil
}

// UpdateTransaction сохраняет изменяемые поля транзакции.
func (s *Storage) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	const op = "storage.postgres.UpdateTransaction"

	query := `
		UPDATE transactions
		SET category_id = $2, amount = $3, type = $4, description = $5, date = $6,
			is_recurring = $7, recurring_frequency = $8, recurring_end_date = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		tx.ID,
		tx.CategoryID,
		tx.Amount,
		string(tx.Type),
		tx.Description,
		tx.Date,
		tx.IsRecurring,
		frequencyParam(tx.RecurringFrequency),
		tx.RecurringEndDate,
		tx.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteTransaction удаляет транзакцию.
func (s *Storage) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteTransaction"

	tag, err := s.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// CountByCategory возвращает число транзакций, ссылающихся на категорию.
func (s *Storage) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	const op = "storage.postgres.CountByCategory"

	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// SpentByCategory — сумма расходов по категории за период [from, to].
func (s *Storage) SpentByCategory(ctx context.Context, userID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	const op = "storage.postgres.SpentByCategory"

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = 'expense' AND date >= $3 AND date <= $4
	`

	var spent decimal.Decimal
	err := s.db.QueryRow(ctx, query, userID, categoryID, from, to).Scan(&spent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	return spent, nil
}

// listConditions собирает WHERE-условия выборки по фильтру.
func listConditions(userID uuid.UUID, filter storage.TransactionFilter) sq.And {
	cond := sq.And{sq.Eq{"t.user_id": userID}}

	if filter.Type != "" {
		cond = append(cond, sq.Eq{"t.type": string(filter.Type)})
	}

	if filter.CategoryID != uuid.Nil {
		cond = append(cond, sq.Eq{"t.category_id": filter.CategoryID})
	}

	if !filter.StartDate.IsZero() {
		cond = append(cond, sq.GtOrEq{"t.date": filter.StartDate})
	}

	if !filter.EndDate.IsZero() {
		cond = append(cond, sq.LtOrEq{"t.date": filter.EndDate})
	}

	if filter.Search != "" {
		cond = append(cond, sq.ILike{"t.description": "%" + filter.Search + "%"})
	}

	return cond
}

// orderExpr — первичная сортировка списка (вторичная всегда created_at DESC).
func orderExpr(filter storage.TransactionFilter) string {
	column := "t.date"
	if filter.SortBy == "amount" {
		column = "t.amount"
	}

	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	return column + " " + direction
}

// frequencyParam конвертирует периодичность в параметр запроса (nil -> NULL).
func frequencyParam(f *models.RecurringFrequency) *string {
	if f == nil {
		return nil
	}

	v := string(*f)
	return &v
}

// scanTransaction — скан строки транзакции вместе с категорией.
func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var (
		tx       models.Transaction
		txType   string
		freq     *string
		category models.Category
		ctype    string
	)

	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.CategoryID,
		&tx.Amount,
		&txType,
		&tx.Description,
		&tx.Date,
		&tx.IsRecurring,
		&freq,
		&tx.RecurringEndDate,
		&tx.CreatedAt,
		&tx.UpdatedAt,
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

	tx.Type = models.CategoryType(txType)
	if freq != nil {
		f := models.RecurringFrequency(*freq)
		tx.RecurringFrequency = &f
	}

	category.Type = models.CategoryType(ctype)
	tx.Category = &category

	return &tx, nil
}
