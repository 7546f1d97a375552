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

const categoryColumns = "id, user_id, name, type, icon, color, created_at, updated_at"

// SaveCategory создает новую категорию.
func (s *Storage) SaveCategory(ctx context.Context, category *models.Category) error {
	const op = "storage.postgres.SaveCategory"

	query := `
		INSERT INTO categories(id, user_id, name, type, icon, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		string(category.Type),
		category.Icon,
		category.Color,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SaveCategories создает набор категорий одним INSERT.
// Используется для провижининга дефолтных категорий при регистрации.
func (s *Storage) SaveCategories(ctx context.Context, categories []models.Category) error {
	const op = "storage.postgres.SaveCategories"

	if len(categories) == 0 {
		return nil
	}

	builder := psql.Insert("categories").
		Columns("id", "user_id", "name", "type", "icon", "color", "created_at", "updated_at")

	for _, c := range categories {
		builder = builder.Values(
			c.ID, c.UserID, c.Name, string(c.Type), c.Icon, c.Color, c.CreatedAt, c.UpdatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CategoryByID находит категорию по ID.
func (s *Storage) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	const op = "storage.postgres.CategoryByID"

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1`, categoryColumns)

	category, err := scanCategory(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// CategoriesByUser возвращает категории пользователя, отсортированные по имени.
// Пустой categoryType означает «все типы».
func (s *Storage) CategoriesByUser(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType) ([]models.Category, error) {
	const op = "storage.postgres.CategoriesByUser"

	builder := psql.Select(categoryColumns).
		From("categories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC")

	if categoryType != "" {
		builder = builder.Where(sq.Eq{"type": string(categoryType)})
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

	var categories []models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		categories = append(categories, *category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

// UpdateCategory сохраняет имя/иконку/цвет категории.
// Тип категории не меняется: на него могут ссылаться транзакции.
func (s *Storage) UpdateCategory(ctx context.Context, category *models.Category) error {
	const op = "storage.postgres.UpdateCategory"

	query := `
		UPDATE categories
		SET name = $2, icon = $3, color = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Icon,
		category.Color,
		category.UpdatedAt,
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

// DeleteCategory удаляет категорию.
// Нарушение внешнего ключа (на категорию ссылаются транзакции) превращается
// в storage.ErrReferenced.
func (s *Storage) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteCategory"

	tag, err := s.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrReferenced)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// scanCategory — общий скан одной строки categories.
func scanCategory(row pgx.Row) (*models.Category, error) {
	var (
		category models.Category
		ctype    string
	)

	err := row.Scan(
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

	category.Type = models.CategoryType(ctype)

	return &category, nil
}
