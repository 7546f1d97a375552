package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SaveUser создает нового пользователя в БД.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(id, username, email, password_hash, theme_preference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.ThemePreference),
		user.CreatedAt,
		user.UpdatedAt,
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

// UserByEmail находит пользователя по email.
// Колонка email имеет тип CITEXT, поэтому сравнение регистронезависимое.
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `
		SELECT id, username, email, password_hash, theme_preference, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user, err := s.scanUser(s.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByUsername находит пользователя по имени.
// Колонка username тоже CITEXT — сравнение регистронезависимое.
func (s *Storage) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgres.UserByUsername"

	query := `
		SELECT id, username, email, password_hash, theme_preference, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	user, err := s.scanUser(s.db.QueryRow(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByID находит пользователя по ID.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `
		SELECT id, username, email, password_hash, theme_preference, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user, err := s.scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateUser сохраняет изменяемые поля профиля.
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.UpdateUser"

	query := `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, theme_preference = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.ThemePreference),
		user.UpdatedAt,
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

// scanUser — общий скан одной строки users.
func (s *Storage) scanUser(row pgx.Row) (*models.User, error) {
	var (
		user  models.User
		theme string
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&theme,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	user.ThemePreference = models.Theme(theme)

	return &user, nil
}
