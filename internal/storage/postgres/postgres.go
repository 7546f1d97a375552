// postgres реализует контракт storage.Storage поверх PostgreSQL (pgxpool).
//
// Простые запросы написаны в виде SQL-литералов; динамические выборки
// (фильтры списка транзакций, агрегаты аналитики) собираются через squirrel.
package postgres

import (
	"context"
	"fmt"

	"github.com/avoronova/go-fintrack/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql — билдер с $-плейсхолдерами PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Storage struct {
	db *pgxpool.Pool
}

// New создает новое подключение к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
