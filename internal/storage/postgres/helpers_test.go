package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage/postgres/testhelper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Общие хелперы интеграционных тестов пакета postgres.
//
// Контейнер PostgreSQL общий для всех тестов (testhelper.DSN), изоляция —
// через уникального пользователя на каждый тест.
//
// Запуск локально:
//
//	GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

func newStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := testhelper.DSN(t)

	st, err := New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
}

// seedUser создает уникального пользователя для текущего теста.
func seedUser(t *testing.T, st *Storage) *models.User {
	t.Helper()

	suffix := uuid.New().String()[:8]
	now := time.Now().UTC()

	user := &models.User{
		ID:              uuid.New(),
		Username:        fmt.Sprintf("user_%s", suffix),
		Email:           fmt.Sprintf("user_%s@example.com", suffix),
		PasswordHash:    "hash",
		ThemePreference: models.ThemeLight,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	require.NoError(t, st.SaveUser(context.Background(), user))

	return user
}

func seedCategory(t *testing.T, st *Storage, userID uuid.UUID, name string, ctype models.CategoryType) *models.Category {
	t.Helper()

	now := time.Now().UTC()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      ctype,
		Icon:      "tag",
		Color:     "#10b981",
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, st.SaveCategory(context.Background(), category))

	return category
}

func seedTransaction(t *testing.T, st *Storage, userID, categoryID uuid.UUID, ctype models.CategoryType, amount string, day time.Time, description string) *models.Transaction {
	t.Helper()

	now := time.Now().UTC()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      dec(amount),
		Type:        ctype,
		Description: description,
		Date:        day,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	require.NoError(t, st.SaveTransaction(context.Background(), tx))

	return tx
}

// day — календарная дата в UTC.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sameDay сравнивает только календарную часть дат.
func sameDay(t *testing.T, want, got time.Time) {
	t.Helper()
	require.Equal(t, want.Format("2006-01-02"), got.Format("2006-01-02"))
}

// equalDec сравнивает decimal по значению, а не по представлению.
func equalDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}
