package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты репозитория бюджетов (budget.go).

func seedBudget(t *testing.T, st *Storage, userID, categoryID uuid.UUID, amount string, month, year int) *models.Budget {
	t.Helper()

	now := time.Now().UTC()
	budget := &models.Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     dec(amount),
		Period:     models.PeriodMonthly,
		Month:      month,
		Year:       year,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	require.NoError(t, st.SaveBudget(context.Background(), budget))

	return budget
}

func TestIntegration_SaveBudget_And_GetByID_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	budget := seedBudget(t, st, user.ID, food.ID, "500.00", 3, 2026)

	got, err := st.BudgetByID(context.Background(), budget.ID)
	require.NoError(t, err)
	require.Equal(t, budget.ID, got.ID)
	equalDec(t, "500.00", got.Amount)
	require.Equal(t, models.PeriodMonthly, got.Period)
	require.Equal(t, 3, got.Month)
	require.Equal(t, 2026, got.Year)

	require.NotNil(t, got.Category)
	require.Equal(t, "Food", got.Category.Name)
}

func TestIntegration_SaveBudget_DuplicatePeriod_Violation(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	seedBudget(t, st, user.ID, food.ID, "500.00", 3, 2026)

	now := time.Now().UTC()
	dup := &models.Budget{
		ID:         uuid.New(),
		UserID:     user.ID,
		CategoryID: food.ID,
		Amount:     dec("700.00"),
		Period:     models.PeriodMonthly,
		Month:      3,
		Year:       2026,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := st.SaveBudget(context.Background(), dup)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_SaveBudget_UnknownCategory_NotFound(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	now := time.Now().UTC()

	budget := &models.Budget{
		ID:         uuid.New(),
		UserID:     user.ID,
		CategoryID: uuid.New(),
		Amount:     dec("100.00"),
		Period:     models.PeriodMonthly,
		Month:      1,
		Year:       2026,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := st.SaveBudget(context.Background(), budget)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_BudgetsByUser_PeriodFilter(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	travel := seedCategory(t, st, user.ID, "Travel", models.CategoryExpense)

	seedBudget(t, st, user.ID, food.ID, "500.00", 3, 2026)
	seedBudget(t, st, user.ID, travel.ID, "300.00", 3, 2026)
	seedBudget(t, st, user.ID, food.ID, "450.00", 4, 2026)

	march, err := st.BudgetsByUser(context.Background(), user.ID, 3, 2026)
	require.NoError(t, err)
	require.Len(t, march, 2)
	// Внутри периода сортировка по имени категории.
	require.Equal(t, "Food", march[0].Category.Name)
	require.Equal(t, "Travel", march[1].Category.Name)

	all, err := st.BudgetsByUser(context.Background(), user.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestIntegration_UpdateBudget_OK_And_NotFound(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	budget := seedBudget(t, st, user.ID, food.ID, "500.00", 3, 2026)

	budget.Amount = dec("650.00")
	budget.UpdatedAt = time.Now().UTC()
	require.NoError(t, st.UpdateBudget(context.Background(), budget))

	got, err := st.BudgetByID(context.Background(), budget.ID)
	require.NoError(t, err)
	equalDec(t, "650.00", got.Amount)

	ghost := *budget
	ghost.ID = uuid.New()
	err = st.UpdateBudget(context.Background(), &ghost)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_DeleteBudget_OK_And_NotFound(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	budget := seedBudget(t, st, user.ID, food.ID, "500.00", 3, 2026)

	require.NoError(t, st.DeleteBudget(context.Background(), budget.ID))

	_, err := st.BudgetByID(context.Background(), budget.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = st.DeleteBudget(context.Background(), budget.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
