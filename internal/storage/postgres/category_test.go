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

// Интеграционные тесты репозитория категорий (category.go):
// - создание/чтение, батчевый инсерт дефолтного набора;
// - уникальность (user_id, name, type): дубликат -> ErrAlreadyExists,
//   одно имя с разными типами допустимо;
// - выборка с фильтром по типу и сортировкой по имени;
// - обновление и удаление, в т.ч. ErrReferenced при наличии транзакций.

func TestIntegration_SaveCategory_And_GetByID_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	category := seedCategory(t, st, user.ID, "Salary", models.CategoryIncome)

	got, err := st.CategoryByID(context.Background(), category.ID)
	require.NoError(t, err)
	require.Equal(t, category.ID, got.ID)
	require.Equal(t, user.ID, got.UserID)
	require.Equal(t, "Salary", got.Name)
	require.Equal(t, models.CategoryIncome, got.Type)
	require.Equal(t, "tag", got.Icon)
	require.Equal(t, "#10b981", got.Color)
}

func TestIntegration_SaveCategory_DuplicateNameAndType_Violation(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	seedCategory(t, st, user.ID, "Food", models.CategoryExpense)

	now := time.Now().UTC()
	dup := &models.Category{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      "Food",
		Type:      models.CategoryExpense,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := st.SaveCategory(context.Background(), dup)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_SaveCategory_SameNameDifferentType_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	seedCategory(t, st, user.ID, "Other", models.CategoryExpense)
	seedCategory(t, st, user.ID, "Other", models.CategoryIncome)

	all, err := st.CategoriesByUser(context.Background(), user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestIntegration_SaveCategories_Batch_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	now := time.Now().UTC()

	batch := []models.Category{
		{ID: uuid.New(), UserID: user.ID, Name: "Salary", Type: models.CategoryIncome, Icon: "briefcase", Color: "#10b981", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), UserID: user.ID, Name: "Food & Dining", Type: models.CategoryExpense, Icon: "utensils", Color: "#ef4444", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), UserID: user.ID, Name: "Transportation", Type: models.CategoryExpense, Icon: "car", Color: "#f97316", CreatedAt: now, UpdatedAt: now},
	}

	require.NoError(t, st.SaveCategories(context.Background(), batch))

	all, err := st.CategoriesByUser(context.Background(), user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Сортировка по имени.
	require.Equal(t, "Food & Dining", all[0].Name)
	require.Equal(t, "Salary", all[1].Name)
	require.Equal(t, "Transportation", all[2].Name)
}

func TestIntegration_SaveCategories_EmptySlice_NoOp(t *testing.T) {
	st := newStorage(t)

	require.NoError(t, st.SaveCategories(context.Background(), nil))
}

func TestIntegration_CategoriesByUser_FilterByType(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	seedCategory(t, st, user.ID, "Salary", models.CategoryIncome)
	seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	seedCategory(t, st, user.ID, "Travel", models.CategoryExpense)

	expenses, err := st.CategoriesByUser(context.Background(), user.ID, models.CategoryExpense)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	for _, c := range expenses {
		require.Equal(t, models.CategoryExpense, c.Type)
	}

	income, err := st.CategoriesByUser(context.Background(), user.ID, models.CategoryIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	require.Equal(t, "Salary", income[0].Name)
}

func TestIntegration_UpdateCategory_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	category := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)

	category.Name = "Groceries"
	category.Icon = "shopping-cart"
	category.Color = "#22c55e"
	category.UpdatedAt = time.Now().UTC()

	require.NoError(t, st.UpdateCategory(context.Background(), category))

	got, err := st.CategoryByID(context.Background(), category.ID)
	require.NoError(t, err)
	require.Equal(t, "Groceries", got.Name)
	require.Equal(t, "shopping-cart", got.Icon)
	require.Equal(t, "#22c55e", got.Color)
}

func TestIntegration_DeleteCategory_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	category := seedCategory(t, st, user.ID, "Temp", models.CategoryExpense)

	require.NoError(t, st.DeleteCategory(context.Background(), category.ID))

	_, err := st.CategoryByID(context.Background(), category.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_DeleteCategory_WithTransactions_Referenced(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	category := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	seedTransaction(t, st, user.ID, category.ID, models.CategoryExpense, "25.50", day(2026, time.March, 10), "lunch")

	err := st.DeleteCategory(context.Background(), category.ID)
	require.ErrorIs(t, err, storage.ErrReferenced)
}

func TestIntegration_DeleteCategory_NotFound(t *testing.T) {
	st := newStorage(t)

	err := st.DeleteCategory(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}
