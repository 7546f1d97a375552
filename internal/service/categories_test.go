package service

// Тесты категорий (internal/service/categories.go).
//
//  Проверяем:
//  - подстановку иконки/цвета по умолчанию и валидацию формата;
//  - проверку владения: чужая категория -> ErrNotFound;
//  - маппинг дубликата имени -> ErrCategoryExists;
//  - отказ удаления категории с транзакциями (CategoryInUseError + количество).
//
// Запуск:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"
)

// mustCategory — быстрый хелпер для сборки категории.
func mustCategory(uid uuid.UUID, name string, typ models.CategoryType) *models.Category {
	now := time.Now().UTC()
	return &models.Category{
		ID:        uuid.New(),
		UserID:    uid,
		Name:      name,
		Type:      typ,
		Icon:      "circle",
		Color:     "#6366f1",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestService_CreateCategory_OK_Defaults(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()

	var saved *models.Category
	st.EXPECT().SaveCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Category) error {
			saved = c
			return nil
		})

	got, err := svc.CreateCategory(context.Background(), uid, "  Coffee  ", models.CategoryExpense, "", "")
	require.NoError(t, err)
	require.Equal(t, saved, got)
	require.Equal(t, "Coffee", got.Name)
	require.Equal(t, models.CategoryExpense, got.Type)
	require.Equal(t, defaultCategoryIcon, got.Icon)
	require.Equal(t, defaultCategoryColor, got.Color)
	require.Equal(t, uid, got.UserID)
	require.NotEqual(t, uuid.Nil, got.ID)
}

func TestService_CreateCategory_ValidationErrors(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	_, err := svc.CreateCategory(ctx, uid, "   ", models.CategoryExpense, "", "")
	requireValidation(t, err, "name must be between 1 and 100 characters")

	_, err = svc.CreateCategory(ctx, uid, strings.Repeat("x", 101), models.CategoryExpense, "", "")
	requireValidation(t, err, "name must be between 1 and 100 characters")

	_, err = svc.CreateCategory(ctx, uid, "Coffee", models.CategoryType("both"), "", "")
	requireValidation(t, err, "type must be income or expense")

	_, err = svc.CreateCategory(ctx, uid, "Coffee", models.CategoryExpense, strings.Repeat("i", 51), "")
	requireValidation(t, err, "icon must not exceed 50 characters")

	_, err = svc.CreateCategory(ctx, uid, "Coffee", models.CategoryExpense, "", "red")
	requireValidation(t, err, "color must match #rrggbb")

	_, err = svc.CreateCategory(ctx, uid, "Coffee", models.CategoryExpense, "", "#12345g")
	requireValidation(t, err, "color must match #rrggbb")
}

// Маппинг: storage.ErrAlreadyExists -> ErrCategoryExists.
func TestService_CreateCategory_Duplicate(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveCategory(gomock.Any(), gomock.Any()).
		Return(fmtWrap(storage.ErrAlreadyExists))

	_, err := svc.CreateCategory(context.Background(), uuid.New(), "Coffee", models.CategoryExpense, "", "")
	require.ErrorIs(t, err, ErrCategoryExists)
}

func TestService_Categories_OK_AndTypeFilter(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	want := []models.Category{*mustCategory(uid, "Food", models.CategoryExpense)}

	st.EXPECT().CategoriesByUser(gomock.Any(), uid, models.CategoryExpense).Return(want, nil)

	got, err := svc.Categories(context.Background(), uid, models.CategoryExpense)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Пустой тип — без фильтра.
	st.EXPECT().CategoriesByUser(gomock.Any(), uid, models.CategoryType("")).Return(want, nil)

	_, err = svc.Categories(context.Background(), uid, "")
	require.NoError(t, err)

	_, err = svc.Categories(context.Background(), uid, models.CategoryType("both"))
	requireValidation(t, err, "type must be income or expense")
}

// Чужая категория неотличима от несуществующей.
func TestService_CategoryByID_OwnershipAndNotFound(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	catID := uuid.New()

	st.EXPECT().CategoryByID(gomock.Any(), catID).Return(nil, fmtWrap(storage.ErrNotFound))

	_, err := svc.CategoryByID(context.Background(), uid, catID)
	require.ErrorIs(t, err, ErrNotFound)

	foreign := mustCategory(uuid.New(), "Food", models.CategoryExpense)
	st.EXPECT().CategoryByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	_, err = svc.CategoryByID(context.Background(), uid, foreign.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateCategory_Partial_OK(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	cat := mustCategory(uid, "Food", models.CategoryExpense)

	var saved *models.Category
	st.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil)
	st.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Category) error {
			saved = c
			return nil
		})

	got, err := svc.UpdateCategory(context.Background(), uid, cat.ID, strPtr("Groceries"), nil, strPtr("#ff0000"))
	require.NoError(t, err)
	require.Equal(t, saved, got)
	require.Equal(t, "Groceries", got.Name)
	require.Equal(t, "circle", got.Icon)
	require.Equal(t, "#ff0000", got.Color)
	// Тип не меняется.
	require.Equal(t, models.CategoryExpense, got.Type)
}

func TestService_UpdateCategory_DuplicateName(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	cat := mustCategory(uid, "Food", models.CategoryExpense)

	st.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil)
	st.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).
		Return(fmtWrap(storage.ErrAlreadyExists))

	_, err := svc.UpdateCategory(context.Background(), uid, cat.ID, strPtr("Groceries"), nil, nil)
	require.ErrorIs(t, err, ErrCategoryExists)
}

func TestService_DeleteCategory_OK(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	cat := mustCategory(uid, "Food", models.CategoryExpense)

	st.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil)
	st.EXPECT().DeleteCategory(gomock.Any(), cat.ID).Return(nil)

	require.NoError(t, svc.DeleteCategory(context.Background(), uid, cat.ID))
}

// Категория с транзакциями не удаляется: наружу уходит количество ссылок.
func TestService_DeleteCategory_InUse(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	cat := mustCategory(uid, "Food", models.CategoryExpense)

	st.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil)
	st.EXPECT().DeleteCategory(gomock.Any(), cat.ID).Return(fmtWrap(storage.ErrReferenced))
	st.EXPECT().CountByCategory(gomock.Any(), cat.ID).Return(int64(7), nil)

	err := svc.DeleteCategory(context.Background(), uid, cat.ID)
	require.Error(t, err)

	var inUse *CategoryInUseError
	require.ErrorAs(t, err, &inUse)
	require.Equal(t, int64(7), inUse.TransactionCount)
}

func TestService_DeleteCategory_StorageError(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	cat := mustCategory(uid, "Food", models.CategoryExpense)

	st.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil)
	st.EXPECT().DeleteCategory(gomock.Any(), cat.ID).Return(errors.New("pg down"))

	err := svc.DeleteCategory(context.Background(), uid, cat.ID)
	require.Error(t, err)
}
