package service

// Тесты аналитики (internal/service/analytics.go).
//
//  Проверяем:
//  - подстановку текущего месяца/года при нулевых значениях;
//  - валидацию границ month/year;
//  - дефолт типа expense для разбивки по категориям;
//  - окно трендов: последние N месяцев, включая текущий, с клампом 1..24.
//
// Запуск:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/go-fintrack/internal/models"
)

func TestService_Summary_ExplicitPeriod(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	want := &models.Summary{TotalIncome: 1000, TotalExpenses: 400, NetBalance: 600}

	st.EXPECT().Summary(gomock.Any(), uid,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)).
		Return(want, nil)

	got, err := svc.Summary(context.Background(), uid, 2, 2026)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// Нулевые month/year подменяются текущим месяцем.
func TestService_Summary_DefaultPeriod(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	now := time.Now().UTC()
	wantFrom, wantTo := monthRange(now.Year(), now.Month())

	st.EXPECT().Summary(gomock.Any(), uid, wantFrom, wantTo).
		Return(&models.Summary{}, nil)

	_, err := svc.Summary(context.Background(), uid, 0, 0)
	require.NoError(t, err)
}

func TestService_Summary_InvalidPeriod(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.Summary(context.Background(), uuid.New(), 13, 2026)
	requireValidation(t, err, "month must be between 1 and 12")

	_, err = svc.Summary(context.Background(), uuid.New(), 3, 1999)
	requireValidation(t, err, "year must be between 2000 and 2100")
}

// Пустой тип означает разбивку расходов.
func TestService_SpendingByCategory_DefaultsToExpense(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()

	st.EXPECT().SpendingByCategory(gomock.Any(), uid, models.CategoryExpense, gomock.Any(), gomock.Any()).
		Return([]models.CategorySpending{}, nil)

	_, err := svc.SpendingByCategory(context.Background(), uid, "", 0, 0)
	require.NoError(t, err)

	st.EXPECT().SpendingByCategory(gomock.Any(), uid, models.CategoryIncome, gomock.Any(), gomock.Any()).
		Return([]models.CategorySpending{}, nil)

	_, err = svc.SpendingByCategory(context.Background(), uid, models.CategoryIncome, 0, 0)
	require.NoError(t, err)

	_, err = svc.SpendingByCategory(context.Background(), uid, models.CategoryType("both"), 0, 0)
	requireValidation(t, err, "type must be income or expense")
}

// Окно: от первого числа (months-1) месяцев назад до конца текущего месяца.
func TestService_Trends_Window(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	now := time.Now().UTC()
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	st.EXPECT().Trends(gomock.Any(), uid, curStart.AddDate(0, -5, 0), curStart.AddDate(0, 1, -1)).
		Return([]models.TrendPoint{}, nil)

	// Ноль означает дефолтные 6 месяцев.
	_, err := svc.Trends(context.Background(), uid, 0)
	require.NoError(t, err)

	st.EXPECT().Trends(gomock.Any(), uid, curStart.AddDate(0, -11, 0), curStart.AddDate(0, 1, -1)).
		Return([]models.TrendPoint{}, nil)

	_, err = svc.Trends(context.Background(), uid, 12)
	require.NoError(t, err)

	// Запрос сверх максимума клампится к 24.
	st.EXPECT().Trends(gomock.Any(), uid, curStart.AddDate(0, -23, 0), curStart.AddDate(0, 1, -1)).
		Return([]models.TrendPoint{}, nil)

	_, err = svc.Trends(context.Background(), uid, 120)
	require.NoError(t, err)

	// Один месяц — только текущий.
	st.EXPECT().Trends(gomock.Any(), uid, curStart, curStart.AddDate(0, 1, -1)).
		Return([]models.TrendPoint{}, nil)

	_, err = svc.Trends(context.Background(), uid, 1)
	require.NoError(t, err)
}
