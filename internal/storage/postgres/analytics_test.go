package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avoronova/go-fintrack/internal/models"

	"github.com/stretchr/testify/require"
)

// Интеграционные тесты агрегатов аналитики (analytics.go):
// - сводка доходы/расходы/баланс + savings rate;
// - разбивка трат по категориям с процентами;
// - тренды по месяцам с возрастающей сортировкой.

func TestIntegration_Summary_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	salary := seedCategory(t, st, user.ID, "Salary", models.CategoryIncome)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)

	seedTransaction(t, st, user.ID, salary.ID, models.CategoryIncome, "3000.00", day(2026, time.March, 1), "salary")
	seedTransaction(t, st, user.ID, food.ID, models.CategoryExpense, "500.00", day(2026, time.March, 10), "food")
	seedTransaction(t, st, user.ID, food.ID, models.CategoryExpense, "250.00", day(2026, time.March, 20), "more food")
	// Вне диапазона.
	seedTransaction(t, st, user.ID, food.ID, models.CategoryExpense, "999.00", day(2026, time.April, 1), "april")

	from, to := day(2026, time.March, 1), day(2026, time.March, 31)
	summary, err := st.Summary(context.Background(), user.ID, from, to)
	require.NoError(t, err)

	equalDec(t, "3000.00", summary.TotalIncome)
	equalDec(t, "750.00", summary.TotalExpenses)
	equalDec(t, "2250.00", summary.NetBalance)
	require.InDelta(t, 75.0, summary.SavingsRate, 0.01)
	require.EqualValues(t, 3, summary.TransactionCount)
	require.EqualValues(t, 1, summary.IncomeCount)
	require.EqualValues(t, 2, summary.ExpenseCount)
	sameDay(t, from, summary.PeriodStart)
	sameDay(t, to, summary.PeriodEnd)
}

func TestIntegration_Summary_Empty_ZeroRate(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)

	summary, err := st.Summary(context.Background(), user.ID, day(2026, time.March, 1), day(2026, time.March, 31))
	require.NoError(t, err)

	equalDec(t, "0", summary.TotalIncome)
	equalDec(t, "0", summary.TotalExpenses)
	equalDec(t, "0", summary.NetBalance)
	require.Zero(t, summary.SavingsRate)
	require.Zero(t, summary.TransactionCount)
}

func TestIntegration_SpendingByCategory_Percentages(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)
	travel := seedCategory(t, st, user.ID, "Travel", models.CategoryExpense)

	seedTransaction(t, st, user.ID, food.ID, models.CategoryExpense, "300.00", day(2026, time.March, 5), "food")
	seedTransaction(t, st, user.ID, food.ID, models.CategoryExpense, "150.00", day(2026, time.March, 8), "food")
	seedTransaction(t, st, user.ID, travel.ID, models.CategoryExpense, "150.00", day(2026, time.March, 9), "travel")

	spending, err := st.SpendingByCategory(context.Background(), user.ID, models.CategoryExpense,
		day(2026, time.March, 1), day(2026, time.March, 31))
	require.NoError(t, err)
	require.Len(t, spending, 2)

	// Сортировка по сумме убыванием.
	require.Equal(t, "Food", spending[0].Name)
	equalDec(t, "450.00", spending[0].Amount)
	require.EqualValues(t, 2, spending[0].Count)
	require.InDelta(t, 75.0, spending[0].Percentage, 0.01)

	require.Equal(t, "Travel", spending[1].Name)
	equalDec(t, "150.00", spending[1].Amount)
	require.InDelta(t, 25.0, spending[1].Percentage, 0.01)
}

func TestIntegration_SpendingByCategory_Empty(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)

	spending, err := st.SpendingByCategory(context.Background(), user.ID, models.CategoryExpense,
		day(2026, time.March, 1), day(2026, time.March, 31))
	require.NoError(t, err)
	require.Empty(t, spending)
}

func TestIntegration_Trends_MonthlyBuckets(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	salary := seedCategory(t, st, user.ID, "Salary", models.CategoryIncome)
	food := seedCategory(t, st, user.ID, "Food", models.CategoryExpense)

	seedTransaction(t, st, user.ID, salary.ID, models.CategoryIncome, "1000.00", day(2026, time.March, 1), "salary")
	seedTransaction(t, st, user.ID, food.ID, models.CategoryExpense, "100.00", day(2026, time.March, 15), "food")
	seedTransaction(t, st, user.ID, food.ID, models.CategoryExpense, "50.00", day(2026, time.April, 3), "food")

	points, err := st.Trends(context.Background(), user.ID, day(2026, time.March, 1), day(2026, time.April, 30))
	require.NoError(t, err)
	require.Len(t, points, 2)

	sameDay(t, day(2026, time.March, 1), points[0].Date)
	equalDec(t, "1000.00", points[0].Income)
	equalDec(t, "100.00", points[0].Expense)
	equalDec(t, "900.00", points[0].Net)

	sameDay(t, day(2026, time.April, 1), points[1].Date)
	equalDec(t, "0", points[1].Income)
	equalDec(t, "50.00", points[1].Expense)
	equalDec(t, "-50.00", points[1].Net)
}
