package service

// Тесты накопительных целей (internal/service/goals.go).
//
//  Проверяем:
//  - дефолты иконки/цвета/статуса и валидацию входов;
//  - проверку владения;
//  - взносы: только в активную цель, автоперевод в completed при достижении;
//  - автоперевод и при обычном обновлении CurrentAmount/TargetAmount;
//  - расчёт прогресса на модели (ProgressPercentage/RemainingAmount).
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
	"github.com/avoronova/go-fintrack/internal/storage"
)

// mustGoal — быстрый хелпер для сборки активной цели.
func mustGoal(uid uuid.UUID, target, current string) *models.SavingsGoal {
	now := time.Now().UTC()
	return &models.SavingsGoal{
		ID:            uuid.New(),
		UserID:        uid,
		Name:          "Vacation",
		TargetAmount:  dec(target),
		CurrentAmount: dec(current),
		Icon:          "target",
		Color:         "#10b981",
		Status:        models.GoalActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestService_CreateGoal_OK_Defaults(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()

	var saved *models.SavingsGoal
	st.EXPECT().SaveGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.SavingsGoal) error {
			saved = g
			return nil
		})

	got, err := svc.CreateGoal(context.Background(), uid, CreateGoalInput{
		Name:         "  Vacation  ",
		TargetAmount: dec("5000"),
	})
	require.NoError(t, err)
	require.Equal(t, saved, got)
	require.Equal(t, "Vacation", got.Name)
	require.Equal(t, defaultGoalIcon, got.Icon)
	require.Equal(t, defaultGoalColor, got.Color)
	require.Equal(t, models.GoalActive, got.Status)
	equalDec(t, "0", got.CurrentAmount)
	require.Nil(t, got.TargetDate)
}

func TestService_CreateGoal_ValidationErrors(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	_, err := svc.CreateGoal(ctx, uid, CreateGoalInput{Name: " ", TargetAmount: dec("10")})
	requireValidation(t, err, "name must be between 1 and 200 characters")

	_, err = svc.CreateGoal(ctx, uid, CreateGoalInput{Name: "Vacation", TargetAmount: dec("0")})
	requireValidation(t, err, "target amount must be greater than 0")

	_, err = svc.CreateGoal(ctx, uid, CreateGoalInput{Name: "Vacation", TargetAmount: dec("10"), CurrentAmount: dec("-1")})
	requireValidation(t, err, "current amount must not be negative")

	_, err = svc.CreateGoal(ctx, uid, CreateGoalInput{Name: "Vacation", TargetAmount: dec("10"), Color: "green"})
	requireValidation(t, err, "color must match #rrggbb")

	_, err = svc.CreateGoal(ctx, uid, CreateGoalInput{Name: "Vacation", TargetAmount: dec("10"), Status: "paused"})
	requireValidation(t, err, "status must be active, completed or cancelled")
}

// Чужая цель неотличима от несуществующей.
func TestService_GoalByID_Ownership(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	foreign := mustGoal(uuid.New(), "1000", "0")

	st.EXPECT().GoalByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	_, err := svc.GoalByID(context.Background(), uid, foreign.ID)
	require.ErrorIs(t, err, ErrNotFound)

	missing := uuid.New()
	st.EXPECT().GoalByID(gomock.Any(), missing).Return(nil, fmtWrap(storage.ErrNotFound))

	_, err = svc.GoalByID(context.Background(), uid, missing)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Goals_StatusFilter(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	want := []models.SavingsGoal{*mustGoal(uid, "1000", "0")}

	st.EXPECT().GoalsByUser(gomock.Any(), uid, models.GoalActive).Return(want, nil)

	got, err := svc.Goals(context.Background(), uid, models.GoalActive)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = svc.Goals(context.Background(), uid, models.GoalStatus("paused"))
	requireValidation(t, err, "status must be active, completed or cancelled")
}

func TestService_UpdateGoal_Partial_OK(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	goal := mustGoal(uid, "5000", "100")

	st.EXPECT().GoalByID(gomock.Any(), goal.ID).Return(goal, nil)
	st.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	target := dec("6000")
	got, err := svc.UpdateGoal(context.Background(), uid, goal.ID, UpdateGoalInput{
		Name:         strPtr("Big Vacation"),
		TargetAmount: &target,
	})
	require.NoError(t, err)
	require.Equal(t, "Big Vacation", got.Name)
	equalDec(t, "6000", got.TargetAmount)
	require.Equal(t, models.GoalActive, got.Status)
}

// Обновление, доводящее до цели, переводит её в completed.
func TestService_UpdateGoal_AutoComplete(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	goal := mustGoal(uid, "5000", "100")

	st.EXPECT().GoalByID(gomock.Any(), goal.ID).Return(goal, nil)
	st.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	current := dec("5000")
	got, err := svc.UpdateGoal(context.Background(), uid, goal.ID, UpdateGoalInput{
		CurrentAmount: &current,
	})
	require.NoError(t, err)
	require.Equal(t, models.GoalCompleted, got.Status)
}

func TestService_Contribute_OK(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	goal := mustGoal(uid, "5000", "100")

	var saved *models.SavingsGoal
	st.EXPECT().GoalByID(gomock.Any(), goal.ID).Return(goal, nil)
	st.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.SavingsGoal) error {
			saved = g
			return nil
		})

	got, err := svc.Contribute(context.Background(), uid, goal.ID, dec("250.50"))
	require.NoError(t, err)
	require.Equal(t, saved, got)
	equalDec(t, "350.50", got.CurrentAmount)
	require.Equal(t, models.GoalActive, got.Status)
}

// Взнос, достигший цели, переводит её в completed.
func TestService_Contribute_ReachesTarget_Completes(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	goal := mustGoal(uid, "500", "400")

	st.EXPECT().GoalByID(gomock.Any(), goal.ID).Return(goal, nil)
	st.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Contribute(context.Background(), uid, goal.ID, dec("150"))
	require.NoError(t, err)
	equalDec(t, "550", got.CurrentAmount)
	require.Equal(t, models.GoalCompleted, got.Status)
}

// Взнос допустим только в активную цель.
func TestService_Contribute_InactiveGoal(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()

	completed := mustGoal(uid, "500", "500")
	completed.Status = models.GoalCompleted
	st.EXPECT().GoalByID(gomock.Any(), completed.ID).Return(completed, nil)

	_, err := svc.Contribute(context.Background(), uid, completed.ID, dec("10"))
	requireValidation(t, err, "goal is not active")

	cancelled := mustGoal(uid, "500", "0")
	cancelled.Status = models.GoalCancelled
	st.EXPECT().GoalByID(gomock.Any(), cancelled.ID).Return(cancelled, nil)

	_, err = svc.Contribute(context.Background(), uid, cancelled.ID, dec("10"))
	requireValidation(t, err, "goal is not active")
}

func TestService_Contribute_InvalidAmount(t *testing.T) {
	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.Contribute(context.Background(), uuid.New(), uuid.New(), dec("0"))
	requireValidation(t, err, "contribution amount must be greater than 0")
}

func TestService_DeleteGoal_OK(t *testing.T) {
	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	goal := mustGoal(uid, "500", "0")

	st.EXPECT().GoalByID(gomock.Any(), goal.ID).Return(goal, nil)
	st.EXPECT().DeleteGoal(gomock.Any(), goal.ID).Return(nil)

	require.NoError(t, svc.DeleteGoal(context.Background(), uid, goal.ID))
}

// Прогресс считается на модели: ограничен сверху 100%, остаток не бывает
// отрицательным.
func TestSavingsGoal_ProgressAndRemaining(t *testing.T) {
	goal := mustGoal(uuid.New(), "1000", "250")
	require.InDelta(t, 25.0, goal.ProgressPercentage(), 0.001)
	equalDec(t, "750", goal.RemainingAmount())

	over := mustGoal(uuid.New(), "1000", "1500")
	require.InDelta(t, 100.0, over.ProgressPercentage(), 0.001)
	equalDec(t, "0", over.RemainingAmount())
}
