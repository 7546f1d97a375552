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

// Интеграционные тесты репозитория накопительных целей (goal.go).

func seedGoal(t *testing.T, st *Storage, userID uuid.UUID, name, target, current string, status models.GoalStatus) *models.SavingsGoal {
	t.Helper()

	now := time.Now().UTC()
	goal := &models.SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  dec(target),
		CurrentAmount: dec(current),
		Icon:          "target",
		Color:         "#6366f1",
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	require.NoError(t, st.SaveGoal(context.Background(), goal))

	return goal
}

func TestIntegration_SaveGoal_And_GetByID_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)

	target := day(2026, time.December, 31)
	now := time.Now().UTC()
	goal := &models.SavingsGoal{
		ID:            uuid.New(),
		UserID:        user.ID,
		Name:          "Vacation",
		TargetAmount:  dec("2000.00"),
		CurrentAmount: dec("150.00"),
		TargetDate:    &target,
		Icon:          "plane",
		Color:         "#0ea5e9",
		Status:        models.GoalActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	require.NoError(t, st.SaveGoal(context.Background(), goal))

	got, err := st.GoalByID(context.Background(), goal.ID)
	require.NoError(t, err)
	require.Equal(t, "Vacation", got.Name)
	equalDec(t, "2000.00", got.TargetAmount)
	equalDec(t, "150.00", got.CurrentAmount)
	require.NotNil(t, got.TargetDate)
	sameDay(t, target, *got.TargetDate)
	require.Equal(t, models.GoalActive, got.Status)
}

func TestIntegration_SaveGoal_NoTargetDate_OK(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	goal := seedGoal(t, st, user.ID, "Emergency fund", "5000.00", "0", models.GoalActive)

	got, err := st.GoalByID(context.Background(), goal.ID)
	require.NoError(t, err)
	require.Nil(t, got.TargetDate)
}

func TestIntegration_GoalsByUser_StatusFilter(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	seedGoal(t, st, user.ID, "Vacation", "2000.00", "2000.00", models.GoalCompleted)
	seedGoal(t, st, user.ID, "Laptop", "1500.00", "300.00", models.GoalActive)
	seedGoal(t, st, user.ID, "Car", "9000.00", "100.00", models.GoalActive)

	active, err := st.GoalsByUser(context.Background(), user.ID, models.GoalActive)
	require.NoError(t, err)
	require.Len(t, active, 2)

	all, err := st.GoalsByUser(context.Background(), user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestIntegration_UpdateGoal_OK_And_NotFound(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	goal := seedGoal(t, st, user.ID, "Laptop", "1500.00", "300.00", models.GoalActive)

	goal.CurrentAmount = dec("1500.00")
	goal.Status = models.GoalCompleted
	goal.UpdatedAt = time.Now().UTC()

	require.NoError(t, st.UpdateGoal(context.Background(), goal))

	got, err := st.GoalByID(context.Background(), goal.ID)
	require.NoError(t, err)
	equalDec(t, "1500.00", got.CurrentAmount)
	require.Equal(t, models.GoalCompleted, got.Status)

	ghost := *goal
	ghost.ID = uuid.New()
	err = st.UpdateGoal(context.Background(), &ghost)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_DeleteGoal_OK_And_NotFound(t *testing.T) {
	st := newStorage(t)

	user := seedUser(t, st)
	goal := seedGoal(t, st, user.ID, "Laptop", "1500.00", "0", models.GoalActive)

	require.NoError(t, st.DeleteGoal(context.Background(), goal.ID))

	_, err := st.GoalByID(context.Background(), goal.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = st.DeleteGoal(context.Background(), goal.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
