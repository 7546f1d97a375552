package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/go-fintrack/internal/config"
	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"
	"github.com/avoronova/go-fintrack/mocks"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		AccessTokenTTL:  30 * time.Second,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "fintrack",
		Audience:        []string{"fintrack-web"},
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg())
	return svc, st, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

// requireValidation проверяет, что ошибка — ValidationError с заданным текстом.
func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, msg, vErr.Msg)
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	pw := "Abcdef1!"

	var savedUser *models.User
	var savedCats []models.Category

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			savedUser = u
			return nil
		})
	st.EXPECT().SaveCategories(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cats []models.Category) error {
			savedCats = cats
			return nil
		})

	// Email нормализуется к нижнему регистру, username только обрезается.
	user, tp, err := svc.RegisterUser(ctx, "  alice  ", "User@Example.COM", pw)
	require.NoError(t, err)
	require.Equal(t, savedUser, user)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "user@example.com", user.Email)
	require.Equal(t, models.ThemeLight, user.ThemePreference)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.True(t, checkPassword(user.PasswordHash, pw))

	require.NotEmpty(t, tp.AccessToken)
	require.NotEmpty(t, tp.RefreshToken)
	require.WithinDuration(t, time.Now().Add(svc.cfg.AccessTokenTTL), tp.ExpiresAt, 2*time.Second)

	// Стартовый набор категорий привязан к новому пользователю.
	require.Len(t, savedCats, len(defaultCategories))
	for _, c := range savedCats {
		require.Equal(t, user.ID, c.UserID)
		require.NotEqual(t, uuid.Nil, c.ID)
	}
	require.Equal(t, "Salary", savedCats[0].Name)
	require.Equal(t, models.CategoryIncome, savedCats[0].Type)
}

func TestRegisterUser_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, _, err := svc.RegisterUser(ctx, "ab", "u@e.com", "Abcdef1!")
	requireValidation(t, err, "username must be between 3 and 80 characters")

	_, _, err = svc.RegisterUser(ctx, strings.Repeat("x", 81), "u@e.com", "Abcdef1!")
	requireValidation(t, err, "username must be between 3 and 80 characters")

	_, _, err = svc.RegisterUser(ctx, "alice", "", "Abcdef1!")
	requireValidation(t, err, "email is required")

	_, _, err = svc.RegisterUser(ctx, "alice", "not-an-email", "Abcdef1!")
	requireValidation(t, err, "invalid email address")

	_, _, err = svc.RegisterUser(ctx, "alice", "u@e.com", "")
	requireValidation(t, err, "password is required")

	_, _, err = svc.RegisterUser(ctx, "alice", "u@e.com", "short")
	requireValidation(t, err, "password must be at least 6 characters")

	_, _, err = svc.RegisterUser(ctx, "alice", "u@e.com", strings.Repeat("p", 73))
	requireValidation(t, err, "password must not exceed 72 bytes")
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Если UserByUsername вернул пользователя (err == nil) - имя занято.
	st.EXPECT().UserByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: uuid.New(), Username: "alice"}, nil)

	_, _, err := svc.RegisterUser(context.Background(), "alice", "u@e.com", "Abcdef1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "alice").
		Return(nil, fmtWrap(storage.ErrNotFound))
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com"}, nil)

	_, _, err := svc.RegisterUser(context.Background(), "alice", "user@example.com", "Abcdef1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_LookupError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "alice").
		Return(nil, errors.New("db down"))

	_, _, err := svc.RegisterUser(context.Background(), "alice", "u@e.com", "Abcdef1!")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterUser_SaveUserAlreadyExists_MapsToEmailTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByEmail(gomock.Any(), "u@e.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		Return(fmtWrap(storage.ErrAlreadyExists))

	_, _, err := svc.RegisterUser(context.Background(), "alice", "u@e.com", "Abcdef1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

// Ошибка создания стартовых категорий не срывает регистрацию.
func TestRegisterUser_DefaultCategoriesFailure_Tolerated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByEmail(gomock.Any(), "u@e.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveCategories(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))

	user, tp, err := svc.RegisterUser(context.Background(), "alice", "u@e.com", "Abcdef1!")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, tp.AccessToken)
}

func TestLoginUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	email := "user@example.com"
	pw := "Abcdef1!"
	user := &models.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        email,
		PasswordHash: mustHashPW(t, pw),
	}

	st.EXPECT().UserByEmail(gomock.Any(), email).Return(user, nil)

	got, tp, err := svc.LoginUser(ctx, "User@Example.com", pw)
	require.NoError(t, err)
	require.Equal(t, user, got)
	require.NotEmpty(t, tp.AccessToken)
	require.NotEmpty(t, tp.RefreshToken)

	uid, err := svc.ValidateAccessToken(ctx, tp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
}

func TestLoginUser_InvalidEmail_OrEmptyPassword(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.LoginUser(context.Background(), "bad", "Abcdef1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.LoginUser(context.Background(), "user@example.com", "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UserNotFound_OrWrongPassword(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, fmtWrap(storage.ErrNotFound))

	_, _, err := svc.LoginUser(context.Background(), "user@example.com", "Abcdef1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// wrong password
	user := &models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: mustHashPW(t, "Abcdef1!")}
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(user, nil)

	_, _, err = svc.LoginUser(context.Background(), "user@example.com", "WRONG1!")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, errors.New("db problem"))

	_, _, err := svc.LoginUser(context.Background(), "user@example.com", "Abcdef1!")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

// Обновление access-токена не обращается к хранилищу: refresh-токен
// самодостаточен. Строгий мок без ожиданий это и проверяет.
func TestRefreshToken_OK_NoStorageCalls(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	rt, err := svc.generateToken(ctx, uid, tokenKindRefresh, time.Now().UTC(), svc.cfg.RefreshTokenTTL)
	require.NoError(t, err)

	at, err := svc.RefreshToken(ctx, rt)
	require.NoError(t, err)
	require.NotEmpty(t, at)

	gotUID, err := svc.ValidateAccessToken(ctx, at)
	require.NoError(t, err)
	require.Equal(t, uid, gotUID)
}

// Refresh не ротируется: тот же токен можно предъявить повторно.
func TestRefreshToken_Reusable(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	rt, err := svc.generateToken(ctx, uid, tokenKindRefresh, time.Now().UTC(), svc.cfg.RefreshTokenTTL)
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, rt)
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, rt)
	require.NoError(t, err)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	at, err := svc.generateToken(ctx, uuid.New(), tokenKindAccess, time.Now().UTC(), svc.cfg.AccessTokenTTL)
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, at)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestRefreshToken_ExpiredOrGarbage(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	expired, err := svc.generateToken(ctx, uuid.New(), tokenKindRefresh, time.Now().UTC(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, expired)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)

	_, err = svc.RefreshToken(ctx, "garbage")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}
