package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/pkg/log"
	"github.com/avoronova/go-fintrack/internal/pkg/redact"
	"github.com/avoronova/go-fintrack/internal/storage"
)

// RegisterUser регистрирует нового пользователя и выдает пару токенов.
// Вместе с пользователем создается стартовый набор категорий.
func (s *Service) RegisterUser(ctx context.Context, username, email, password string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.RegisterUser"

	lg := log.From(ctx)

	username, err := validateUsername(username)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(password); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.UserByUsername(ctx, username)
	if err == nil {
		lg.Warn("register_username_taken",
			slog.String("op", op),
			slog.String("username", redact.Username(username)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.UserByEmail(ctx, normEmail)
	if err == nil {
		lg.Warn("register_email_taken",
			slog.String("op", op),
			slog.String("email", redact.Email(normEmail)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:              uuid.New(),
		Username:        username,
		Email:           normEmail,
		PasswordHash:    hashedPassword,
		ThemePreference: models.ThemeLight,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	// Стартовые категории не должны ломать регистрацию: при ошибке
	// пользователь просто начнет с пустым списком.
	if err := s.provisionDefaultCategories(ctx, user.ID); err != nil {
		lg.Warn("default_categories_failed",
			slog.String("op", op),
			slog.String("user_id", user.ID.String()),
			slog.String("err", err.Error()),
		)
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, pair, nil
}

// LoginUser выполняет вход по email+пароль.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.LoginUser"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login_unknown_email",
				slog.String("op", op),
				slog.String("email", redact.Email(normEmail)),
			)
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.String("op", op),
			slog.String("user_id", user.ID.String()),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, pair, nil
}

// RefreshToken выпускает новый access-токен по refresh-токену.
// Refresh-токен не ротируется и действует до истечения своего срока;
// проверка не ходит в БД — токен самодостаточен.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	const op = "service.auth.RefreshToken"

	uid, err := s.validateToken(refreshToken, tokenKindRefresh)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	accessToken, err := s.generateToken(ctx, uid, tokenKindAccess, time.Now().UTC(), s.cfg.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return accessToken, nil
}

// issueTokenPair выпускает новую пару access+refresh токенов.
func (s *Service) issueTokenPair(ctx context.Context, userID uuid.UUID) (*models.TokenPair, error) {
	const op = "service.auth.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateToken(ctx, userID, tokenKindAccess, now, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := s.generateToken(ctx, userID, tokenKindRefresh, now, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(s.cfg.AccessTokenTTL),
	}, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateUsername обрезает пробелы снаружи и проверяет длину имени.
func validateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(username); n < 3 || n > 80 {
		return "", invalidf("username must be between 3 and 80 characters")
	}

	return username, nil
}

// validateEmail проверяет базовый формат email и приводит его к нижнему регистру.
func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", invalidf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", invalidf("invalid email address")
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Верхняя граница 72 байта — ограничение bcrypt.
func validatePassword(pw string) error {
	if len(pw) == 0 {
		return invalidf("password is required")
	}

	if utf8.RuneCountInString(pw) < 6 {
		return invalidf("password must be at least 6 characters")
	}

	if len(pw) > 72 {
		return invalidf("password must not exceed 72 bytes")
	}

	return nil
}
