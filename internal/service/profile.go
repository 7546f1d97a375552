package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"
)

// Profile возвращает профиль пользователя.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "service.profile.Profile"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateProfile обновляет username и/или email. nil означает «поле не менять».
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, username, email *string) (*models.User, error) {
	const op = "service.profile.UpdateProfile"

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	usernameChanged := false

	if username != nil {
		newUsername, err := validateUsername(*username)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if newUsername != user.Username {
			other, err := s.storage.UserByUsername(ctx, newUsername)
			if err == nil && other.ID != userID {
				return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
			}
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			user.Username = newUsername
			usernameChanged = true
		}
	}

	if email != nil {
		normEmail, err := validateEmail(*email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if normEmail != user.Email {
			other, err := s.storage.UserByEmail(ctx, normEmail)
			if err == nil && other.ID != userID {
				return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
			}
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			user.Email = normEmail
		}
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			if usernameChanged {
				return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
			}

			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateTheme сохраняет тему интерфейса пользователя.
func (s *Service) UpdateTheme(ctx context.Context, userID uuid.UUID, theme models.Theme) (*models.User, error) {
	const op = "service.profile.UpdateTheme"

	if !theme.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("theme must be light or dark"))
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user.ThemePreference = theme
	user.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ChangePassword меняет пароль после проверки текущего.
// Неверный текущий пароль — ErrInvalidCredentials (401).
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	const op = "service.profile.ChangePassword"

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, currentPassword) {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
