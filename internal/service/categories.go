package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/avoronova/go-fintrack/internal/storage"
)

const (
	defaultCategoryIcon  = "circle"
	defaultCategoryColor = "#6366f1"
)

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateCategory создает категорию пользователя.
// Пустые icon/color заменяются значениями по умолчанию.
func (s *Service) CreateCategory(ctx context.Context, userID uuid.UUID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error) {
	const op = "service.categories.CreateCategory"

	name, err := validateName(name, 100)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !categoryType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("type must be income or expense"))
	}

	if icon == "" {
		icon = defaultCategoryIcon
	}
	if err := validateIcon(icon); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if color == "" {
		color = defaultCategoryColor
	}
	if err := validateColor(color); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrCategoryExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// Categories возвращает категории пользователя, отсортированные по имени.
// Непустой categoryType сужает выборку до одного типа.
func (s *Service) Categories(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType) ([]models.Category, error) {
	const op = "service.categories.Categories"

	if categoryType != "" && !categoryType.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalidf("type must be income or expense"))
	}

	categories, err := s.storage.CategoriesByUser(ctx, userID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

// CategoryByID возвращает категорию с проверкой владения.
func (s *Service) CategoryByID(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error) {
	const op = "service.categories.CategoryByID"

	category, err := s.storage.CategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Чужая категория неотличима от несуществующей.
	if category.UserID != userID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return category, nil
}

// UpdateCategory обновляет имя/иконку/цвет категории. nil означает «поле не
// менять». Тип категории неизменяем: привязанные транзакции не должны менять знак.
func (s *Service) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, name, icon, color *string) (*models.Category, error) {
	const op = "service.categories.UpdateCategory"

	category, err := s.CategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if name != nil {
		newName, err := validateName(*name, 100)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		category.Name = newName
	}

	if icon != nil {
		if err := validateIcon(*icon); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		category.Icon = *icon
	}

	if color != nil {
		if err := validateColor(*color); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		category.Color = *color
	}

	category.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrCategoryExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// DeleteCategory удаляет категорию. Категория со связанными транзакциями
// не удаляется — возвращается CategoryInUseError с их количеством.
func (s *Service) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	const op = "service.categories.DeleteCategory"

	if _, err := s.CategoryByID(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, storage.ErrReferenced) {
			count, cntErr := s.storage.CountByCategory(ctx, categoryID)
			if cntErr != nil {
				return fmt.Errorf("%s: %w", op, cntErr)
			}

			return fmt.Errorf("%s: %w", op, &CategoryInUseError{TransactionCount: count})
		}

		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// validateName обрезает пробелы снаружи и проверяет длину имени.
func validateName(raw string, max int) (string, error) {
	name := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(name); n < 1 || n > max {
		return "", invalidf("name must be between 1 and %d characters", max)
	}

	return name, nil
}

// validateIcon проверяет длину имени иконки.
func validateIcon(icon string) error {
	if utf8.RuneCountInString(icon) > 50 {
		return invalidf("icon must not exceed 50 characters")
	}

	return nil
}

// validateColor проверяет формат цвета #rrggbb.
func validateColor(color string) error {
	if !colorRe.MatchString(color) {
		return invalidf("color must match #rrggbb")
	}

	return nil
}
