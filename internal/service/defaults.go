package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avoronova/go-fintrack/internal/models"
)

// defaultCategory — шаблон стартовой категории нового пользователя.
type defaultCategory struct {
	name  string
	typ   models.CategoryType
	icon  string
	color string
}

var defaultCategories = []defaultCategory{
	{"Salary", models.CategoryIncome, "briefcase", "#10b981"},
	{"Freelance", models.CategoryIncome, "laptop", "#059669"},
	{"Investments", models.CategoryIncome, "trending-up", "#34d399"},
	{"Business", models.CategoryIncome, "building", "#6ee7b7"},
	{"Other Income", models.CategoryIncome, "plus-circle", "#a7f3d0"},

	{"Food & Dining", models.CategoryExpense, "utensils", "#ef4444"},
	{"Transportation", models.CategoryExpense, "car", "#f97316"},
	{"Shopping", models.CategoryExpense, "shopping-bag", "#f59e0b"},
	{"Entertainment", models.CategoryExpense, "film", "#eab308"},
	{"Bills & Utilities", models.CategoryExpense, "file-text", "#84cc16"},
	{"Healthcare", models.CategoryExpense, "heart", "#22c55e"},
	{"Education", models.CategoryExpense, "book", "#06b6d4"},
	{"Travel", models.CategoryExpense, "plane", "#0ea5e9"},
	{"Housing", models.CategoryExpense, "home", "#3b82f6"},
	{"Personal Care", models.CategoryExpense, "user", "#6366f1"},
	{"Gifts & Donations", models.CategoryExpense, "gift", "#8b5cf6"},
	{"Insurance", models.CategoryExpense, "shield", "#a855f7"},
	{"Other Expenses", models.CategoryExpense, "more-horizontal", "#d946ef"},
}

// provisionDefaultCategories создает стартовый набор категорий одним батчем.
func (s *Service) provisionDefaultCategories(ctx context.Context, userID uuid.UUID) error {
	const op = "service.defaults.provisionDefaultCategories"

	now := time.Now().UTC()

	categories := make([]models.Category, 0, len(defaultCategories))
	for _, dc := range defaultCategories {
		categories = append(categories, models.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      dc.name,
			Type:      dc.typ,
			Icon:      dc.icon,
			Color:     dc.color,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.storage.SaveCategories(ctx, categories); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
