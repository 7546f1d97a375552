package storage

import (
	"context"
	"errors"
	"time"

	"github.com/avoronova/go-fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound — запись не найдена (пользователь/категория/транзакция/бюджет/цель).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email/категория/бюджет).
	ErrAlreadyExists = errors.New("already exists")
	// ErrReferenced — запись нельзя удалить, на неё ссылаются другие записи.
	ErrReferenced = errors.New("referenced by other records")
)

// TransactionFilter — параметры выборки списка транзакций.
// Нулевые значения означают «фильтр не задан».
type TransactionFilter struct {
	Type       models.CategoryType
	CategoryID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Search     string
	Page       int
	PerPage    int
	SortBy     string // date | amount
	SortOrder  string // asc | desc
}

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email (регистронезависимо).
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByUsername находит пользователя по имени (регистронезависимо).
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdateUser сохраняет изменяемые поля профиля (username, email, theme, hash).
	UpdateUser(ctx context.Context, user *models.User) error
}

// CategoryStorage выполняет операции над категориями.
type CategoryStorage interface {
	// SaveCategory создает новую категорию.
	SaveCategory(ctx context.Context, category *models.Category) error
	// SaveCategories создает набор категорий одним батчем (дефолтные при регистрации).
	SaveCategories(ctx context.Context, categories []models.Category) error
	// CategoryByID находит категорию по ID.
	CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	// CategoriesByUser возвращает категории пользователя, опционально по типу.
	CategoriesByUser(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType) ([]models.Category, error)
	// UpdateCategory сохраняет имя/иконку/цвет категории.
	UpdateCategory(ctx context.Context, category *models.Category) error
	// DeleteCategory удаляет категорию.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// TransactionStorage выполняет операции над транзакциями.
type TransactionStorage interface {
	// SaveTransaction создает новую транзакцию.
	SaveTransaction(ctx context.Context, tx *models.Transaction) error
	// TransactionByID находит транзакцию по ID вместе с категорией.
	TransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	// ListTransactions возвращает страницу транзакций пользователя по фильтру.
	ListTransactions(ctx context.Context, userID uuid.UUID, filter TransactionFilter) (*models.TransactionPage, error)
	// UpdateTransaction сохраняет изменяемые поля транзакции.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	// DeleteTransaction удаляет транзакцию.
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	// CountByCategory возвращает число транзакций, ссылающихся на категорию.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	// SpentByCategory — сумма расходов по категории за период [from, to].
	SpentByCategory(ctx context.Context, userID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

// BudgetStorage выполняет операции над бюджетами.
type BudgetStorage interface {
	// SaveBudget создает новый бюджет.
	SaveBudget(ctx context.Context, budget *models.Budget) error
	// BudgetByID находит бюджет по ID вместе с категорией.
	BudgetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	// BudgetsByUser возвращает бюджеты пользователя за месяц/год (0 — без фильтра).
	BudgetsByUser(ctx context.Context, userID uuid.UUID, month, year int) ([]models.Budget, error)
	// UpdateBudget сохраняет сумму и период бюджета.
	UpdateBudget(ctx context.Context, budget *models.Budget) error
	// DeleteBudget удаляет бюджет.
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

// GoalStorage выполняет операции над накопительными целями.
type GoalStorage interface {
	// SaveGoal создает новую цель.
	SaveGoal(ctx context.Context, goal *models.SavingsGoal) error
	// GoalByID находит цель по ID.
	GoalByID(ctx context.Context, id uuid.UUID) (*models.SavingsGoal, error)
	// GoalsByUser возвращает цели пользователя, опционально по статусу.
	GoalsByUser(ctx context.Context, userID uuid.UUID, status models.GoalStatus) ([]models.SavingsGoal, error)
	// UpdateGoal сохраняет изменяемые поля цели (в т.ч. current_amount и status).
	UpdateGoal(ctx context.Context, goal *models.SavingsGoal) error
	// DeleteGoal удаляет цель.
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

// AnalyticsStorage выполняет агрегатные запросы по транзакциям.
type AnalyticsStorage interface {
	// Summary — доходы/расходы/баланс за период [from, to].
	Summary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*models.Summary, error)
	// SpendingByCategory — агрегаты по категориям заданного типа за период.
	SpendingByCategory(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType, from, to time.Time) ([]models.CategorySpending, error)
	// Trends — суммы по месяцам за период.
	Trends(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TrendPoint, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	CategoryStorage
	TransactionStorage
	BudgetStorage
	GoalStorage
	AnalyticsStorage
	Close()
}
