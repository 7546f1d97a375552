// service содержит бизнес-логику трекера личных финансов:
// регистрацию/аутентификацию пользователей, выпуск/проверку JWT,
// категории, транзакции, бюджеты, накопительные цели и аналитику.
// Работа с хранилищем идет через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"fmt"

	"github.com/avoronova/go-fintrack/internal/config"
	"github.com/avoronova/go-fintrack/internal/storage"
)

var (
	// ErrInvalidCredentials — пара email/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату/подписи.
	// Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк.
	// Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrWrongTokenKind — токен криптографически корректен, но его вид не
	// подходит операции (например, access-токен в refresh-эндпоинте).
	// Транспорт: HTTP 422.
	ErrWrongTokenKind = errors.New("wrong token kind")

	// ErrEmailTaken — e-mail уже занят другим пользователем.
	// Транспорт: HTTP 400.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken — username уже занят другим пользователем.
	// Транспорт: HTTP 400.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNotFound — сущность не найдена или принадлежит другому пользователю.
	// Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrCategoryExists — у пользователя уже есть категория с таким именем и типом.
	// Транспорт: HTTP 400.
	ErrCategoryExists = errors.New("category already exists")

	// ErrBudgetExists — бюджет по этой категории на этот месяц уже задан.
	// Транспорт: HTTP 400.
	ErrBudgetExists = errors.New("budget for this category and month already exists")
)

// ValidationError — ошибка валидации входных данных.
// Сообщение безопасно показывать клиенту. Транспорт: HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// invalidf создает ValidationError с форматированным сообщением.
func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// CategoryInUseError — категорию нельзя удалить: на неё ссылаются транзакции.
// Транспорт: HTTP 400 с количеством связанных транзакций.
type CategoryInUseError struct {
	TransactionCount int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category has %d linked transactions", e.TransactionCount)
}

// Service описывает бизнес-логику приложения.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
