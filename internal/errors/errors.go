// errors стандартизирует ответы об ошибках HTTP-слоя fintrack.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: sentinel-ошибки и типизированные
// ошибки из internal/service.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/avoronova/go-fintrack/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// Details — структурированные дополнения (например, transaction_count
// при попытке удалить используемую категорию).
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - *service.ValidationError - 400 с текстом конкретной проверки:
//     сообщения валидации пишутся для пользователя и не содержат деталей
//     реализации, поэтому их безопасно отдавать наружу.
//   - *service.CategoryInUseError - 400 с details.transaction_count,
//     чтобы фронт мог показать осмысленный диалог.
//   - sentinel-ошибки сервиса - см. таблицу в baseFromService().
//   - прочее - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	var vErr *service.ValidationError
	if stderrors.As(err, &vErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:    "invalid_argument",
				Message: vErr.Msg,
			},
		}
	}

	var inUseErr *service.CategoryInUseError
	if stderrors.As(err, &inUseErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:    "category_in_use",
				Message: "category has linked transactions",
				Details: map[string]any{
					"transaction_count": inUseErr.TransactionCount,
				},
			},
		}
	}

	httpStatus, code, msg := baseFromService(err)
	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromService — базовый маппинг сервисных ошибок -> HTTP/FE-код/сообщение.
// Таблица учитывает реальные коды сервисного слоя:
//   - ErrInvalidCredentials -> 401 (логин: неверный email/пароль)
//   - ErrInvalidToken -> 401 (битый/чужой токен)
//   - ErrTokenExpired -> 401 (токен истёк; фронт и SDK идут делать refresh)
//   - ErrWrongTokenKind -> 422 (валидный токен не того типа:
//     refresh вместо access и наоборот)
//   - ErrEmailTaken / ErrUsernameTaken -> 400 (конфликты регистрации;
//     отдаём 400, а не 409: фронт показывает их как ошибки полей формы)
//   - ErrCategoryExists / ErrBudgetExists -> 400 (дубликаты по той же причине)
//   - ErrNotFound -> 404 (включая чужие ресурсы: не раскрываем существование)
//   - context.Canceled -> 499 (клиент закрыл соединение)
//   - context.DeadlineExceeded -> 504 (таймаут запроса)
//   - прочее -> 500/internal
func baseFromService(err error) (int, string, string) {
	switch {
	case stderrors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid email or password"
	case stderrors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, "token_expired", "token expired"
	case stderrors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token", "invalid token"
	case stderrors.Is(err, service.ErrWrongTokenKind):
		return http.StatusUnprocessableEntity, "wrong_token_kind", "wrong token kind"
	case stderrors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, "email_taken", "email already registered"
	case stderrors.Is(err, service.ErrUsernameTaken):
		return http.StatusBadRequest, "username_taken", "username already exists"
	case stderrors.Is(err, service.ErrCategoryExists):
		return http.StatusBadRequest, "category_exists", "category already exists"
	case stderrors.Is(err, service.ErrBudgetExists):
		return http.StatusBadRequest, "budget_exists", "budget for this month already exists"
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
