package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrorKind — вид ошибки API, разобранный один раз на границе клиента.
// Дальше по коду ошибка носится как типизированное значение: никакого
// повторного разглядывания тела ответа.
type ErrorKind int

const (
	// KindUnknown — вид определить не удалось; ошибку не классифицируем.
	KindUnknown ErrorKind = iota
	// KindInvalidCredentials — неверная пара email/пароль при логине.
	KindInvalidCredentials
	// KindDuplicateAccount — email или username уже заняты при регистрации
	// либо обновлении профиля.
	KindDuplicateAccount
	// KindTokenInvalid — токен битый, с неверной подписью или отсутствует.
	KindTokenInvalid
	// KindTokenExpired — срок действия токена истёк.
	KindTokenExpired
	// KindWrongTokenKind — токен валиден, но не того вида
	// (access на refresh-эндпойнте и наоборот).
	KindWrongTokenKind
	// KindInvalidArgument — сервер отверг входные данные (400).
	KindInvalidArgument
	// KindNotFound — ресурс не найден или принадлежит другому пользователю.
	KindNotFound
	// KindTransient — сетевая или серверная неисправность; состояние сессии
	// не трогаем, запрос можно повторить позже.
	KindTransient
)

// String возвращает имя вида для логов и сообщений.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindDuplicateAccount:
		return "duplicate_account"
	case KindTokenInvalid:
		return "token_invalid"
	case KindTokenExpired:
		return "token_expired"
	case KindWrongTokenKind:
		return "wrong_token_kind"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Error — типизированная ошибка API fintrack.
// Code и RequestID приходят из стандартного конверта
// {"error": {code, message, request_id}} и при его отсутствии пусты.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("session: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("session: api error %d: %s", e.StatusCode, e.Message)
}

// Temporary сообщает, имеет ли смысл повторить запрос позже.
func (e *Error) Temporary() bool {
	return e.Kind == KindTransient
}

// ErrNoRefreshToken — перехвачен отказ в аутентификации, а refresh-токена
// в хранилище нет: обменивать нечего. Ситуация восстановимая (например,
// гонка на старте приложения), поэтому сессия НЕ сбрасывается и хук
// разлогина не вызывается — исходный запрос просто завершается отказом.
var ErrNoRefreshToken = errors.New("session: no refresh token stored")

// KindOf возвращает вид ошибки:
//   - *Error — его собственный Kind;
//   - ErrNoRefreshToken — KindUnknown (не auth и не transient: ничего
//     не чистим и не повторяем автоматически);
//   - nil — KindUnknown;
//   - всё прочее (сетевые сбои, отменённые контексты, битые ответы) —
//     KindTransient: состояние сессии такие ошибки не трогают.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	if errors.Is(err, ErrNoRefreshToken) {
		return KindUnknown
	}

	return KindTransient
}

// IsAuthError сообщает, что ошибка относится к классу «аутентификация
// не прошла»: после неё либо идут на обмен refresh-токена, либо — если
// упал сам обмен — сбрасывают сессию. Оба статуса 401 и 422 сервера
// попадают сюда и клиентом не различаются.
func IsAuthError(err error) bool {
	switch KindOf(err) {
	case KindTokenInvalid, KindTokenExpired, KindWrongTokenKind:
		return true
	default:
		return false
	}
}

// Лимит на чтение тела ошибки: конверт крошечный, а дочитывать
// мегабайты с неисправного сервера незачем.
const errorBodyLimit = 64 << 10

// decodeAPIError разбирает ответ со статусом >= 400 в *Error.
// Вид берётся из машинного кода конверта; если конверта нет (прокси,
// посторонний сервер) — из HTTP-статуса.
func decodeAPIError(resp *http.Response) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Kind:       kindFromStatus(resp.StatusCode),
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

	var envelope struct {
		Error struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"request_id"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.RequestID = envelope.Error.RequestID
		apiErr.Kind = kindFromCode(envelope.Error.Code, resp.StatusCode)
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

// kindFromCode — машинный код сервера -> вид ошибки.
// Коды соответствуют internal/errors сервера.
func kindFromCode(code string, status int) ErrorKind {
	switch code {
	case "invalid_credentials":
		return KindInvalidCredentials
	case "email_taken", "username_taken":
		return KindDuplicateAccount
	case "invalid_token":
		return KindTokenInvalid
	case "token_expired":
		return KindTokenExpired
	case "wrong_token_kind":
		return KindWrongTokenKind
	case "invalid_argument", "category_exists", "budget_exists", "category_in_use":
		return KindInvalidArgument
	case "not_found":
		return KindNotFound
	case "internal", "deadline_exceeded", "canceled":
		return KindTransient
	default:
		return kindFromStatus(status)
	}
}

// kindFromStatus — резервная классификация по HTTP-статусу,
// когда конверт ошибки отсутствует или с неизвестным кодом.
func kindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindTokenInvalid
	case status == http.StatusUnprocessableEntity:
		return KindWrongTokenKind
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest:
		return KindInvalidArgument
	case status == http.StatusRequestTimeout || status == http.StatusTooManyRequests:
		return KindTransient
	case status >= http.StatusInternalServerError:
		return KindTransient
	default:
		return KindUnknown
	}
}
