package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avoronova/go-fintrack/internal/http/middleware"
	"github.com/avoronova/go-fintrack/internal/service"
	"github.com/google/uuid"
)

// Handlers агрегирует зависимости HTTP-слоя (сервис бизнес-логики).
type Handlers struct {
	Service *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{Service: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidBody — вспомогалка: локальная ошибка парсинга тела -> 400/invalid_argument.
func errInvalidBody() error {
	return &service.ValidationError{Msg: "invalid request body"}
}

// errInvalidParam — вспомогалка: неразборчивый query/path-параметр -> 400/invalid_argument.
func errInvalidParam(name string) error {
	return &service.ValidationError{Msg: name + " is invalid"}
}

// currentUserID — ID пользователя, положенный RequireAuth.
// Отсутствие значения означает маршрут вне защищённой группы,
// то есть ошибку сборки роутера.
func currentUserID(r *http.Request) (uuid.UUID, bool) {
	return middleware.UserIDFromContext(r.Context())
}

// errNoUser — защищённый хендлер оказался вне RequireAuth; это баг сборки
// роутера, наружу уходит 500/internal.
func errNoUser() error {
	return errors.New("no authenticated user in context")
}

// queryInt парсит опциональный целочисленный query-параметр (0 — не задан).
func queryInt(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errInvalidParam(name)
	}

	return n, nil
}

// queryDate парсит опциональную дату из query: YYYY-MM-DD либо RFC3339.
func queryDate(q url.Values, name string) (*time.Time, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}

	if t, err := time.Parse(dateLayout, v); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}

	return nil, errInvalidParam(name)
}
