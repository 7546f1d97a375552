package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
)

// RefreshFunc обменивает refresh-токен на новый access-токен.
// Ошибки аутентификации (просроченный или битый refresh-токен) должны
// распознаваться IsAuthError — по ним транспорт сбрасывает сессию.
type RefreshFunc func(ctx context.Context, refreshToken string) (string, error)

// Transport — http.RoundTripper, прозрачно сопровождающий запросы
// access-токеном и обновляющий его при отказе в аутентификации.
//
// Протокол перехвата: ответ 401 или 422 на неисключённый запрос
// запускает обмен refresh-токена (single-flight через Manager), после
// чего исходный запрос повторяется ровно один раз с новым токеном.
// Повторный отказ возвращается вызывающему как есть: второй обмен для
// того же запроса не начинается никогда.
//
// Исход обмена определяет результат исходного запроса:
//   - успех — запрос повторяется с новым access-токеном;
//   - ошибка аутентификации — Manager.Expire (сессия сброшена, хук
//     вызван) и вызывающему возвращается исходный отказ;
//   - refresh-токена нет — сессия не трогается, возвращается исходный
//     отказ;
//   - сетевая или серверная ошибка — сессия не трогается, ошибка обмена
//     отдаётся вызывающему вместо ответа.
type Transport struct {
	// Base выполняет сами запросы; nil — http.DefaultTransport.
	Base http.RoundTripper

	// Manager хранит токены и координирует single-flight.
	Manager *Manager

	// Refresh выполняет обмен refresh-токена.
	Refresh RefreshFunc

	// Exempt помечает запросы, которые не получают access-токен и не
	// перехватываются: логин, регистрация и сам обмен. Nil — проверка
	// по суффиксу пути.
	Exempt func(*http.Request) bool
}

// RoundTrip реализует http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.exempt(req) {
		return t.base().RoundTrip(req)
	}

	out := req.Clone(req.Context())
	if token := t.Manager.AccessToken(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	} else {
		out.Header.Del("Authorization")
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusUnprocessableEntity {
		return resp, nil
	}

	// Запрос с невоспроизводимым телом повторить нельзя — отказ отдаётся
	// как есть. Запросы самого клиента воспроизводимы всегда.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	// Тело отказа выкупается заранее: если обмен не удастся, исходный
	// ответ должен остаться читаемым для вызывающего.
	buf, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(buf))

	token, err := t.refreshAccessToken(req.Context())
	if err != nil {
		if IsAuthError(err) || errors.Is(err, ErrNoRefreshToken) {
			return resp, nil
		}

		return nil, err
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return resp, nil
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+token)

	return t.base().RoundTrip(retry)
}

// refreshAccessToken выполняет обмен refresh-токена в режиме
// single-flight: лидер делает сетевой вызов, остальные ждут его
// результата. Ожидание прерывается контекстом запроса.
func (t *Transport) refreshAccessToken(ctx context.Context) (string, error) {
	leader, wait := t.Manager.BeginRefresh()
	if !leader {
		select {
		case res := <-wait:
			return res.AccessToken, res.Err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	refresh := t.Manager.RefreshToken()
	if refresh == "" {
		t.Manager.FinishRefresh("", ErrNoRefreshToken)

		return "", ErrNoRefreshToken
	}

	token, err := t.Refresh(ctx, refresh)
	if err != nil {
		// Отвергнутый refresh-токен обменять уже не получится:
		// сессия сбрасывается до оповещения ожидающих.
		if IsAuthError(err) {
			t.Manager.Expire()
		}
		t.Manager.FinishRefresh("", err)

		return "", err
	}

	t.Manager.FinishRefresh(token, nil)

	return token, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}

	return http.DefaultTransport
}

func (t *Transport) exempt(req *http.Request) bool {
	if t.Exempt != nil {
		return t.Exempt(req)
	}

	return exemptPath(req.URL.Path)
}

// exemptPath — эндпойнты аутентификации, живущие без access-токена.
func exemptPath(path string) bool {
	return strings.HasSuffix(path, "/auth/login") ||
		strings.HasSuffix(path, "/auth/register") ||
		strings.HasSuffix(path, "/auth/refresh")
}
