package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Таймаут HTTP-клиента по умолчанию. Покрывает весь цикл запроса,
// включая обмен refresh-токена и повтор.
const defaultTimeout = 30 * time.Second

// User — профиль пользователя в том виде, в котором его отдаёт API.
type User struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ThemePreference string    `json:"theme_preference"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpdateProfileParams — частичное обновление профиля: nil-поле
// остаётся без изменений.
type UpdateProfileParams struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Config — параметры клиента.
type Config struct {
	// BaseURL — абсолютный адрес API вместе с базовым путём,
	// например "http://localhost:8080/api/v1".
	BaseURL string

	// Store хранит токены между запусками процесса.
	// Nil — сессия живёт только в памяти.
	Store Store

	// OnSessionExpired вызывается не более одного раза на сессию, когда
	// восстановить её обменом refresh-токена не удалось. Сюда приложение
	// вешает «разлогинить и показать экран входа».
	OnSessionExpired func()

	// HTTPClient — основа для сетевых вызовов; nil — клиент с таймаутом
	// defaultTimeout. Переданный клиент не изменяется.
	HTTPClient *http.Client

	// UserAgent подставляется в каждый запрос, если не пуст.
	UserAgent string
}

// Client — клиент fintrack API, самостоятельно сопровождающий сессию:
// прикладывает access-токен к запросам, обновляет его по отказу и
// сбрасывает сессию, когда refresh-токен отвергнут сервером.
//
// Методы, меняющие состояние сессии (Login, Register, Logout), и все
// запросы через HTTPClient безопасны для конкурентного вызова.
type Client struct {
	base      *url.URL
	httpc     *http.Client
	plain     *http.Client
	manager   *Manager
	transport *Transport
	userAgent string

	// Последний известный профиль. Нужен стартовой сверке: внутри
	// защитного окна после логина она отвечает из кеша, не ходя в сеть.
	mu   sync.Mutex
	user *User
}

// NewClient собирает клиент: загружает сессию из Store и встраивает
// транспорт обновления токенов в HTTP-конвейер.
func NewClient(cfg Config) (*Client, error) {
	const op = "session.NewClient"

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s: base url is required", op)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	c := &Client{
		base:      base,
		plain:     hc,
		userAgent: cfg.UserAgent,
	}

	manager, err := NewManager(cfg.Store, func() {
		c.clearUser()
		if cfg.OnSessionExpired != nil {
			cfg.OnSessionExpired()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.manager = manager

	c.transport = &Transport{
		Base:    hc.Transport,
		Manager: manager,
		Refresh: c.exchangeRefreshToken,
	}

	// Копия пользовательского клиента с нашим транспортом: его таймауты
	// и куки сохраняются, сам он остаётся нетронутым.
	sc := *hc
	sc.Transport = c.transport
	c.httpc = &sc

	return c, nil
}

// Register создаёт аккаунт и открывает сессию с выданной парой токенов.
// Ошибка сохранения в Store возвращается вызывающему, но сессия в
// памяти к этому моменту уже установлена.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	const op = "session.Client.Register"

	in := registerPayload{Username: username, Email: email, Password: password}

	var out authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.openSession(op, out)
}

// Login открывает сессию по паре email/пароль.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	const op = "session.Client.Login"

	in := loginPayload{Email: email, Password: password}

	var out authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.openSession(op, out)
}

// Logout завершает сессию на клиенте: токены стираются из памяти и
// Store. Сервер не уведомляется — токены самодостаточны и ревокации
// нет, хук истечения не вызывается.
func (c *Client) Logout() error {
	const op = "session.Client.Logout"

	c.clearUser()

	if err := c.manager.Clear(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Authenticated сообщает, держит ли клиент хотя бы один токен сессии.
func (c *Client) Authenticated() bool {
	return c.manager.Authenticated()
}

// Profile запрашивает профиль текущего пользователя.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	const op = "session.Client.Profile"

	var out User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.setUser(out)

	return &out, nil
}

// UpdateProfile меняет username и/или email.
func (c *Client) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	const op = "session.Client.UpdateProfile"

	var out User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", params, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.setUser(out)

	return &out, nil
}

// UpdateTheme сохраняет предпочтение темы ("light" или "dark").
func (c *Client) UpdateTheme(ctx context.Context, theme string) (*User, error) {
	const op = "session.Client.UpdateTheme"

	in := updateThemePayload{ThemePreference: theme}

	var out User
	if err := c.do(ctx, http.MethodPut, "/auth/theme", in, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.setUser(out)

	return &out, nil
}

// ChangePassword меняет пароль, проверив текущий. Выданные ранее
// токены остаются действительными до истечения.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	const op = "session.Client.ChangePassword"

	in := changePasswordPayload{CurrentPassword: current, NewPassword: next}

	if err := c.do(ctx, http.MethodPut, "/auth/password", in, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Bootstrap — стартовая сверка сессии: устанавливает, кто сейчас
// аутентифицирован, по токенам из Store. Возвращает (nil, nil), если
// сессии нет; ошибку — только по сбоям, не трогающим состояние сессии.
//
//   - токенов нет: не аутентифицированы, сеть не используется;
//   - свежий логин (защитное окно): ответ из кеша, сеть не используется;
//   - только refresh-токен: access добывается обменом заранее, затем
//     запрашивается профиль;
//   - есть access-токен: запрашивается профиль, отказы проходят обычный
//     путь обновления.
//
// Если по дороге refresh-токен был отвергнут, сессия уже сброшена и хук
// истечения вызван; Bootstrap в этом случае отвечает (nil, nil).
func (c *Client) Bootstrap(ctx context.Context) (*User, error) {
	const op = "session.Client.Bootstrap"

	if c.manager.recentLogin() {
		if u := c.cachedUser(); u != nil {
			return u, nil
		}
	}

	if !c.manager.Authenticated() {
		return nil, nil
	}

	if c.manager.AccessToken() == "" {
		if _, err := c.transport.refreshAccessToken(ctx); err != nil {
			if IsAuthError(err) || errors.Is(err, ErrNoRefreshToken) {
				return nil, nil
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	user, err := c.Profile(ctx)
	if err != nil {
		if IsAuthError(err) && !c.manager.Authenticated() {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// HTTPClient возвращает *http.Client с транспортом сессии — для
// запросов к остальным эндпойнтам API (категории, операции, бюджеты,
// цели, аналитика) с теми же гарантиями обновления токена.
func (c *Client) HTTPClient() *http.Client {
	return c.httpc
}

// Manager даёт доступ к состоянию сессии напрямую.
func (c *Client) Manager() *Manager {
	return c.manager
}

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateThemePayload struct {
	ThemePreference string `json:"theme_preference"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type authPayload struct {
	User            User   `json:"user"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	AccessExpiresAt int64  `json:"access_expires_at"`
}

type refreshPayload struct {
	AccessToken string `json:"access_token"`
}

// openSession фиксирует результат логина или регистрации.
func (c *Client) openSession(op string, out authPayload) (*User, error) {
	c.setUser(out.User)

	creds := Credentials{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}
	if err := c.manager.SetSession(creds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := out.User

	return &user, nil
}

// do выполняет запрос через транспорт сессии и разбирает ответ.
// Статусы >= 400 превращаются в *Error.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		// *bytes.Reader даёт запросу GetBody — повтор после обновления
		// токена воспроизводит тело без участия вызывающего.
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, errorBodyLimit))

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// exchangeRefreshToken — RefreshFunc клиента: POST /auth/refresh с
// refresh-токеном в Authorization: Bearer, тем же способом, которым
// access-токен ходит на защищённые маршруты. Запрос идёт мимо
// транспорта сессии: обновлять токены внутри обмена нечем.
func (c *Client) exchangeRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base.JoinPath("/auth/refresh").String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.plain.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", decodeAPIError(resp)
	}

	var out refreshPayload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.AccessToken == "" {
		return "", errors.New("refresh response without access token")
	}

	return out.AccessToken, nil
}

func (c *Client) cachedUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return nil
	}

	u := *c.user

	return &u
}

func (c *Client) setUser(u User) {
	c.mu.Lock()
	c.user = &u
	c.mu.Unlock()
}

func (c *Client) clearUser() {
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()
}
