package session

import (
	"fmt"
	"sync"
	"time"
)

// Окно после логина, в течение которого стартовая сверка сессии
// считается избыточной: токены только что выданы сервером.
const loginGuard = 2 * time.Second

// RefreshResult — исход обмена refresh-токена, доставляемый запросам,
// ожидавшим завершения чужого обмена.
type RefreshResult struct {
	AccessToken string
	Err         error
}

// Manager владеет состоянием сессии: парой токенов в памяти и её копией
// в Store. Память — источник истины; Store лишь переживает перезапуск
// процесса. Все методы безопасны для конкурентного вызова.
//
// Обмен refresh-токена координируется по принципу single-flight:
// первый запрос, заставший отказ в аутентификации, становится лидером
// и выполняет обмен, остальные ждут его результата через BeginRefresh.
type Manager struct {
	store Store

	// onExpired вызывается не более одного раза на сессию, когда обмен
	// refresh-токена окончательно провалился. Повторный SetSession
	// взводит хук заново.
	onExpired func()

	mu           sync.Mutex
	creds        Credentials
	refreshing   bool
	waiters      []chan RefreshResult
	expiredFired bool
	loginAt      time.Time

	now func() time.Time
}

// NewManager создаёт менеджер и загружает сохранённую сессию из store.
// Nil store заменяется на MemoryStore.
func NewManager(store Store, onExpired func()) (*Manager, error) {
	const op = "session.NewManager"

	if store == nil {
		store = NewMemoryStore()
	}

	creds, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Manager{
		store:     store,
		onExpired: onExpired,
		creds:     creds,
		now:       time.Now,
	}, nil
}

// AccessToken возвращает текущий access-токен; пустая строка — токена нет.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.creds.AccessToken
}

// RefreshToken возвращает текущий refresh-токен; пустая строка — токена нет.
func (m *Manager) RefreshToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.creds.RefreshToken
}

// Authenticated сообщает, держит ли менеджер хотя бы один токен.
// Любой из пары пригоден для восстановления сессии, поэтому наличие
// одного лишь refresh-токена — тоже аутентифицированное состояние.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return !m.creds.Empty()
}

// SetSession устанавливает новую пару токенов после логина или
// регистрации: взводит хук истечения заново и запоминает момент входа.
// При ошибке сохранения сессия в памяти всё равно остаётся установленной.
func (m *Manager) SetSession(creds Credentials) error {
	const op = "session.Manager.SetSession"

	m.mu.Lock()
	m.creds = creds
	m.expiredFired = false
	m.loginAt = m.now()
	err := m.store.Save(creds)
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Clear стирает сессию из памяти и Store. Это добровольный выход:
// хук истечения не вызывается.
func (m *Manager) Clear() error {
	const op = "session.Manager.Clear"

	m.mu.Lock()
	m.creds = Credentials{}
	m.loginAt = time.Time{}
	err := m.store.Clear()
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Expire принудительно завершает сессию: стирает токены и вызывает хук
// истечения, если он ещё не срабатывал для этой сессии. Хук вызывается
// вне мьютекса, чтобы из него можно было обращаться к менеджеру.
func (m *Manager) Expire() {
	m.mu.Lock()
	fire := !m.creds.Empty() && !m.expiredFired && m.onExpired != nil
	m.creds = Credentials{}
	m.loginAt = time.Time{}
	m.expiredFired = true
	_ = m.store.Clear()
	m.mu.Unlock()

	if fire {
		m.onExpired()
	}
}

// BeginRefresh включает вызывающего в протокол single-flight.
// Лидер (leader == true) обязан выполнить обмен и доложить результат
// через FinishRefresh. Остальным возвращается канал, из которого придёт
// ровно один RefreshResult.
func (m *Manager) BeginRefresh() (leader bool, wait <-chan RefreshResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.refreshing {
		ch := make(chan RefreshResult, 1)
		m.waiters = append(m.waiters, ch)

		return false, ch
	}

	m.refreshing = true

	return true, nil
}

// FinishRefresh завершает обмен: при успехе подменяет access-токен
// (refresh-токен сервером не ротируется) и сохраняет пару, затем
// рассылает результат всем ожидающим. Ошибка сохранения в Store
// не считается ошибкой обмена — память остаётся источником истины.
func (m *Manager) FinishRefresh(accessToken string, err error) {
	m.mu.Lock()
	if err == nil {
		m.creds.AccessToken = accessToken
		_ = m.store.Save(m.creds)
	}
	waiters := m.waiters
	m.waiters = nil
	m.refreshing = false
	m.mu.Unlock()

	res := RefreshResult{AccessToken: accessToken, Err: err}
	for _, ch := range waiters {
		ch <- res
	}
}

// recentLogin сообщает, что логин произошёл только что и стартовую
// сверку сессии можно пропустить.
func (m *Manager) recentLogin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loginAt.IsZero() {
		return false
	}

	return m.now().Sub(m.loginAt) < loginGuard
}
