// session — Go-клиент REST API fintrack, реализующий сессионный протокол
// приложения: хранение пары токенов, подстановку Bearer в каждый исходящий
// запрос, прозрачный обмен refresh-токена с single-flight и очередью
// продолжений, повтор неудавшегося запроса не более одного раза и
// однократный хук принудительного разлогина.
//
// Состав пакета:
//   - Store / FileStore / MemoryStore — долговременное хранилище пары
//     токенов под фиксированными ключами (аналог localStorage браузера);
//   - Manager — владелец пары токенов и состояния обмена;
//   - Transport — http.RoundTripper с протоколом перехвата 401/422;
//   - Client — типизированные методы auth/profile и стартовая сверка
//     Bootstrap.
//
// Сессионное состояние намеренно не глобально: Manager создаётся явно и
// внедряется в транспорт, поэтому несколько независимых клиентов в одном
// процессе не пересекаются.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Credentials — пара токенов сессии. Пустая строка означает отсутствие
// соответствующей половины. Refresh-токен не ротируется сервером и
// действует до истечения своего срока.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty сообщает, что не сохранено ни одного токена.
func (c Credentials) Empty() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// Store — долговременное хранилище пары токенов.
// Load при отсутствии сохранённой пары возвращает пустые Credentials
// без ошибки; Clear при отсутствии — тоже не ошибка.
type Store interface {
	Load() (Credentials, error)
	Save(Credentials) error
	Clear() error
}

// MemoryStore хранит пару токенов в памяти процесса.
// Используется по умолчанию и в тестах; переживает пересоздание
// Client/Manager, но не перезапуск процесса.
type MemoryStore struct {
	mu    sync.Mutex
	creds Credentials
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

func (s *MemoryStore) Save(c Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = c
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	return nil
}

// FileStore хранит пару токенов в JSON-файле с фиксированными ключами
// access_token/refresh_token — переживает перезапуск процесса.
// Файл создаётся с правами 0600; запись атомарна (временный файл в той же
// директории + rename), чтобы упавший процесс не оставил битую пару.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore создаёт хранилище по указанному пути.
// Родительская директория создаётся при первом Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, nil
		}

		return Credentials{}, fmt.Errorf("session: read %s: %w", s.path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("session: parse %s: %w", s.path, err)
	}

	return creds, nil
}

func (s *FileStore) Save(c Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: mkdir %s: %w", dir, err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("session: marshal credentials: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("session: create temp file: %w", err)
	}

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("session: chmod temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("session: write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("session: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("session: rename temp file: %w", err)
	}

	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", s.path, err)
	}

	return nil
}
