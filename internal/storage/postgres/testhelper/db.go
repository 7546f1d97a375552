// testhelper поднимает общий PostgreSQL-контейнер для интеграционных тестов
// и накатывает goose-миграции из каталога ./migrations.
//
// Контейнер стартует один раз на весь тестовый прогон (sync.Once) и живет
// до завершения процесса. Изоляция тестов обеспечивается уникальными
// пользователями: все выборки в хранилище скоупятся по user_id.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx-драйвер для database/sql (goose)
	"github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// DSN возвращает строку подключения к общей тестовой БД с примененными
// миграциями. Если переменная окружения GO_TEST_INTEGRATION не установлена —
// тест пропускается.
func DSN(t *testing.T) string {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	return sharedDSN
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "user",
			"POSTGRES_PASSWORD": "pass",
			"POSTGRES_DB":       "db",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// goose работает через database/sql.
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(migrationsDir()))
	if err != nil {
		return "", fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return "", fmt.Errorf("goose up: %w", err)
	}

	return dsn, nil
}

// migrationsDir — абсолютный путь к ./migrations относительно этого файла.
func migrationsDir() string {
	_, thisFile, _, _ := runtime.Caller(0)
	// internal/storage/postgres/testhelper -> подняться на 4 уровня до корня.
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "..", "migrations"))
}
