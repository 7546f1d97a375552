// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Auth     AuthConfig    `yaml:"auth"`
	DB       DBConfig      `yaml:"db"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"15s"`
}

// HTTPConfig — публичный REST-сервер приложения.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"9090"`
}

// Addr возвращает адрес в формате host:port.
func (m MetricsConfig) Addr() string {
	return net.JoinHostPort(m.Host, m.Port)
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"720h"`
	Issuer          string        `yaml:"issuer"   env:"ISSUER" env-default:"fintrack"`
	Audience        []string      `yaml:"audience" env:"AUDIENCE" env-default:"fintrack-web"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL   string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
	MigrationsDir string `yaml:"migrations_dir" env:"MIGRATIONS_DIR" env-default:"migrations"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
