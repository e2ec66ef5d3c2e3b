package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-CourtAvailability/pkg/psqlbuilder"
)

// Переменные окружения, переопределяющие файл
const (
	EnvDBPassword = "DB_PASSWORD"
	EnvDBHost     = "DB_HOST"
	EnvHTTPPort   = "HTTP_PORT"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Cache     CacheConfig     `toml:"cache"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	App       AppConfig       `toml:"app"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig источник данных кортов
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres или sqlite
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл sqlite
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig логирование
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig кэш ответов для прошлых дат
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// SchedulerConfig ночной прогрев кэша
type SchedulerConfig struct {
	Enabled  bool   `toml:"enabled"`
	CronSpec string `toml:"cron_spec"`
}

// AppConfig прикладные настройки
type AppConfig struct {
	Timezone       string `toml:"timezone"`
	FacilitiesFile string `toml:"facilities_file"` // пусто: встроенная таблица
}

// DSN строка подключения к Postgres или путь к файлу sqlite
func (c DatabaseConfig) DSN() string {
	if c.Driver == psqlbuilder.DriverSQLite {
		return c.Path
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// Location часовой пояс, в котором определяется "сегодня"
func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает .env рядом с файлом (если есть), затем TOML, затем
// применяет значения по умолчанию и переопределения из окружения
func Load(path string) (*Config, error) {
	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: Load - env file %s: %v", ErrReadConfig, envFile, err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: Load - decode %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          psqlbuilder.DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "court-availability",
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "data/availability-cache.db",
		},
		Scheduler: SchedulerConfig{
			Enabled:  true,
			CronSpec: "15 0 * * *",
		},
		App: AppConfig{
			Timezone: "America/Los_Angeles",
		},
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvDBHost); ok && v != "" {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case psqlbuilder.DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case psqlbuilder.DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database.path is required for sqlite", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: database.driver=%q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("%w: cache.path is required when cache is enabled", ErrInvalidConfig)
	}

	if c.Scheduler.Enabled {
		if !c.Cache.Enabled {
			return fmt.Errorf("%w: scheduler requires cache.enabled", ErrInvalidConfig)
		}
		if _, err := cron.ParseStandard(c.Scheduler.CronSpec); err != nil {
			return fmt.Errorf("%w: scheduler.cron_spec=%q: %v", ErrInvalidConfig, c.Scheduler.CronSpec, err)
		}
	}

	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("%w: app.timezone=%q: %v", ErrInvalidConfig, c.App.Timezone, err)
	}

	return nil
}
