package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	"github.com/m04kA/Zonomo-CartService/internal/infra/storage/kv"
)

// Переменные окружения для секретов
const (
	EnvStripeSecretKey  = "STRIPE_SECRET_KEY"
	EnvDatabasePassword = "DATABASE_PASSWORD"
	EnvRedisPassword    = "REDIS_PASSWORD"
)

// Backend-ы хранилища корзин
const (
	CartBackendRedis    = kv.BackendRedis
	CartBackendPostgres = kv.BackendPostgres
	CartBackendMemory   = kv.BackendMemory
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Cart     CartConfig     `toml:"cart"`
	Payment  PaymentConfig  `toml:"payment"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL (каталог, заказы, опционально корзины)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// RedisConfig настройки Redis для хранения корзин
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// CartConfig настройки корзины
type CartConfig struct {
	Backend    string `toml:"backend"`     // redis | postgres | memory
	StorageKey string `toml:"storage_key"` // префикс ключа, ключ сессии: <storage_key>:<sessionID>
	TTLHours   int    `toml:"ttl_hours"`   // только для redis, 0 - без срока
	MaxItems   int    `toml:"max_items"`
	Timezone   string `toml:"timezone"` // IANA зона, в которой интерпретируются даты и слоты
}

// PaymentConfig настройки платежного шлюза
type PaymentConfig struct {
	SecretKey      string  `toml:"secret_key"`
	Currency       string  `toml:"currency"`
	TransactionFee float64 `toml:"transaction_fee"`
	SuccessURL     string  `toml:"success_url"` // может содержать {orderId}
	CancelURL      string  `toml:"cancel_url"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из TOML файла
// Секреты из переменных окружения (и .env, если он есть) перекрывают значения из файла.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Cart: CartConfig{
			Backend:    CartBackendRedis,
			StorageKey: domain.DefaultCartStorageKey,
			TTLHours:   72,
			MaxItems:   domain.MaxCartItems,
			Timezone:   "UTC",
		},
		Payment: PaymentConfig{
			Currency:       domain.DefaultCurrency,
			TransactionFee: domain.DefaultTransactionFee,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "zonomo_cart_service",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStripeSecretKey); v != "" {
		c.Payment.SecretKey = v
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.host, database.dbname and database.user are required", ErrInvalidConfig)
	}

	switch c.Cart.Backend {
	case CartBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis cart backend", ErrInvalidConfig)
		}
	case CartBackendPostgres, CartBackendMemory:
	default:
		return fmt.Errorf("%w: unknown cart.backend %q", ErrInvalidConfig, c.Cart.Backend)
	}

	if _, err := c.Cart.Location(); err != nil {
		return fmt.Errorf("%w: cart.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Cart.TTLHours < 0 {
		return fmt.Errorf("%w: cart.ttl_hours must not be negative", ErrInvalidConfig)
	}

	if c.Payment.SecretKey == "" {
		return fmt.Errorf("%w: payment secret key is required (%s)", ErrInvalidConfig, EnvStripeSecretKey)
	}
	if c.Payment.TransactionFee < 0 {
		return fmt.Errorf("%w: payment.transaction_fee must not be negative", ErrInvalidConfig)
	}
	if c.Payment.Currency == "" {
		return fmt.Errorf("%w: payment.currency is required", ErrInvalidConfig)
	}
	if c.Payment.SuccessURL == "" || c.Payment.CancelURL == "" {
		return fmt.Errorf("%w: payment.success_url and payment.cancel_url are required", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	return nil
}

// Location возвращает часовой пояс бронирований
func (c CartConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
