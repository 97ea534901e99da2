package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-CartService/internal/domain"
)

// Драйверы хранилища корзины
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Redis     RedisConfig     `toml:"redis"`
	Database  DatabaseConfig  `toml:"database"`
	Cart      CartConfig      `toml:"cart"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор бэкенда хранилища корзины
type StorageConfig struct {
	Driver    string `toml:"driver"`
	KeyPrefix string `toml:"key_prefix"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Table           string `toml:"table"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// CartConfig параметры корзины
type CartConfig struct {
	PollInterval   duration `toml:"poll_interval"`
	MinLeadMinutes *int     `toml:"min_lead_minutes"`
	Timezone       string   `toml:"timezone"`
}

// RateLimitConfig ограничение частоты оформления для одного клиента
// Заголовку X-Forwarded-For верим только за доверенным прокси (trust_forwarded_for)
type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RPS               float64  `toml:"rps"`
	Burst             int      `toml:"burst"`
	IdleTimeout       duration `toml:"idle_timeout"`
	TrustForwardedFor bool     `toml:"trust_forwarded_for"`
}

// duration time.Duration, читаемый из строки вида "2s"
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переменные окружения (в том числе из .env, если он есть)
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация без файла: память, метрики выключены
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	// SSE соединения живут долго, WriteTimeout 0 не ограничивает их
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-cartservice"
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Cart.PollInterval.Duration == 0 {
		c.Cart.PollInterval.Duration = domain.DefaultPollInterval
	}
	if c.Cart.MinLeadMinutes == nil {
		lead := domain.DefaultMinLeadTimeMinutes
		c.Cart.MinLeadMinutes = &lead
	}

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 2
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}
	if c.RateLimit.IdleTimeout.Duration == 0 {
		c.RateLimit.IdleTimeout.Duration = 10 * time.Minute
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Cart.PollInterval.Duration < domain.MinPollInterval {
		return fmt.Errorf("%w: cart.poll_interval must be at least %s", ErrInvalidConfig, domain.MinPollInterval)
	}

	lead := c.MinLeadMinutes()
	if lead < 0 || lead > domain.MaxMinLeadTimeMinutes {
		return fmt.Errorf("%w: cart.min_lead_minutes must be within [0, %d]", ErrInvalidConfig, domain.MaxMinLeadTimeMinutes)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: cart.timezone: %v", ErrInvalidConfig, err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && c.RateLimit.IdleTimeout.Duration < 0 {
		return fmt.Errorf("%w: rate_limit.idle_timeout must be positive", ErrInvalidConfig)
	}

	return nil
}

// PollInterval период опроса хранилища
func (c *Config) PollInterval() time.Duration {
	return c.Cart.PollInterval.Duration
}

// RateLimitIdleTimeout через сколько простоя забывается лимит клиента
func (c *Config) RateLimitIdleTimeout() time.Duration {
	return c.RateLimit.IdleTimeout.Duration
}

// MinLeadMinutes минимальный запас времени до начала слота
func (c *Config) MinLeadMinutes() int {
	if c.Cart.MinLeadMinutes == nil {
		return domain.DefaultMinLeadTimeMinutes
	}
	return *c.Cart.MinLeadMinutes
}

// Location часовой пояс, в котором трактуются даты корзины
func (c *Config) Location() (*time.Location, error) {
	if c.Cart.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Cart.Timezone)
}
