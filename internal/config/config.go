package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
	Pricing  PricingConfig  `toml:"pricing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	AvailabilityTTL int    `toml:"availability_ttl"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret       string      `toml:"jwt_secret"`
	TokenTTLMinutes int         `toml:"token_ttl_minutes"`
	Admins          []AdminUser `toml:"admins"`
}

// AdminUser учетная запись администратора, пароль хранится в виде bcrypt-хэша
type AdminUser struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
}

type BookingConfig struct {
	DefaultCapacity         int `toml:"default_capacity"`          // вместимость, если не задана ни рейсом, ни автобусом
	GenerationWindowDays    int `toml:"generation_window_days"`    // окно быстрой генерации рейсов
	ListingWindowDays       int `toml:"listing_window_days"`       // окно выдачи рейсов "с сегодняшнего дня"
	UpcomingDeparturesLimit int `toml:"upcoming_departures_limit"` // рейсов на расписание в /schedules
}

type PricingConfig struct {
	DefaultBasePrice       float64 `toml:"default_base_price"`
	DefaultExtraLuggageFee float64 `toml:"default_extra_luggage_fee"`
	DefaultPetFee          float64 `toml:"default_pet_fee"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переопределения из окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	setDefault(&c.Database.Port, 5432)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 25)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	setDefault(&c.Redis.AvailabilityTTL, 30)

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "shuttle-service"
	}

	setDefault(&c.Auth.TokenTTLMinutes, 720)

	setDefault(&c.Booking.DefaultCapacity, 12)
	setDefault(&c.Booking.GenerationWindowDays, 30)
	setDefault(&c.Booking.ListingWindowDays, 30)
	setDefault(&c.Booking.UpcomingDeparturesLimit, 30)

	if c.Pricing.DefaultBasePrice == 0 {
		c.Pricing.DefaultBasePrice = 35
	}
	if c.Pricing.DefaultExtraLuggageFee == 0 {
		c.Pricing.DefaultExtraLuggageFee = 10
	}
	if c.Pricing.DefaultPetFee == 0 {
		c.Pricing.DefaultPetFee = 15
	}
}

// applyEnv секреты можно не хранить в файле
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or JWT_SECRET env)", ErrInvalidConfig)
	}
	for _, admin := range c.Auth.Admins {
		if admin.Username == "" || admin.PasswordHash == "" {
			return fmt.Errorf("%w: auth.admins entries need username and password_hash", ErrInvalidConfig)
		}
	}
	if c.Booking.DefaultCapacity < 1 || c.Booking.DefaultCapacity > 100 {
		return fmt.Errorf("%w: booking.default_capacity must be in [1, 100]", ErrInvalidConfig)
	}
	if c.Booking.UpcomingDeparturesLimit > 100 {
		return fmt.Errorf("%w: booking.upcoming_departures_limit must be <= 100", ErrInvalidConfig)
	}
	if c.Pricing.DefaultBasePrice < 0 || c.Pricing.DefaultExtraLuggageFee < 0 || c.Pricing.DefaultPetFee < 0 {
		return fmt.Errorf("%w: pricing defaults must not be negative", ErrInvalidConfig)
	}
	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
