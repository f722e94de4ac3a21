package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (API-ключи) берутся из переменных окружения, опционально через .env
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Brevo    BrevoConfig    `toml:"brevo"`
	Checkout CheckoutConfig `toml:"checkout"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
	Migrate         bool   `toml:"migrate"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политика бронирования
type BookingConfig struct {
	MinLeadTimeMinutes   int `toml:"min_lead_time_minutes"`
	AdvanceBookingDays   int `toml:"advance_booking_days"`
	CalendarMaxRangeDays int `toml:"calendar_max_range_days"`
}

// Policy конвертирует конфигурацию в доменную политику бронирования
func (c *BookingConfig) Policy() domain.BookingPolicy {
	policy := domain.DefaultBookingPolicy()
	if c.MinLeadTimeMinutes > 0 {
		policy.MinLeadTimeMinutes = c.MinLeadTimeMinutes
	}
	if c.AdvanceBookingDays >= 0 {
		policy.AdvanceBookingDays = c.AdvanceBookingDays
	}
	if c.CalendarMaxRangeDays > 0 {
		policy.CalendarMaxRangeDays = c.CalendarMaxRangeDays
	}
	return policy
}

// BrevoConfig настройки email-провайдера
// Ключ API берётся из окружения (BREVO_API_KEY), не из файла
type BrevoConfig struct {
	BaseURL        string  `toml:"base_url"`
	Timeout        int     `toml:"timeout"`
	APIKey         string  `toml:"-"`
	ContactListIDs []int64 `toml:"contact_list_ids"`
	SenderName     string  `toml:"sender_name"`
	SenderEmail    string  `toml:"sender_email"`
}

// CheckoutConfig настройки платёжного провайдера
// Ключ API берётся из окружения (CHECKOUT_API_KEY)
type CheckoutConfig struct {
	BaseURL    string `toml:"base_url"`
	Timeout    int    `toml:"timeout"`
	APIKey     string `toml:"-"`
	SuccessURL string `toml:"success_url"`
	CancelURL  string `toml:"cancel_url"`
}

// Load читает конфигурацию из TOML файла и накладывает секреты из окружения
func Load(path string) (*Config, error) {
	// .env опционален: в проде переменные приходят из окружения деплоя
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
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
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "coaching-platform"
	}
	if c.Brevo.BaseURL == "" {
		c.Brevo.BaseURL = "https://api.brevo.com"
	}
	if c.Brevo.Timeout == 0 {
		c.Brevo.Timeout = 5
	}
	if c.Checkout.Timeout == 0 {
		c.Checkout.Timeout = 10
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BREVO_API_KEY"); v != "" {
		c.Brevo.APIKey = v
	}
	if v := os.Getenv("CHECKOUT_API_KEY"); v != "" {
		c.Checkout.APIKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Booking.MinLeadTimeMinutes < 0 {
		return fmt.Errorf("config: booking.min_lead_time_minutes must not be negative")
	}
	if c.Booking.AdvanceBookingDays < 0 {
		return fmt.Errorf("config: booking.advance_booking_days must not be negative")
	}
	return nil
}
