package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Storefront StorefrontConfig
	Chat       ChatConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds the embedded catalog database settings
type DatabaseConfig struct {
	Path string // sqlite file path, or ":memory:" for the default in-memory catalog
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// StorefrontConfig holds storefront policy settings
type StorefrontConfig struct {
	DeliveryFee string // decimal string, e.g. "50.00"
	Currency    string // ISO 4217 code
}

// ChatConfig holds the scripted assistant settings
type ChatConfig struct {
	TypingDelay time.Duration // simulated typing pause before the bot reply
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with STOREFRONT_ prefix (e.g. STOREFRONT_APP_PORT)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Storefront: StorefrontConfig{
			DeliveryFee: v.GetString("storefront.delivery_fee"),
			Currency:    v.GetString("storefront.currency"),
		},
		Chat: ChatConfig{
			TypingDelay: v.GetDuration("chat.typing_delay"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = ":memory:"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.Storefront.DeliveryFee == "" {
		cfg.Storefront.DeliveryFee = "50.00"
	}
	if cfg.Storefront.Currency == "" {
		cfg.Storefront.Currency = "ZAR"
	}
	if cfg.Chat.TypingDelay == 0 {
		cfg.Chat.TypingDelay = 1200 * time.Millisecond
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	fee, err := decimal.NewFromString(c.Storefront.DeliveryFee)
	if err != nil {
		return fmt.Errorf("storefront.delivery_fee must be a decimal string: %w", err)
	}
	if fee.IsNegative() {
		return fmt.Errorf("storefront.delivery_fee cannot be negative")
	}
	if len(c.Storefront.Currency) != 3 {
		return fmt.Errorf("storefront.currency must be a 3-letter ISO 4217 code, got %q", c.Storefront.Currency)
	}
	// The catalog seed is priced in ZAR; other currencies would fail
	// on the first cart total, so reject them at startup instead.
	if valueobject.Currency(c.Storefront.Currency) != valueobject.DefaultCurrency {
		return fmt.Errorf("storefront.currency must be %q (catalog prices are in %s), got %q",
			valueobject.DefaultCurrency, valueobject.DefaultCurrency, c.Storefront.Currency)
	}
	if c.Chat.TypingDelay < 0 {
		return fmt.Errorf("chat.typing_delay cannot be negative")
	}
	if c.App.Env == "production" {
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}
	return nil
}
