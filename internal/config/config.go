package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Notify    NotifyConfig    `yaml:"notify"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	EmailAPI  EmailAPIConfig  `yaml:"email_api"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    string `yaml:"port"`
	Host    string `yaml:"host"`
	// TrustProxy makes forwarding headers (X-Forwarded-For, X-Real-IP)
	// decide the client IP. Enable only behind a proxy that sets them.
	TrustProxy bool `yaml:"trust_proxy"`
}

// DatabaseConfig selects the inquiry store. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	MaxAge         int      `yaml:"max_age"`
}

type RateLimitConfig struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

// NotifyConfig describes the notify step. Driver is "smtp", "emailapi" or "queue".
type NotifyConfig struct {
	Driver     string `yaml:"driver"`
	TemplateID string `yaml:"template_id"`
	Recipient  string `yaml:"recipient"`
}

type SMTPConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

type EmailAPIConfig struct {
	URL         string `yaml:"url"`
	ServiceID   string `yaml:"service_id"`
	PublicKey   string `yaml:"public_key"`
	AccessToken string `yaml:"access_token"`
}

type RabbitMQConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	NotifySMTP     = "smtp"
	NotifyEmailAPI = "emailapi"
	NotifyQueue    = "queue"
)

// Load reads .env (if any), the environment, then the optional YAML file at
// path, which overrides the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Starlink DR Congo Inquiries"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Port:    getEnv("PORT", "8080"),
			Host:    getEnv("HOST", "0.0.0.0"),

			TrustProxy: getEnvAsBool("TRUST_PROXY", false),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DATABASE_DRIVER", DriverPostgres),
			URL:    getEnv("DATABASE_URL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			MaxAge:         getEnvAsInt("CORS_MAX_AGE", 300),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 10),
			Window: time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
		Notify: NotifyConfig{
			Driver:     getEnv("NOTIFY_DRIVER", NotifySMTP),
			TemplateID: getEnv("NOTIFY_TEMPLATE_ID", "inquiry_notification"),
			Recipient:  getEnv("NOTIFY_RECIPIENT", "sales@bestbuycongo.cd"),
		},
		SMTP: SMTPConfig{
			Enabled:   getEnvAsBool("SMTP_ENABLED", false),
			Host:      getEnv("SMTP_HOST", ""),
			Port:      getEnvAsInt("SMTP_PORT", 587),
			Username:  getEnv("SMTP_USERNAME", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			FromEmail: getEnv("SMTP_FROM_EMAIL", "no-reply@bestbuycongo.cd"),
			FromName:  getEnv("SMTP_FROM_NAME", "BestBuy Congo"),
		},
		EmailAPI: EmailAPIConfig{
			URL:         getEnv("EMAIL_API_URL", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:   getEnv("EMAIL_API_SERVICE_ID", ""),
			PublicKey:   getEnv("EMAIL_API_PUBLIC_KEY", ""),
			AccessToken: getEnv("EMAIL_API_ACCESS_TOKEN", ""),
		},
		RabbitMQ: RabbitMQConfig{
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnv("RABBITMQ_PORT", "5672"),
		},
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	switch c.Notify.Driver {
	case NotifySMTP, NotifyQueue:
	case NotifyEmailAPI:
		if c.EmailAPI.ServiceID == "" || c.EmailAPI.PublicKey == "" {
			return fmt.Errorf("EMAIL_API_SERVICE_ID and EMAIL_API_PUBLIC_KEY are required for the emailapi driver")
		}
	default:
		return fmt.Errorf("unsupported NOTIFY_DRIVER %q", c.Notify.Driver)
	}
	if c.Notify.Recipient == "" {
		return fmt.Errorf("NOTIFY_RECIPIENT is required")
	}
	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return c.App.Host + ":" + c.App.Port
}

// RabbitMQURL builds the AMQP DSN.
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvAsBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvAsSlice(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
