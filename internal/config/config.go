// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the storefront
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Google   GoogleConfig
	Cart     CartConfig
	Checkout CheckoutConfig
	Catalog  CatalogConfig
	Invoice  InvoiceConfig
	Email    EmailConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	BcryptCost         int
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// GoogleConfig contains Google sign-in configuration
type GoogleConfig struct {
	ClientID string
}

// CartConfig contains cart configuration
type CartConfig struct {
	// SnapshotTTL is how long a saved cart survives a "buy now" detour
	SnapshotTTL time.Duration
}

// CheckoutConfig contains checkout and bank transfer configuration
type CheckoutConfig struct {
	ShippingFee         decimal.Decimal
	BankAccountNumber   string
	BankAccountDisplay  string
	BankAccountHolder   string
	BankCode            string
	QRBaseURL           string
	TransferDescription string
}

// CatalogConfig contains product catalog configuration
type CatalogConfig struct {
	CacheTTL        time.Duration
	LatestLimit     int
	DashboardWindow time.Duration
}

// InvoiceConfig contains the seller details printed on invoices
type InvoiceConfig struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyWebsite string
}

// EmailConfig contains order notification email configuration
type EmailConfig struct {
	// Provider is "smtp", "log" (write to the application log) or empty to disable email
	Provider     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
	FromEmail    string
	FromName     string
	ReplyTo      string
	BaseURL      string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	environment := getEnv("APP_ENV", "development")
	defaultLogLevel := "info"
	if environment == "development" {
		defaultLogLevel = "debug"
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "RomaWatches"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: environment,
			Debug:       getEnvAsBool("APP_DEBUG", environment == "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 30*time.Second),
			MaxBodyBytes:   getEnvAsInt64("SERVER_MAX_BODY_BYTES", 1<<20),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "romawatches"),
			User:         getEnv("DB_USER", "romawatches"),
			Password:     getEnv("DB_PASSWORD", "romawatches"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "romawatches-development-secret-change-me"),
			AccessTokenExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),
			RefreshTokenExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRE", 7*24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:         getEnvAsInt("BCRYPT_COST", 12),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Google: GoogleConfig{
			ClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		},
		Cart: CartConfig{
			SnapshotTTL: getEnvAsDuration("CART_SNAPSHOT_TTL", 30*time.Minute),
		},
		Checkout: CheckoutConfig{
			ShippingFee:         getEnvAsDecimal("CHECKOUT_SHIPPING_FEE", decimal.Zero),
			BankAccountNumber:   getEnv("BANK_ACCOUNT_NUMBER", "62688888888686"),
			BankAccountDisplay:  getEnv("BANK_ACCOUNT_DISPLAY", "626 8888 8888 686"),
			BankAccountHolder:   getEnv("BANK_ACCOUNT_HOLDER", "VU CHI THANH"),
			BankCode:            getEnv("BANK_CODE", "MB"),
			QRBaseURL:           getEnv("BANK_QR_BASE_URL", "https://qr.sepay.vn/img"),
			TransferDescription: getEnv("BANK_TRANSFER_DESCRIPTION", "thanh toan don hang RomaWatches"),
		},
		Catalog: CatalogConfig{
			CacheTTL:        getEnvAsDuration("CATALOG_CACHE_TTL", 10*time.Minute),
			LatestLimit:     getEnvAsInt("CATALOG_LATEST_LIMIT", 4),
			DashboardWindow: getEnvAsDuration("DASHBOARD_WINDOW", 30*24*time.Hour),
		},
		Invoice: InvoiceConfig{
			CompanyName:    getEnv("COMPANY_NAME", "RomaWatches"),
			CompanyAddress: getEnv("COMPANY_ADDRESS", "Hà Nội, Việt Nam"),
			CompanyPhone:   getEnv("COMPANY_PHONE", ""),
			CompanyEmail:   getEnv("COMPANY_EMAIL", "support@romawatches.vn"),
			CompanyWebsite: getEnv("COMPANY_WEBSITE", "https://romawatches.vn"),
		},
		Email: EmailConfig{
			Provider:     getEnv("EMAIL_PROVIDER", ""),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			SMTPUseTLS:   getEnvAsBool("SMTP_USE_TLS", false),
			FromEmail:    getEnv("EMAIL_FROM", "no-reply@romawatches.vn"),
			FromName:     getEnv("EMAIL_FROM_NAME", "RomaWatches"),
			ReplyTo:      getEnv("EMAIL_REPLY_TO", ""),
			BaseURL:      getEnv("EMAIL_BASE_URL", "http://localhost:3000"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", defaultLogLevel),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	if c.Cart.SnapshotTTL <= 0 {
		return fmt.Errorf("CART_SNAPSHOT_TTL must be positive")
	}

	if c.Checkout.ShippingFee.IsNegative() {
		return fmt.Errorf("CHECKOUT_SHIPPING_FEE cannot be negative")
	}
	if c.Checkout.BankAccountNumber == "" || c.Checkout.BankCode == "" {
		return fmt.Errorf("BANK_ACCOUNT_NUMBER and BANK_CODE are required")
	}

	switch c.Email.Provider {
	case "", "log":
	case "smtp":
		if c.Email.SMTPHost == "" || c.Email.FromEmail == "" {
			return fmt.Errorf("SMTP_HOST and EMAIL_FROM are required when EMAIL_PROVIDER=smtp")
		}
	default:
		return fmt.Errorf("unsupported EMAIL_PROVIDER: %s", c.Email.Provider)
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
