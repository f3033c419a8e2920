package config

import (
	"fmt"  // For DSN formatting
	"time" // For durations

	"github.com/caarlos0/env/v11" // For parsing environment variables into the struct
	"github.com/joho/godotenv"    // For loading .env files
	"github.com/shopspring/decimal"
)

// Supported values for DB_DRIVER
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3018"` // Application port

	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"` // mysql, postgres or sqlite
	DBUser     string `env:"DB_USER"`                      // Database user
	DBPassword string `env:"DB_PASSWORD"`                  // Database password
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"`                     // Database port, driver default when empty
	DBName     string `env:"DB_NAME" envDefault:"rpg"`    // Database name
	DBPath     string `env:"DB_PATH" envDefault:"rpg.db"` // SQLite file, ":memory:" for a throwaway db

	JWTSecret  string        `env:"JWT_SECRET"`                  // JWT secret key
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"2h"`   // Access token lifetime
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"` // bcrypt work factor

	RedisAddr string        `env:"REDIS_ADDR"`                 // Redis server address, cache disabled when empty
	RedisPass string        `env:"REDIS_PASS"`                 // Redis password
	RedisDB   int           `env:"REDIS_DB"`                   // Redis database number
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"60s"` // Catalog cache lifetime

	IsProd   bool   `env:"IS_PROD"`                     // Is production environment
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"` // logrus level

	CatalogAdminOnly bool `env:"CATALOG_ADMIN_ONLY" envDefault:"false"` // Gate POST/PATCH /items behind the admin role

	StartingHealth int   `env:"STARTING_HEALTH" envDefault:"500"`
	StartingPower  int   `env:"STARTING_POWER" envDefault:"100"`
	StartingMoney  int64 `env:"STARTING_MONEY" envDefault:"10000"`

	EarnAmount   int64           `env:"GAME_EARN_AMOUNT" envDefault:"1000"`
	EarnCooldown time.Duration   `env:"GAME_EARN_COOLDOWN" envDefault:"0s"` // 0 disables the cooldown
	SellBackRate decimal.Decimal `env:"SELL_BACK_RATE" envDefault:"0.6"`
}

// LoadConfig loads configuration from the environment, reading a .env file first if present
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration that would make the server misbehave at runtime.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SellBackRate.IsNegative() || c.SellBackRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("SELL_BACK_RATE must be within [0, 1], got %s", c.SellBackRate)
	}
	if c.EarnAmount < 0 || c.StartingMoney < 0 {
		return fmt.Errorf("GAME_EARN_AMOUNT and STARTING_MONEY must not be negative")
	}
	return nil
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port)
	case DriverSQLite:
		return c.DBPath
	default:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	}
}
