package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ProjectName        string   `env:"PROJECT_NAME" envDefault:"Posts Service"`
	Version            string   `env:"PROJECT_VERSION" envDefault:"1"`
	Port               string   `env:"PORT" envDefault:"8000"`
	Debug              bool     `env:"DEBUG" envDefault:"false"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	BcryptCost         int      `env:"BCRYPT_COST" envDefault:"10"`

	JWT      JWTConfig `envPrefix:"JWT_"`
	Database DatabaseConfig
}

type JWTConfig struct {
	SecretKey     string        `env:"SECRET_KEY"`
	Algorithm     string        `env:"ALGORITHM" envDefault:"HS256"`
	AccessExpiry  time.Duration `env:"ACCESS_TOKEN_EXPIRE" envDefault:"10m"`
	RefreshExpiry time.Duration `env:"REFRESH_TOKEN_EXPIRE" envDefault:"10h"`
}

type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	Host        string `env:"PG_HOST" envDefault:"localhost"`
	Port        int    `env:"PG_PORT" envDefault:"5432"`
	Name        string `env:"PG_DB" envDefault:"posts"`
	User        string `env:"PG_USER" envDefault:"postgres"`
	Password    string `env:"PG_PASSWORD" envDefault:""`
	SSLMode     string `env:"PG_SSLMODE" envDefault:"disable"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"posts.db"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
}

// DSN returns the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads a .env file if present, then the process environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("JWT_SECRET_KEY must be set")
	}
	if c.JWT.Algorithm != "HS256" {
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", c.JWT.Algorithm)
	}
	if c.JWT.AccessExpiry <= 0 {
		return errors.New("JWT_ACCESS_TOKEN_EXPIRE must be positive")
	}
	if c.JWT.RefreshExpiry <= c.JWT.AccessExpiry {
		return errors.New("JWT_REFRESH_TOKEN_EXPIRE must be longer than JWT_ACCESS_TOKEN_EXPIRE")
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	return nil
}
