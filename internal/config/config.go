package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `split_words:"true"`
	Port               string `split_words:"true" default:"5432"`
	User               string `split_words:"true"`
	Password           string `split_words:"true"`
	Name               string `split_words:"true"`
	SSLMode            string `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns       int    `split_words:"true" default:"10"`
	MaxIdleConns       int    `split_words:"true" default:"5"`
	ConnMaxLifetimeSec int    `split_words:"true" default:"300"`
	MigrateOnStart     bool   `split_words:"true" default:"true"`
}

// MinIOConfig holds object storage settings for MinIO (avatars and sport photos).
type MinIOConfig struct {
	Endpoint  string `split_words:"true"`
	AccessKey string `split_words:"true"`
	SecretKey string `split_words:"true"`
	Bucket    string `split_words:"true" default:"cinesport"`
	UseSSL    bool   `split_words:"true" default:"false"`
}

// RedisConfig holds cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string `split_words:"true"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

// TMDBConfig holds The Movie Database API settings.
type TMDBConfig struct {
	APIKey        string  `split_words:"true"`
	BaseURL       string  `split_words:"true" default:"https://api.themoviedb.org/3"`
	Language      string  `split_words:"true" default:"pt-BR"`
	PagesPerList  int     `split_words:"true" default:"5"`
	RatePerSecond float64 `split_words:"true" default:"20"`
	SyncOnStart   bool    `split_words:"true" default:"false"`
}

// SMTPConfig holds outgoing mail settings used for password resets.
type SMTPConfig struct {
	Host     string `split_words:"true"`
	Port     int    `split_words:"true" default:"587"`
	User     string `split_words:"true"`
	Password string `split_words:"true"`
	From     string `split_words:"true" default:"no-reply@cinesport.local"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	Secret string        `split_words:"true"`
	TTL    time.Duration `split_words:"true" default:"168h"`
}

// JobsConfig holds cron expressions for background jobs. An empty expression disables the job.
type JobsConfig struct {
	MovieSyncCron   string `split_words:"true" default:"0 3 * * *"`
	LeaderboardCron string `split_words:"true" default:"0 0 * * 0"`
}

// RateLimitConfig holds per-client inbound request limits.
type RateLimitConfig struct {
	RequestsPerSecond float64 `split_words:"true" default:"20"`
	Burst             int     `split_words:"true" default:"40"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string          `envconfig:"APP_HOST" default:"localhost:8080"`
	Port      string          `envconfig:"PORT" default:"8080"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
	Timezone  string          `envconfig:"APP_TIMEZONE" default:"UTC"`
	Database  DatabaseConfig  `envconfig:"DB"`
	MinIO     MinIOConfig     `envconfig:"MINIO"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	TMDB      TMDBConfig      `envconfig:"TMDB"`
	SMTP      SMTPConfig      `envconfig:"SMTP"`
	Auth      AuthConfig      `envconfig:"JWT"`
	Jobs      JobsConfig      `envconfig:"JOBS"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that have no safe default.
func (c *AppConfig) Validate() error {
	if c.Auth.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.TTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return errors.New("database pool sizes must not be negative")
	}
	if c.TMDB.PagesPerList <= 0 {
		return errors.New("TMDB_PAGES_PER_LIST must be positive")
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
