package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default NBA client values, used when the respective variable is not set.
const (
	DefaultRateLimit  = 1 * time.Second
	DefaultMaxRetries = 5
	DefaultTimeout    = 30 * time.Second
)

// RedisConfiguration holds the optional response cache connection.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// BucketConfiguration holds the optional S3 bucket for shipping run logs.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// ClientConfiguration holds the NBA API client tunables.
type ClientConfiguration struct {
	APIKey     string
	RateLimit  time.Duration
	MaxRetries int
	Timeout    time.Duration
}

// Config is the full application configuration.
// It is built once at process start and passed by reference into the
// constructors that need it. Nothing reads the environment after Load.
type Config struct {
	DatabaseURL string
	Client      ClientConfiguration
	Redis       RedisConfiguration
	Bucket      BucketConfiguration
}

// Load reads the .env file, if any, and builds the configuration.
func Load() (*Config, error) {
	// Missing .env is fine, the variables may come from the environment.
	godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Client: ClientConfiguration{
			APIKey:     os.Getenv("NBA_API_KEY"),
			RateLimit:  durationFromEnv("NBA_RATE_LIMIT_MS", time.Millisecond, DefaultRateLimit),
			MaxRetries: intFromEnv("NBA_MAX_RETRIES", DefaultMaxRetries),
			Timeout:    durationFromEnv("NBA_TIMEOUT_SECONDS", time.Second, DefaultTimeout),
		},
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfiguration{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
		},
	}

	// No connection string means a local file backed SQLite store.
	if cfg.DatabaseURL == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.DatabaseURL = "sqlite://" + filepath.Join(wd, "nba.sqlite3")
	}

	return cfg, nil
}

// HasRedis reports whether the response cache is configured.
func (c *Config) HasRedis() bool {
	return c.Redis.Host != ""
}

// HasBucket reports whether log shipping is configured.
func (c *Config) HasBucket() bool {
	return c.Bucket.LogBucket != ""
}

// Parse a integer variable, falling back to the default.
func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// Parse a duration variable given in the passed unit.
func durationFromEnv(key string, unit time.Duration, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return time.Duration(value) * unit
}
