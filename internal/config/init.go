package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	StoreFile  = "file"
	StoreRedis = "redis"
	StoreMySQL = "mysql"
)

// DefaultEventsCSVURL is the Boston permitted events dataset.
const DefaultEventsCSVURL = "https://data.boston.gov/dataset/9076010d-663a-40da-b683-a46ec4d09555/resource/ea7f0605-ffc0-4ad4-a786-02c50b276f54/download/tmpmxxupepy.csv"

// Config is read once at startup and passed by value afterwards.
type Config struct {
	Env  string
	Port string

	PostStore string
	PostDir   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DBDSN string

	BearerToken       string
	BasicUsername     string
	BasicPassword     string
	BasicPasswordHash string

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	EventsCSVURL  string
	EventsTimeout time.Duration
}

// LoadDotEnv copies .env from the working directory into the environment
// without overriding variables that are already set. Call it before InitLogger
// so APP_ENV from .env selects the logger.
func LoadDotEnv() error {
	return godotenv.Load()
}

// Load reads the environment into a Config.
func Load() (Config, error) {
	cfg := Config{
		Env:               getString("APP_ENV", "development"),
		Port:              getString("APP_PORT", "8000"),
		PostStore:         getString("POST_STORE", StoreFile),
		PostDir:           getString("POST_DIR", "."),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getInt("REDIS_DB", 0),
		DBDSN:             os.Getenv("DB_DSN"),
		BearerToken:       getString("BEARER_TOKEN", "bu rocks"),
		BasicUsername:     getString("BASIC_AUTH_USERNAME", "gkorodi"),
		BasicPassword:     getString("BASIC_AUTH_PASSWORD", "supersecret"),
		BasicPasswordHash: os.Getenv("BASIC_AUTH_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTIssuer:         getString("JWT_ISSUER", "fastblog"),
		JWTTTL:            getDuration("JWT_TTL", 24*time.Hour),
		EventsCSVURL:      getString("EVENTS_CSV_URL", DefaultEventsCSVURL),
		EventsTimeout:     getDuration("EVENTS_TIMEOUT", 10*time.Second),
	}

	switch cfg.PostStore {
	case StoreFile:
	case StoreRedis:
		if cfg.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is not set")
		}
	case StoreMySQL:
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("DB_DSN is not set")
		}
	default:
		return Config{}, fmt.Errorf("unknown POST_STORE %q", cfg.PostStore)
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		warnInvalid(key, err)
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		warnInvalid(key, err)
		return fallback
	}
	return parsed
}

func warnInvalid(key string, err error) {
	if Logger != nil {
		Logger.Warn("invalid config value, using default", zap.String("key", key), zap.Error(err))
	}
}
