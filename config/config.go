package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Port  string
	Env   string
	DB    DB
	JWT   JWT
	Redis Redis
	Rates Rates
	Stock Stock
}

type DB struct {
	Driver string // "postgres" or "sqlite"
	DSN    string
}

type JWT struct {
	Secret    string
	Issuer    string
	Audience  string
	AccessExp time.Duration
}

type Redis struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type Rates struct {
	URL string
	TTL time.Duration
}

type Stock struct {
	// AllowNegative lets manual outbound movements drive the ledger below
	// zero. Sales always enforce availability regardless of this flag.
	AllowNegative bool
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnvDefault("APP_PORT", "8080"),
		Env:  getEnvDefault("ENV", "development"),
		DB: DB{
			Driver: getEnvDefault("DB_DRIVER", "postgres"),
			DSN:    getEnv("DB_DSN", log),
		},
		JWT: JWT{
			Secret:    getEnv("JWT_SECRET", log),
			Issuer:    getEnvDefault("JWT_ISSUER", "vinovault"),
			Audience:  getEnvDefault("JWT_AUDIENCE", "vinovault-spa"),
			AccessExp: parseDuration(getEnvDefault("ACCESS_EXP", "12h"), 12*time.Hour),
		},
		Redis: Redis{
			Enabled:  getEnvDefault("REDIS_ENABLED", "false") == "true",
			Addr:     getEnvDefault("REDIS_ADDR", "localhost:6379"),
			Password: getEnvDefault("REDIS_PASSWORD", ""),
			DB:       atoiDefault(getEnvDefault("REDIS_DB", "0"), 0),
		},
		Rates: Rates{
			URL: getEnvDefault("RATES_URL", "https://open.er-api.com/v6/latest/USD"),
			TTL: parseDuration(getEnvDefault("RATES_TTL", "6h"), 6*time.Hour),
		},
		Stock: Stock{
			AllowNegative: getEnvDefault("STOCK_ALLOW_NEGATIVE", "true") == "true",
		},
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
