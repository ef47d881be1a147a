package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Env  string
	Port string

	DatabaseURL string
	AutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration

	LogLevel string
	LogFile  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DashboardCacheTTL  time.Duration
	CORSAllowedOrigins []string
}

func (c *Config) IsRelease() bool { return c.Env == "release" || c.Env == "production" }

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on env vars")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	var errs []error
	duration := func(key, def string) time.Duration {
		d, err := time.ParseDuration(get(key, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return d
	}
	integer := func(key, def string) int {
		n, err := strconv.Atoi(get(key, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return n
	}
	boolean := func(key, def string) bool {
		b, err := strconv.ParseBool(get(key, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return b
	}

	cfg := &Config{
		Env:                get("APP_ENV", "debug"),
		Port:               get("PORT", "8080"),
		DatabaseURL:        get("POSTGRES_URL", ""),
		AutoMigrate:        boolean("DB_AUTO_MIGRATE", "true"),
		JWTSecret:          get("JWT_SECRET", ""),
		JWTTTL:             duration("JWT_TTL", "60m"),
		LogLevel:           get("LOG_LEVEL", "info"),
		LogFile:            get("LOG_FILE", "./logs/app.log"),
		RedisAddr:          get("REDIS_ADDR", ""),
		RedisPassword:      get("REDIS_PASSWORD", ""),
		RedisDB:            integer("REDIS_DB", "0"),
		DashboardCacheTTL:  duration("DASHBOARD_CACHE_TTL", "5m"),
		CORSAllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			get("DB_HOST", "localhost"),
			get("DB_USER", "postgres"),
			get("DB_PASSWORD", "password"),
			get("DB_NAME", "tripplanner"),
			get("DB_PORT", "5432"),
			get("DB_SSLMODE", "disable"),
			get("DB_TIMEZONE", "UTC"),
		)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsRelease() {
			errs = append(errs, errors.New("JWT_SECRET is required in release mode"))
		} else {
			cfg.JWTSecret = "dev-secret"
		}
	}
	if cfg.JWTTTL <= 0 && len(errs) == 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
