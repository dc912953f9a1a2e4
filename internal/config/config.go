package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the dashboard service
type Config struct {
	// HTTP
	Port        string
	CORSOrigins []string
	StaticDir   string

	// Measurement store. DatabaseURL selects PostgreSQL; otherwise SQLite is used.
	SQLitePath  string
	DatabaseURL string
	Table       string

	// Source cache
	CacheSize    int
	QueryTimeout time.Duration
}

// LoadEnvFiles loads .env then .env.local (which overrides for local development).
// Missing files are ignored.
func LoadEnvFiles(dir string) {
	_ = godotenv.Load(dir + "/.env")
	_ = godotenv.Overload(dir + "/.env.local")
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		StaticDir:   getEnv("STATIC_DIR", ""),

		SQLitePath:  getEnv("SQLITE_DATABASE", "data/wifi_on_ice.db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Table:       getEnv("WIFI_TABLE", "wifi_on_ice"),

		CacheSize:    getEnvInt("CACHE_SIZE", 4),
		QueryTimeout: time.Duration(getEnvInt("QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// UsePostgres reports whether the PostgreSQL store is configured
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
