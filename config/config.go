package config

import (
	"os"
	"strconv"
)

type Config struct {
	App    AppConfig
	Logger LoggerConfig
	SQLite SQLiteConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLiteConfig struct {
	Path        string
	BusyTimeout int // milliseconds
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLiteConfig{
			Path:        getEnv("SQLITE_PATH", "stockpos.db"),
			BusyTimeout: getEnvInt("SQLITE_BUSY_TIMEOUT", 5000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
