// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/stagebook/internal/database"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Env         string // application environment (dev, test, prod)
	Port        string // HTTP port to listen on
	DBDriver    string // mysql, postgres or sqlite
	DBDSN       string // driver specific data source name
	FlashSecret string // HMAC key for the flash cookie
	LogLevel    string // logrus level name
	Activity    ActivityConfig
}

// LoadDotEnv reads an optional .env file into the process environment.
// Variables already set win over the file.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
}

// Load reads configuration values from environment variables. Required
// variables are enforced by must() and missing values stop the program.
func Load() Config {
	driver := getenv("DB_DRIVER", database.SQLite)
	return Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        getenv("APP_PORT", "5000"),
		DBDriver:    driver,
		DBDSN:       dsnFromEnv(driver),
		FlashSecret: must("FLASH_SECRET"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Activity:    LoadActivityConfig(),
	}
}

// IsProd reports whether the app runs in production mode.
func (c Config) IsProd() bool { return c.Env == "prod" || c.Env == "production" }

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

// dsnFromEnv prefers DB_DSN and otherwise assembles one from the split
// DB_USER/DB_PASS/DB_HOST/DB_PORT/DB_NAME variables.
func dsnFromEnv(driver string) string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	switch driver {
	case database.MySQL:
		return database.MySQLDSN(must("DB_USER"), os.Getenv("DB_PASS"), must("DB_HOST"), getenv("DB_PORT", "3306"), must("DB_NAME"))
	case database.Postgres:
		return database.PostgresDSN(must("DB_USER"), os.Getenv("DB_PASS"), must("DB_HOST"), getenv("DB_PORT", "5432"), must("DB_NAME"))
	default:
		return getenv("DB_NAME", "stagebook.db")
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "":
		return d
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

func (c Config) String() string {
	return fmt.Sprintf("env=%s port=%s driver=%s rabbit=%t", c.Env, c.Port, c.DBDriver, c.Activity.URL != "")
}
