package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FLASH_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "stagebook.db", cfg.DBDSN)
	assert.Equal(t, "s3cret", cfg.FlashSecret)
	assert.False(t, cfg.IsProd())
}

func TestLoadBuildsDSNFromParts(t *testing.T) {
	t.Setenv("FLASH_SECRET", "x")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "fyyur")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "stagebook")

	cfg := Load()

	assert.Equal(t, "postgres://fyyur:pw@db:5432/stagebook?sslmode=disable", cfg.DBDSN)
}

func TestLoadPrefersExplicitDSN(t *testing.T) {
	t.Setenv("FLASH_SECRET", "x")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_DSN", "u:p@tcp(h:1)/d")

	assert.Equal(t, "u:p@tcp(h:1)/d", Load().DBDSN)
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STAGEBOOK_TEST_A=file\nSTAGEBOOK_TEST_B=file\n"), 0o600))
	t.Setenv("STAGEBOOK_TEST_A", "env")
	t.Cleanup(func() { _ = os.Unsetenv("STAGEBOOK_TEST_B") })

	LoadDotEnv(path)

	assert.Equal(t, "env", os.Getenv("STAGEBOOK_TEST_A"))
	assert.Equal(t, "file", os.Getenv("STAGEBOOK_TEST_B"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NotPanics(t, func() { LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")) })
}

func TestCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "bogus")
	t.Setenv("CACHE_ENABLED", "off")

	cfg := LoadCacheConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "path_query", cfg.KeyStrategy)
}

func TestRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()

	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Minute, cfg.RefillInterval)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestRedisOptions(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TLS", "1")

	opts := RedisOptions()

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 3, opts.DB)
	assert.NotNil(t, opts.TLSConfig)
}

func TestNewRedisClientDisabled(t *testing.T) {
	t.Setenv("REDIS_DISABLED", "true")
	assert.Nil(t, NewRedisClient())
}

func TestActivityConfigFallsBackToAMQPURL(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://guest:guest@mq:5672/")

	cfg := LoadActivityConfig()

	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.URL)
	assert.Equal(t, "stagebook.activity", cfg.Queue)
}
