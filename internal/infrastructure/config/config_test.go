package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "paperstock-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "paperstock.db", cfg.Store.SQLitePath)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "12h0m0s", cfg.Session.Expiration.String())
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STOCK_APP_PORT", "9090")
	t.Setenv("STOCK_STORE_DRIVER", "memory")
	t.Setenv("STOCK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidStoreDriver(t *testing.T) {
	t.Setenv("STOCK_STORE_DRIVER", "mongodb")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.driver")
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("STOCK_APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.secret")
}

func TestLoad_ProductionShortSecret(t *testing.T) {
	t.Setenv("STOCK_APP_ENV", "production")
	t.Setenv("STOCK_SESSION_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestLoad_ProductionRejectsWildcardCORS(t *testing.T) {
	t.Setenv("STOCK_APP_ENV", "production")
	t.Setenv("STOCK_SESSION_SECRET", "a-sufficiently-long-production-secret")
	t.Setenv("STOCK_STORE_DRIVER", "memory")
	t.Setenv("STOCK_HTTP_CORS_ALLOW_ORIGINS", "*")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cors_allow_origins")
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "stock",
		Password: "p@ss word",
		DBName:   "paperstock",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	// Password special characters must be escaped.
	assert.NotContains(t, dsn, "p@ss word")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
