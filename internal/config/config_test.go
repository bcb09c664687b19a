package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "scoreboard.db", cfg.Store.SQLitePath)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Empty(t, cfg.Admin.JWTSecret)
	assert.False(t, cfg.UsesRedis())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_CONNSTRING", "cache:6380")
	t.Setenv("HTTP_ADDR", ":8080")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.UsesRedis())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log-level: debug
http:
  addr: ":9000"
  shutdown-timeout: 10s
store:
  driver: sqlite
  sqlite-path: /tmp/stats.db
admin:
  jwt-secret: topsecret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "/tmp/stats.db", cfg.Store.SQLitePath)
	assert.Equal(t, "topsecret", cfg.Admin.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"Unknown driver", map[string]string{"STORE_DRIVER": "postgres"}},
		{"Unknown log level", map[string]string{"LOG_LEVEL": "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
		})
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("MustLoad panics", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		assert.Panics(t, func() { MustLoad("") })
	})
}
