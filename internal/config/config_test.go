package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9000
  env: production
database:
  driver: mysql
  url: user:pass@tcp(localhost:3306)/korus
jwt:
  secret: from-file
cors:
  allowed_origins: ["https://korus.example"]
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "127.0.0.1:9100", cfg.Address())
	assert.Equal(t, []string{"https://korus.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.AccessTTL())
	assert.Equal(t, 15*time.Minute, cfg.DefaultTTL())
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SERVER_PORT", "abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()
	cfg.Database.Driver = "oracle"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `database.driver "oracle" is not supported`)
	assert.Contains(t, err.Error(), "database.url is required")
	assert.Contains(t, err.Error(), "jwt.secret is required")
}
