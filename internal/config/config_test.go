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
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FromJSONFile(t *testing.T) {
	path := writeConfig(t, `{
		"user": "analyst",
		"password": "secret",
		"host": "db.local",
		"port": 5433,
		"database": "paygap"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "analyst", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "paygap", cfg.Database.Name)

	// defaults
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5, cfg.Database.ConnectRetries)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"user":"analyst","host":"db.local","port":5432,"database":"paygap"}`)

	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port, "PORT belongs to the HTTP server")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ShellVariablesDoNotShadowFile(t *testing.T) {
	path := writeConfig(t, `{"user":"dbuser","password":"pw","host":"db.internal","port":5432,"database":"paygap"}`)

	t.Setenv("USER", "root")
	t.Setenv("HOST", "workstation")
	t.Setenv("PORT", "8080")
	t.Setenv("PASSWORD", "hunter2")
	t.Setenv("DATABASE", "other")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dbuser", cfg.Database.User)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "pw", cfg.Database.Password)
	assert.Equal(t, "paygap", cfg.Database.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "paygap")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "postgres", cfg.Database.User)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `{"user":"analyst","host":"db.local","port":5432}`)

	_, err := Load(path)
	assert.EqualError(t, err, "database is required")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database:  DatabaseConfig{User: "u", Host: "h", Name: "d", Port: 5432, ConnectRetries: 1},
			Server:    ServerConfig{Port: "5000"},
			RateLimit: RateLimitConfig{RPS: 1, Burst: 1},
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"no host", func(c *Config) { c.Database.Host = "" }, false},
		{"no user", func(c *Config) { c.Database.User = "" }, false},
		{"bad port", func(c *Config) { c.Database.Port = 70000 }, false},
		{"no retries", func(c *Config) { c.Database.ConnectRetries = 0 }, false},
		{"no server port", func(c *Config) { c.Server.Port = "" }, false},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			if tc.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "paygap", SSLMode: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=paygap port=5432 sslmode=disable", d.DSN())
}

func TestFileIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.Equal(t, "", FileIfExists(path))
	assert.Equal(t, "", FileIfExists(""))

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	assert.Equal(t, path, FileIfExists(path))
}
