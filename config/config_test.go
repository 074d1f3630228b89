package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromDir(t *testing.T, dir string) *Config {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadFromDir(t, t.TempDir())

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "data/badger", cfg.DB.Path)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.Origins)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  addr: ":9999"
db:
  path: "/tmp/blog-db"
auth:
  secret: "file-secret"
  token_ttl: "1h"
cors:
  origins:
    - "https://blog.example.com"
`
	require.NoError(t, os.WriteFile(dir+"/config.yaml", []byte(yaml), 0644))

	cfg := loadFromDir(t, dir)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "/tmp/blog-db", cfg.DB.Path)
	assert.Equal(t, "file-secret", cfg.Auth.Secret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://blog.example.com"}, cfg.CORS.Origins)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		DB:   DBConfig{Path: "data/badger"},
		Auth: AuthConfig{Secret: "s"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Auth.Secret = ""
	assert.Error(t, cfg.Validate())

	cfg.Auth.Secret = "s"
	cfg.DB.Path = ""
	assert.Error(t, cfg.Validate())
}
