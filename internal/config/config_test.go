package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  env: dev
server:
  host: 127.0.0.1
  port: 9090
storage:
  type: memory
seed:
  history_days: 14
  random_seed: 7
session:
  secret: test-secret
  token_ttl: 2h
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.Development, cfg.App.Env)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Type)
	assert.Equal(t, 14, cfg.Seed.HistoryDays)
	assert.Equal(t, int64(7), cfg.Seed.RandomSeed)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.TokenTTL)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
app:
  env: prod
session:
  secret: s
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.StorageSQLite, cfg.Storage.Type)
	assert.Equal(t, "vitalog.db", cfg.Storage.Path)
	assert.Equal(t, 30, cfg.Seed.HistoryDays)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	path := writeConfig(t, `
app:
  env: staging
session:
  secret: s
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfigNotLoaded)
}

func TestLoad_InvalidStorageType(t *testing.T) {
	path := writeConfig(t, `
app:
  env: dev
storage:
  type: redis
session:
  secret: s
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfigNotLoaded)
}
