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

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "http:\n  address: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "db.json", cfg.Storage.FilePath)
	assert.Equal(t, 10*time.Second, cfg.Store.LockTTL())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoadConfig_Full(t *testing.T) {
	body := `
storage:
  driver: postgres
  dataset: prod
database:
  host: db
  port: 5432
  user: app
  password: secret
  name: aerolinea
  ssl_mode: disable
redis:
  addr: redis:6379
kafka:
  brokers: ["kafka:9092"]
  events_topic: airline.events
store:
  lock_wait_ms: 500
`
	cfg, err := LoadConfig(writeConfig(t, body))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "prod", cfg.Storage.Dataset)
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=aerolinea sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 500*time.Millisecond, cfg.Store.LockWait())
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "storage:\n  driver: sqlite\n"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
