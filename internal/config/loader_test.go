package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfg, err := config.Load("", func() (string, error) { return tmp, nil })
	require.NoError(t, err)

	def := config.NewDefaultConfig()
	assert.Equal(t, def.Global.Concurrency, cfg.Global.Concurrency)
	assert.Equal(t, def.Storage.DatabaseDSN, cfg.Storage.DatabaseDSN)
	assert.Equal(t, def.Storage.FreshnessWindow, cfg.Storage.FreshnessWindow)
	assert.Equal(t, def.Cache.TTL, cfg.Cache.TTL)
	assert.Equal(t, def.Blacklist.Policy, cfg.Blacklist.Policy)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
global:
  concurrency: 4
  listen_addr: ":9000"
storage:
  database_dsn: /tmp/test.db
  freshness_window: 10m
cache:
  redis_addr: localhost:6379
  ttl: 45s
blacklist:
  policy: all
  virustotal_key: secret
dns:
  nameservers:
    - 9.9.9.9:53
`), 0o600))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Global.Concurrency)
	assert.Equal(t, ":9000", cfg.Global.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.DatabaseDSN)
	assert.Equal(t, 10*time.Minute, cfg.Storage.FreshnessWindow)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 45*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "all", cfg.Blacklist.Policy)
	assert.Equal(t, "secret", cfg.Blacklist.VirusTotalKey)
	assert.Equal(t, []string{"9.9.9.9:53"}, cfg.DNS.Nameservers)

	// Unset keys keep their defaults.
	assert.Equal(t, config.NewDefaultConfig().DNS.QueryTimeout, cfg.DNS.QueryTimeout)
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("global:\n  concurrency: 2\n"), 0o600))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Global.Concurrency)
	assert.Equal(t, config.NewDefaultConfig().Storage.Retention, cfg.Storage.Retention)
}
