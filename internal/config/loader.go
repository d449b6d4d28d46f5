package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/appdir"
)

// Load reads configuration from configPath, or from the OS-appropriate
// default location when configPath is empty. A missing file is not an
// error; defaults apply. Environment variables prefixed DNSINTEL_ override
// file values (DNSINTEL_CACHE_REDIS_ADDR and so on).
func Load(configPath string, userConfigDir func() (string, error)) (*Config, error) {
	if configPath == "" {
		dir, err := appdir.ConfigDir(userConfigDir)
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(dir, "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DNSINTEL")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// With an explicit file path viper reports absence as a plain
		// *fs.PathError rather than ConfigFileNotFoundError.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := NewDefaultConfig()

	v.SetDefault("global.concurrency", def.Global.Concurrency)
	v.SetDefault("global.listen_addr", def.Global.ListenAddr)
	v.SetDefault("global.special_blocks", []string{})

	v.SetDefault("dns.nameservers", []string{})
	v.SetDefault("dns.query_timeout", def.DNS.QueryTimeout)
	v.SetDefault("dns.retries", def.DNS.Retries)

	v.SetDefault("storage.database_dsn", def.Storage.DatabaseDSN)
	v.SetDefault("storage.freshness_window", def.Storage.FreshnessWindow)
	v.SetDefault("storage.retention", def.Storage.Retention)

	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", def.Cache.TTL)

	v.SetDefault("blacklist.policy", def.Blacklist.Policy)
	v.SetDefault("blacklist.zones", []string{})
	v.SetDefault("blacklist.virustotal_key", "")

	v.SetDefault("probe.timeout", def.Probe.Timeout)

	v.SetDefault("asn.geoip_path", "")
}
