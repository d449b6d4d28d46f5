// Package config defines the application configuration and its loader.
// Every tunable the pipeline consults lives here and is injected downward;
// no package reads configuration on its own.
package config

import (
	"time"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/blacklist"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/cache"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/fetcher"
)

// Config represents the complete dnsintel configuration.
type Config struct {
	Global    GlobalConfig    `yaml:"global" mapstructure:"global"`
	DNS       DNSConfig       `yaml:"dns" mapstructure:"dns"`
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Blacklist BlacklistConfig `yaml:"blacklist" mapstructure:"blacklist"`
	Probe     ProbeConfig     `yaml:"probe" mapstructure:"probe"`
	ASN       ASNConfig       `yaml:"asn" mapstructure:"asn"`
}

// GlobalConfig holds settings shared by every command.
type GlobalConfig struct {
	// Number of concurrent lookups inside one snapshot
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`

	// Address the API server binds to
	ListenAddr string `yaml:"listen_addr" mapstructure:"listen_addr"`

	// Extra IPv4 addresses the validator rejects, one literal
	// dotted-quad per entry (not CIDR)
	SpecialBlocks []string `yaml:"special_blocks" mapstructure:"special_blocks"`
}

// DNSConfig tunes the resolver.
type DNSConfig struct {
	// Nameservers as host:port; empty means resolv.conf with public fallback
	Nameservers []string `yaml:"nameservers" mapstructure:"nameservers"`

	QueryTimeout time.Duration `yaml:"query_timeout" mapstructure:"query_timeout"`
	Retries      int           `yaml:"retries" mapstructure:"retries"`
}

// StorageConfig tunes the durable history store.
type StorageConfig struct {
	// DatabaseDSN is the sqlite path or DSN
	DatabaseDSN string `yaml:"database_dsn" mapstructure:"database_dsn"`

	// FreshnessWindow is how old a stored answer may be and still be
	// served without a live resolution
	FreshnessWindow time.Duration `yaml:"freshness_window" mapstructure:"freshness_window"`

	// Retention bounds history age for the prune command
	Retention time.Duration `yaml:"retention" mapstructure:"retention"`
}

// CacheConfig tunes the hot layer. An empty RedisAddr selects the
// in-process cache.
type CacheConfig struct {
	RedisAddr     string        `yaml:"redis_addr" mapstructure:"redis_addr"`
	RedisPassword string        `yaml:"redis_password" mapstructure:"redis_password"`
	RedisDB       int           `yaml:"redis_db" mapstructure:"redis_db"`
	TTL           time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// BlacklistConfig tunes the reputation check.
type BlacklistConfig struct {
	// Policy is "any" (one hit flags the domain) or "all"
	Policy string `yaml:"policy" mapstructure:"policy"`

	// Zones are the DNSBL suffixes queried; empty means the defaults
	Zones []string `yaml:"zones" mapstructure:"zones"`

	VirusTotalKey string `yaml:"virustotal_key" mapstructure:"virustotal_key"`
}

// ProbeConfig tunes the HTTPS reachability probe.
type ProbeConfig struct {
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ASNConfig selects the AS-ownership backend. With a database path set the
// offline GeoIP reader is used; otherwise the Cymru DNS service.
type ASNConfig struct {
	GeoIPPath string `yaml:"geoip_path" mapstructure:"geoip_path"`
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			Concurrency: 16,
			ListenAddr:  ":8000",
		},
		DNS: DNSConfig{
			QueryTimeout: 5 * time.Second,
			Retries:      2,
		},
		Storage: StorageConfig{
			DatabaseDSN:     "dnsintel.db",
			FreshnessWindow: fetcher.DefaultFreshnessWindow,
			Retention:       30 * 24 * time.Hour,
		},
		Cache: CacheConfig{
			TTL: cache.DefaultTTL,
		},
		Blacklist: BlacklistConfig{
			Policy: string(blacklist.PolicyAny),
		},
		Probe: ProbeConfig{
			Timeout: 2 * time.Second,
		},
	}
}
