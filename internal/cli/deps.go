package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/asnlookup"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/blacklist"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/cache"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/config"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/fetcher"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/httpclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/probe"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/ratelimit"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/store"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/toolbox"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/validate"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/whois"
)

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger  *slog.Logger
	cfg     *config.Config
	fetcher *fetcher.Fetcher
	store   *store.Store
	closers []func() error
}

func (d *deps) close() {
	for _, fn := range d.closers {
		_ = fn()
	}
}

// buildDeps loads configuration, applies flag overrides and wires the full
// lookup chain: resolver, toolbox, store, cache and fetcher.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, os.UserConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if dsn, _ := flags.GetString("db"); dsn != "" {
		cfg.Storage.DatabaseDSN = dsn
	}
	if addr, _ := flags.GetString("redis"); addr != "" {
		cfg.Cache.RedisAddr = addr
	}
	if cfg.Global.Concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", cfg.Global.Concurrency)
	}

	level := slog.LevelInfo
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	policy, err := blacklist.ParsePolicy(cfg.Blacklist.Policy)
	if err != nil {
		return nil, err
	}

	d := &deps{logger: logger, cfg: cfg}

	dnsClient := dnsclient.New(dnsclient.Config{
		Nameservers: cfg.DNS.Nameservers,
		Timeout:     cfg.DNS.QueryTimeout,
		Retries:     cfg.DNS.Retries,
	})

	var asnLookuper asnlookup.Lookuper
	if cfg.ASN.GeoIPPath != "" {
		geo, err := asnlookup.NewGeoIP(cfg.ASN.GeoIPPath)
		if err != nil {
			return nil, fmt.Errorf("opening geoip database: %w", err)
		}
		d.closers = append(d.closers, geo.Close)
		asnLookuper = geo
	} else {
		asnLookuper = asnlookup.NewCymru(dnsClient, logger)
	}

	zones := cfg.Blacklist.Zones
	if len(zones) == 0 {
		zones = blacklist.DefaultZones
	}
	probeClient := httpclient.New(cfg.Probe.Timeout)

	// The threat-intel client gets its own rate limit so a burst of lookups
	// stays inside VirusTotal's free-tier quota of 4 requests per minute.
	intelClient := httpclient.New(cfg.Probe.Timeout)
	httpclient.AttachRateLimit(intelClient, ratelimit.New(4.0/60.0, 1))

	tb := toolbox.New(toolbox.Deps{
		DNS:       dnsClient,
		Whois:     whois.NewClient(cfg.DNS.QueryTimeout),
		ASN:       asnLookuper,
		Blacklist: blacklist.New(dnsClient, intelClient, zones, cfg.Blacklist.VirusTotalKey, policy, logger),
		Prober:    probe.New(probeClient, logger),
		Validator: validate.New(cfg.Global.SpecialBlocks),
		Logger:    logger,
		PoolSize:  cfg.Global.Concurrency,
	})

	st, err := store.Open(cfg.Storage.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}
	if err := st.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	d.store = st

	var hot cache.Cache
	if cfg.Cache.RedisAddr != "" {
		r, err := cache.NewRedis(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, r.Close)
		hot = r
	} else {
		hot = cache.NewMemory()
	}

	d.fetcher = fetcher.New(fetcher.Config{
		Resolver:        tb,
		Store:           st,
		Cache:           hot,
		Logger:          logger,
		FreshnessWindow: cfg.Storage.FreshnessWindow,
		CacheTTL:        cfg.Cache.TTL,
	})
	return d, nil
}
