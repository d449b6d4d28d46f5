// Package fetcher answers "what does this domain look like" through a
// three-layer chain: the hot cache, then the durable store when its newest
// row is still fresh, then a live resolution that is written back to both
// layers. Callers always receive a complete snapshot; where it came from is
// an implementation detail surfaced only in debug logs.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/cache"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/codec"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/normalize"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/store"
)

// Resolver produces a live snapshot. Satisfied by toolbox.Toolbox.
type Resolver interface {
	Snapshot(ctx context.Context, raw string, withSRV bool) (*record.Snapshot, error)
}

// Store is the slice of the durable store the fetcher needs.
type Store interface {
	EnsureDomain(ctx context.Context, domain string) (*store.Domain, error)
	InsertRecord(ctx context.Context, rec *store.DomainRecord) error
	LatestRecord(ctx context.Context, domain string) (*store.DomainRecord, error)
}

// Fetcher owns the cache-store-live chain.
type Fetcher struct {
	resolver Resolver
	store    Store
	cache    cache.Cache
	logger   *slog.Logger

	// FreshnessWindow is how old a stored row may be and still be served
	// without a live resolution.
	freshness time.Duration
	cacheTTL  time.Duration
}

// Config carries the fetcher's collaborators and timing policy.
type Config struct {
	Resolver Resolver
	Store    Store
	Cache    cache.Cache
	Logger   *slog.Logger

	FreshnessWindow time.Duration
	CacheTTL        time.Duration
}

// DefaultFreshnessWindow bounds how stale a stored answer may be.
const DefaultFreshnessWindow = 5 * time.Minute

// New wires a Fetcher.
func New(cfg Config) *Fetcher {
	if cfg.FreshnessWindow <= 0 {
		cfg.FreshnessWindow = DefaultFreshnessWindow
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = cache.DefaultTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Fetcher{
		resolver:  cfg.Resolver,
		store:     cfg.Store,
		cache:     cfg.Cache,
		logger:    cfg.Logger,
		freshness: cfg.FreshnessWindow,
		cacheTTL:  cfg.CacheTTL,
	}
}

// GetSnapshot returns a snapshot for raw, serving from the cache, then the
// store, then a live resolution. Live results are persisted to the store
// and written through to the cache before being returned.
//
// withSRV requests the full service sweep. Cached and stored rows were
// (almost always) resolved without it, so the flag forces a live resolution
// rather than serving a snapshot with an empty sweep.
func (f *Fetcher) GetSnapshot(ctx context.Context, raw string, withSRV bool) (*record.Snapshot, error) {
	domain, err := normalize.Normalize(raw)
	if err != nil {
		return nil, err
	}

	if !withSRV {
		if snap := f.fromCache(ctx, domain); snap != nil {
			return snap, nil
		}
		if snap := f.fromStore(ctx, domain); snap != nil {
			f.writeCache(ctx, domain, snap)
			return snap, nil
		}
	}

	snap, err := f.resolver.Snapshot(ctx, domain, withSRV)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("resolved live", "domain", domain, "took", snap.SearchUsedTime)

	if err := f.persist(ctx, snap); err != nil {
		// A dead database must not make lookups fail; the snapshot is
		// already in hand.
		f.logger.Warn("persist failed", "domain", domain, "error", err)
	}
	f.writeCache(ctx, domain, snap)
	return snap, nil
}

// GetRecord resolves raw and extracts the one field named by recordType.
// Unknown type strings fail with apperr.ErrUnsupportedRecordType before any
// network traffic happens.
func (f *Fetcher) GetRecord(ctx context.Context, raw, recordType string) (any, error) {
	t, err := record.ParseType(recordType)
	if err != nil {
		return nil, err
	}
	snap, err := f.GetSnapshot(ctx, raw, t == record.TypeSRV)
	if err != nil {
		return nil, err
	}
	return snap.Field(t), nil
}

// DumpToFile writes the domain's snapshot to path as indented JSON.
func (f *Fetcher) DumpToFile(ctx context.Context, raw, path string) error {
	snap, err := f.GetSnapshot(ctx, raw, false)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

func (f *Fetcher) fromCache(ctx context.Context, domain string) *record.Snapshot {
	data, err := f.cache.Get(ctx, domain)
	if errors.Is(err, cache.ErrMiss) {
		return nil
	}
	if err != nil {
		f.logger.Warn("cache read failed", "domain", domain, "error", err)
		return nil
	}
	snap, err := codec.Unmarshal(data)
	if err != nil {
		f.logger.Warn("cache entry corrupt", "domain", domain, "error", err)
		return nil
	}
	f.logger.Debug("served from cache", "domain", domain)
	return snap
}

func (f *Fetcher) fromStore(ctx context.Context, domain string) *record.Snapshot {
	rec, err := f.store.LatestRecord(ctx, domain)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		f.logger.Warn("store read failed", "domain", domain, "error", err)
		return nil
	}
	if time.Since(rec.CheckTime) > f.freshness {
		f.logger.Debug("stored record stale", "domain", domain, "checked", rec.CheckTime)
		return nil
	}
	snap, err := codec.DecodeRecord(rec)
	if err != nil {
		f.logger.Warn("stored record corrupt", "domain", domain, "error", err)
		return nil
	}
	f.logger.Debug("served from store", "domain", domain, "checked", rec.CheckTime)
	return snap
}

func (f *Fetcher) persist(ctx context.Context, snap *record.Snapshot) error {
	row, err := f.store.EnsureDomain(ctx, snap.DomainName)
	if err != nil {
		return err
	}
	return f.store.InsertRecord(ctx, codec.EncodeRecord(row.ID, snap))
}

func (f *Fetcher) writeCache(ctx context.Context, domain string, snap *record.Snapshot) {
	data, err := codec.Marshal(snap)
	if err != nil {
		f.logger.Warn("cache encode failed", "domain", domain, "error", err)
		return
	}
	if err := f.cache.Set(ctx, domain, data, f.cacheTTL); err != nil {
		f.logger.Warn("cache write failed", "domain", domain, "error", err)
	}
}
