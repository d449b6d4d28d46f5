package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a domain has no stored history.
var ErrNotFound = errors.New("store: domain record not found")

// Store wraps the database handle. Safe for concurrent use; gorm pools
// connections underneath.
type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

// Open connects to the database named by dsn and returns a Store. The
// schema is not touched; call EnsureSchema before first use.
func Open(dsn string, log *slog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", dsn, err)
	}
	return &Store{db: db, log: log}, nil
}

// EnsureSchema creates or migrates the two tables. Idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Domain{}, &DomainRecord{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// EnsureDomain returns the identity row for domain, creating it on first
// sight. Calling it again for the same name returns the same row.
func (s *Store) EnsureDomain(ctx context.Context, domain string) (*Domain, error) {
	row := Domain{DomainString: domain}
	err := s.db.WithContext(ctx).
		Where(Domain{DomainString: domain}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, fmt.Errorf("ensure domain %q: %w", domain, err)
	}
	return &row, nil
}

// InsertRecord appends one resolution row to the domain's history.
func (s *Store) InsertRecord(ctx context.Context, rec *DomainRecord) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// LatestRecord returns the newest stored resolution for domain, or
// ErrNotFound when the domain has never been resolved.
func (s *Store) LatestRecord(ctx context.Context, domain string) (*DomainRecord, error) {
	var rec DomainRecord
	err := s.db.WithContext(ctx).
		Joins("JOIN domains ON domains.id = domain_records.domain_id").
		Where("domains.domain_string = ?", domain).
		Order("domain_records.check_time DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load latest record for %q: %w", domain, err)
	}
	return &rec, nil
}

// History returns up to limit resolutions for domain, newest first.
func (s *Store) History(ctx context.Context, domain string, limit int) ([]DomainRecord, error) {
	var recs []DomainRecord
	q := s.db.WithContext(ctx).
		Joins("JOIN domains ON domains.id = domain_records.domain_id").
		Where("domains.domain_string = ?", domain).
		Order("domain_records.check_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("load history for %q: %w", domain, err)
	}
	return recs, nil
}

// PruneOlderThan deletes history rows with a check time before cutoff and
// returns the number removed. Domain identity rows are kept.
func (s *Store) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("check_time < ?", cutoff).
		Delete(&DomainRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune records: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		s.log.Debug("pruned stale history", "rows", res.RowsAffected, "cutoff", cutoff)
	}
	return res.RowsAffected, nil
}
