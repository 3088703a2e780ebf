package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gramseva/matadar/internal/models"
)

// CachedStore wraps a Store with a SQLite read-through cache for voter
// records, keeping repeated ID lookups off the network. Index probes and
// full-roll scans always go to the inner store: the tiers must reflect the
// live database.
type CachedStore struct {
	inner Store
	db    *sql.DB
}

// NewCachedStore opens or creates a cache database at dbPath around inner.
// Parent directories are created if they do not exist.
func NewCachedStore(inner Store, dbPath string) (*CachedStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if err := initCacheSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &CachedStore{inner: inner, db: db}, nil
}

func initCacheSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS voters (
		voter_id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		gender TEXT,
		age INTEGER,
		booth TEXT,
		village TEXT,
		gan TEXT,
		gat TEXT,
		serial_no TEXT,
		cached_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// GetVoter returns the cached record for id when present, otherwise fetches
// from the inner store and caches the result. Cache read/write failures fall
// through to the inner store rather than failing the lookup.
func (s *CachedStore) GetVoter(ctx context.Context, id string) (*models.VoterRecord, error) {
	if rec, err := s.cachedVoter(ctx, id); err == nil {
		return rec, nil
	}
	rec, err := s.inner.GetVoter(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cacheVoter(ctx, rec)
	return rec, nil
}

func (s *CachedStore) cachedVoter(ctx context.Context, id string) (*models.VoterRecord, error) {
	var rec models.VoterRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT voter_id, full_name, gender, age, booth, village, gan, gat, serial_no
		 FROM voters WHERE voter_id = ?`, id,
	).Scan(&rec.VoterID, &rec.FullName, &rec.Gender, &rec.Age,
		&rec.Booth, &rec.Village, &rec.Gan, &rec.Gat, &rec.SerialNo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *CachedStore) cacheVoter(ctx context.Context, rec *models.VoterRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO voters
		 (voter_id, full_name, gender, age, booth, village, gan, gat, serial_no, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.VoterID, rec.FullName, rec.Gender, rec.Age,
		rec.Booth, rec.Village, rec.Gan, rec.Gat, rec.SerialNo, time.Now(),
	)
	return err
}

// GetIndex delegates to the inner store; index probes are never cached.
func (s *CachedStore) GetIndex(ctx context.Context, tier Tier, key string) (map[string]bool, error) {
	return s.inner.GetIndex(ctx, tier, key)
}

// ListVoters delegates to the inner store.
func (s *CachedStore) ListVoters(ctx context.Context) ([]*models.VoterRecord, error) {
	return s.inner.ListVoters(ctx)
}

// Close closes the cache database and the inner store.
func (s *CachedStore) Close() error {
	dbErr := s.db.Close()
	innerErr := s.inner.Close()
	if dbErr != nil {
		return dbErr
	}
	return innerErr
}
