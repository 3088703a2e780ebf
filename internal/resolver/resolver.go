// Package resolver turns name or voter-ID input into voter records by
// probing the remote store's index tiers.
package resolver

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/gramseva/matadar/internal/models"
	"github.com/gramseva/matadar/internal/searchkey"
	"github.com/gramseva/matadar/internal/store"
	"go.uber.org/zap"
)

// DefaultIDScanLimit caps how many substring matches the voter-ID fallback
// scan returns.
const DefaultIDScanLimit = 10

// Resolver resolves search input against the store's indexes. A failed probe
// is logged and treated as a miss rather than aborting the resolution; the
// degraded flag tells callers that a partial failure occurred.
type Resolver struct {
	store       store.Store
	keys        *searchkey.Generator
	idScanLimit int
	logger      *zap.Logger
}

// NewResolver creates a Resolver. idScanLimit <= 0 selects the default cap.
func NewResolver(st store.Store, keys *searchkey.Generator, idScanLimit int, logger *zap.Logger) *Resolver {
	if idScanLimit <= 0 {
		idScanLimit = DefaultIDScanLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: st, keys: keys, idScanLimit: idScanLimit, logger: logger}
}

// ResolveByName resolves parsed name fields to a sorted set of voter IDs.
// Index tiers are probed in order {exact, first+last, last-only}; every
// generated key is probed against each tier. When the first tier yields any
// membership the resolution stops there and returns only those IDs, even if
// broader tiers would add more. Otherwise the remaining tiers' hits are
// unioned and deduplicated.
func (r *Resolver) ResolveByName(ctx context.Context, first, middle, last string) ([]string, bool) {
	keys := r.keys.Keys(first, middle, last)
	if len(keys) == 0 {
		return nil, false
	}

	found := make(map[string]bool)
	degraded := false
	for i, tier := range store.NameTiers {
		for _, key := range keys {
			members, err := r.store.GetIndex(ctx, tier, key)
			if err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					r.logger.Warn("index probe failed",
						zap.String("tier", string(tier)),
						zap.String("key", key),
						zap.Error(err),
					)
					degraded = true
				}
				continue
			}
			for id, member := range members {
				if member {
					found[id] = true
				}
			}
		}
		// The most specific tier short-circuits the rest.
		if i == 0 && len(found) > 0 {
			break
		}
	}

	ids := make([]string, 0, len(found))
	for id := range found {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, degraded
}

// ResolveByID resolves a voter-ID input. The ID is upper-cased and looked up
// exactly first; when absent, the whole roll is scanned for case-insensitive
// substring containment, capped at the scan limit. The exact hit always
// short-circuits the scan.
func (r *Resolver) ResolveByID(ctx context.Context, id string) ([]*models.VoterRecord, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(id))
	if normalized == "" {
		return nil, false
	}
	degraded := false

	rec, err := r.store.GetVoter(ctx, normalized)
	if err == nil {
		return []*models.VoterRecord{rec}, false
	}
	if !errors.Is(err, store.ErrNotFound) {
		r.logger.Warn("voter lookup failed", zap.String("voter_id", normalized), zap.Error(err))
		degraded = true
	}

	voters, err := r.store.ListVoters(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Warn("roll scan failed", zap.Error(err))
			degraded = true
		}
		return nil, degraded
	}
	var matches []*models.VoterRecord
	for _, v := range voters {
		if strings.Contains(strings.ToUpper(v.VoterID), normalized) {
			matches = append(matches, v)
			if len(matches) >= r.idScanLimit {
				break
			}
		}
	}
	return matches, degraded
}
