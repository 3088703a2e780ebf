// Package store defines the read-only remote voter store interface and its
// implementations.
package store

import (
	"context"
	"errors"

	"github.com/gramseva/matadar/internal/models"
)

// ErrNotFound is returned when a voter or index key does not exist.
var ErrNotFound = errors.New("not found")

// Tier names one of the precomputed name-index maps, from most to least
// specific. Tier values are the store's logical key prefixes.
type Tier string

const (
	// TierExact indexes the full last_first_middle key.
	TierExact Tier = "name_index"
	// TierFirstLast indexes the first_last key.
	TierFirstLast Tier = "name_index_first_last"
	// TierLast indexes the surname alone.
	TierLast Tier = "name_index_last"
)

// NameTiers lists the index tiers in probe order. The resolver depends on
// this order for its short-circuit.
var NameTiers = []Tier{TierExact, TierFirstLast, TierLast}

// Store reads voters and name indexes. All implementations are read-only:
// the roll is provisioned by external tooling.
type Store interface {
	// GetVoter returns the record for a voter ID, or ErrNotFound.
	GetVoter(ctx context.Context, id string) (*models.VoterRecord, error)
	// GetIndex returns the voter-ID membership map under key in the given
	// tier, or ErrNotFound when the key is absent.
	GetIndex(ctx context.Context, tier Tier, key string) (map[string]bool, error)
	// ListVoters returns every record in the roll. Used only by the
	// voter-ID substring fallback.
	ListVoters(ctx context.Context) ([]*models.VoterRecord, error)

	Close() error
}
