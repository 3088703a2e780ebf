package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/gramseva/matadar/internal/models"
)

// MemoryStore is an in-memory Store. It backs tests and the local fixture
// mode, where a JSON roll export replaces the hosted database.
type MemoryStore struct {
	mu      sync.RWMutex
	voters  map[string]*models.VoterRecord
	indexes map[Tier]map[string]map[string]bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		voters:  make(map[string]*models.VoterRecord),
		indexes: make(map[Tier]map[string]map[string]bool),
	}
}

// rollExport is the JSON shape of a roll fixture file: the same subtrees the
// hosted database serves.
type rollExport struct {
	Voters         map[string]*models.VoterRecord `json:"voters"`
	IndexExact     map[string]map[string]bool     `json:"name_index"`
	IndexFirstLast map[string]map[string]bool     `json:"name_index_first_last"`
	IndexLast      map[string]map[string]bool     `json:"name_index_last"`
}

// NewMemoryStoreFromFile loads a MemoryStore from a JSON roll export.
func NewMemoryStoreFromFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roll fixture: %w", err)
	}
	var export rollExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to parse roll fixture: %w", err)
	}
	s := NewMemoryStore()
	for id, rec := range export.Voters {
		if rec == nil {
			continue
		}
		if rec.VoterID == "" {
			rec.VoterID = id
		}
		s.AddVoter(rec)
	}
	for key, members := range export.IndexExact {
		s.SetIndex(TierExact, key, members)
	}
	for key, members := range export.IndexFirstLast {
		s.SetIndex(TierFirstLast, key, members)
	}
	for key, members := range export.IndexLast {
		s.SetIndex(TierLast, key, members)
	}
	return s, nil
}

// AddVoter seeds a record.
func (s *MemoryStore) AddVoter(rec *models.VoterRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters[rec.VoterID] = rec
}

// SetIndex seeds the membership map for a tier key.
func (s *MemoryStore) SetIndex(tier Tier, key string, members map[string]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexes[tier] == nil {
		s.indexes[tier] = make(map[string]map[string]bool)
	}
	s.indexes[tier][key] = members
}

// GetVoter returns the seeded record for id, or ErrNotFound.
func (s *MemoryStore) GetVoter(ctx context.Context, id string) (*models.VoterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.voters[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// GetIndex returns the seeded membership map for tier/key, or ErrNotFound.
func (s *MemoryStore) GetIndex(ctx context.Context, tier Tier, key string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members, ok := s.indexes[tier][key]
	if !ok || len(members) == 0 {
		return nil, ErrNotFound
	}
	out := make(map[string]bool, len(members))
	for id, v := range members {
		out[id] = v
	}
	return out, nil
}

// ListVoters returns all seeded records sorted by voter ID.
func (s *MemoryStore) ListVoters(ctx context.Context) ([]*models.VoterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.voters))
	for id := range s.voters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	voters := make([]*models.VoterRecord, 0, len(ids))
	for _, id := range ids {
		voters = append(voters, s.voters[id])
	}
	return voters, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
