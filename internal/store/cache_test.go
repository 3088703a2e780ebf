package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gramseva/matadar/internal/models"
)

// countingStore wraps a MemoryStore and counts GetVoter calls.
type countingStore struct {
	*MemoryStore
	getVoterCalls int
}

func (c *countingStore) GetVoter(ctx context.Context, id string) (*models.VoterRecord, error) {
	c.getVoterCalls++
	return c.MemoryStore.GetVoter(ctx, id)
}

func newTestCache(t *testing.T) (*CachedStore, *countingStore) {
	t.Helper()
	inner := &countingStore{MemoryStore: NewMemoryStore()}
	inner.AddVoter(&models.VoterRecord{
		VoterID:  "UXM8227381",
		FullName: "मंगेश रामदास बधाले",
		Age:      34,
		Village:  "वडगाव",
	})
	cached, err := NewCachedStore(inner, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewCachedStore: %v", err)
	}
	t.Cleanup(func() { _ = cached.Close() })
	return cached, inner
}

func TestCachedStoreReadThrough(t *testing.T) {
	cached, inner := newTestCache(t)
	ctx := context.Background()

	rec, err := cached.GetVoter(ctx, "UXM8227381")
	if err != nil {
		t.Fatalf("first GetVoter: %v", err)
	}
	if rec.FullName != "मंगेश रामदास बधाले" || rec.Village != "वडगाव" {
		t.Errorf("unexpected record %+v", rec)
	}
	if inner.getVoterCalls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.getVoterCalls)
	}

	again, err := cached.GetVoter(ctx, "UXM8227381")
	if err != nil {
		t.Fatalf("second GetVoter: %v", err)
	}
	if inner.getVoterCalls != 1 {
		t.Errorf("second lookup hit the network: %d inner calls", inner.getVoterCalls)
	}
	if again.FullName != rec.FullName || again.Age != rec.Age {
		t.Errorf("cached record differs: %+v vs %+v", again, rec)
	}
}

func TestCachedStoreMissPassthrough(t *testing.T) {
	cached, inner := newTestCache(t)
	if _, err := cached.GetVoter(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Errorf("miss should be ErrNotFound, got %v", err)
	}
	// misses are not cached; a later provisioned record must be visible
	inner.AddVoter(&models.VoterRecord{VoterID: "NOPE", FullName: "क"})
	if _, err := cached.GetVoter(context.Background(), "NOPE"); err != nil {
		t.Errorf("record added later should resolve, got %v", err)
	}
}

func TestCachedStoreDelegatesIndexes(t *testing.T) {
	cached, inner := newTestCache(t)
	inner.SetIndex(TierLast, "बधाले", map[string]bool{"UXM8227381": true})
	members, err := cached.GetIndex(context.Background(), TierLast, "बधाले")
	if err != nil || !members["UXM8227381"] {
		t.Fatalf("GetIndex = %v, %v", members, err)
	}
	voters, err := cached.ListVoters(context.Background())
	if err != nil || len(voters) != 1 {
		t.Fatalf("ListVoters = %d, %v", len(voters), err)
	}
}
