// Package assembler fetches resolved voter IDs in bounded batches and
// reshapes raw records into display results.
package assembler

import (
	"context"
	"errors"
	"sync"

	"github.com/gramseva/matadar/internal/models"
	"github.com/gramseva/matadar/internal/store"
	"go.uber.org/zap"
)

// DefaultBatchSize bounds how many record fetches are in flight at once.
const DefaultBatchSize = 10

// Assembler fetches full records for resolved IDs. Batches run sequentially;
// records within one batch are fetched concurrently and awaited jointly.
type Assembler struct {
	store     store.Store
	batchSize int
	logger    *zap.Logger
}

// NewAssembler creates an Assembler. batchSize <= 0 selects the default.
func NewAssembler(st store.Store, batchSize int, logger *zap.Logger) *Assembler {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{store: st, batchSize: batchSize, logger: logger}
}

// FetchRecords fetches and assembles the records for ids. IDs with no record
// in the store are dropped silently; fetch errors are logged, drop the ID,
// and set the degraded flag. Result order is guaranteed only up to batch
// grouping.
func (a *Assembler) FetchRecords(ctx context.Context, ids []string) ([]*models.SearchResult, bool) {
	var (
		results  []*models.SearchResult
		degraded bool
	)
	for start := 0; start < len(ids); start += a.batchSize {
		end := start + a.batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batchResults, batchDegraded := a.fetchBatch(ctx, ids[start:end])
		results = append(results, batchResults...)
		degraded = degraded || batchDegraded
	}
	return results, degraded
}

func (a *Assembler) fetchBatch(ctx context.Context, ids []string) ([]*models.SearchResult, bool) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		results  []*models.SearchResult
		degraded bool
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			rec, err := a.store.GetVoter(ctx, id)
			if err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					a.logger.Warn("record fetch failed", zap.String("voter_id", id), zap.Error(err))
					mu.Lock()
					degraded = true
					mu.Unlock()
				}
				// Missing records are a store inconsistency, not an error.
				return
			}
			mu.Lock()
			results = append(results, models.NewSearchResult(rec))
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return results, degraded
}
