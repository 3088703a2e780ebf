// Package search provides the voter search engine: form routing, tiered
// name resolution, and batched result assembly.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gramseva/matadar/internal/assembler"
	"github.com/gramseva/matadar/internal/models"
	"github.com/gramseva/matadar/internal/resolver"
	"github.com/gramseva/matadar/internal/translit"
	"go.uber.org/zap"
)

// Engine runs voter searches against the remote store.
type Engine struct {
	provider  *translit.Provider
	resolver  *resolver.Resolver
	assembler *assembler.Assembler
	logger    *zap.Logger
	seq       atomic.Uint64
}

// NewEngine creates an engine with the given dependencies.
func NewEngine(
	provider *translit.Provider,
	res *resolver.Resolver,
	asm *assembler.Assembler,
	logger *zap.Logger,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		provider:  provider,
		resolver:  res,
		assembler: asm,
		logger:    logger,
	}
}

// PerformSearch runs one search. A populated voter ID takes priority over
// name fields. The response's Degraded flag reports partial remote failures;
// an empty result list with Degraded unset is a clean "no voters".
//
// Each invocation takes the next sequence token. When a newer invocation
// starts before this one finishes, the response is marked Stale so callers
// driven by rapid re-triggering (debounced form input) can discard it.
func (e *Engine) PerformSearch(ctx context.Context, form *models.SearchForm) (*models.SearchResponse, error) {
	token := e.seq.Add(1)
	startTime := time.Now()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var (
		results  []*models.SearchResult
		degraded bool
	)
	if form.VoterID != "" {
		records, deg := e.resolver.ResolveByID(ctx, form.VoterID)
		degraded = deg
		results = make([]*models.SearchResult, 0, len(records))
		for _, rec := range records {
			results = append(results, models.NewSearchResult(rec))
		}
	} else {
		ids, resolveDegraded := e.resolver.ResolveByName(ctx, form.FirstName, form.MiddleName, form.LastName)
		fetched, fetchDegraded := e.assembler.FetchRecords(ctx, ids)
		results = fetched
		degraded = resolveDegraded || fetchDegraded
	}

	response := &models.SearchResponse{
		Results:   results,
		Total:     len(results),
		Degraded:  degraded,
		QueryTime: time.Since(startTime).Milliseconds(),
		Seq:       token,
		Stale:     token != e.seq.Load(),
	}
	e.logger.Debug("search completed",
		zap.Uint64("seq", token),
		zap.Int("total", response.Total),
		zap.Bool("degraded", response.Degraded),
		zap.Bool("stale", response.Stale),
	)
	return response, nil
}

// Transliterate converts text to Devanagari with the current dictionary.
func (e *Engine) Transliterate(text string) string {
	return e.provider.Current().Transliterate(text)
}

// ContainsDevanagari reports whether text is already in native script.
func (e *Engine) ContainsDevanagari(text string) bool {
	return translit.ContainsDevanagari(text)
}

// DictionarySize returns the current word dictionary size, for status
// reporting.
func (e *Engine) DictionarySize() int {
	return e.provider.Current().DictionarySize()
}
