package translit

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 200 * time.Millisecond

// Provider serves the current Transliterator and hot-reloads the word
// dictionary when the overlay file changes. Each reload builds a fresh
// immutable Transliterator and swaps it in; in-flight searches keep the
// instance they started with.
type Provider struct {
	mu       sync.RWMutex
	current  *Transliterator
	dictPath string
	watcher  *fsnotify.Watcher
	timer    *time.Timer
	done     chan struct{}
	started  bool
	stopOnce sync.Once
	logger   *zap.Logger // optional; when set, logs reload events
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger sets a logger for reload events.
func WithLogger(l *zap.Logger) ProviderOption {
	return func(p *Provider) { p.logger = l }
}

// NewProvider builds a Provider. When dictPath is non-empty the overlay file
// is applied on top of the built-in dictionary; a missing or unparsable
// overlay is logged and skipped, never fatal.
func NewProvider(dictPath string, opts ...ProviderOption) *Provider {
	p := &Provider{
		dictPath: dictPath,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.current = p.build()
	return p
}

// Current returns the Transliterator in effect right now.
func (p *Provider) Current() *Transliterator {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Start begins watching the dictionary overlay file for changes. It is a
// no-op when no overlay path is configured. Runs until ctx is cancelled or
// Stop is called.
func (p *Provider) Start(ctx context.Context) error {
	if p.dictPath == "" {
		return nil
	}
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.mu.Unlock()
		return err
	}
	if err := watcher.Add(p.dictPath); err != nil {
		_ = watcher.Close()
		p.mu.Unlock()
		return err
	}
	p.watcher = watcher
	p.started = true
	p.mu.Unlock()
	go p.run(ctx)
	return nil
}

func (p *Provider) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.Stop()
			return
		case <-p.done:
			return
		case ev, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				p.scheduleReload()
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			if err != nil && p.logger != nil {
				p.logger.Debug("dictionary watch error", zap.Error(err))
			}
		}
	}
}

// scheduleReload debounces bursts of write events into one reload.
func (p *Provider) scheduleReload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(reloadDebounce, p.Reload)
}

// Reload rebuilds the Transliterator from the built-in tables plus the
// overlay file and swaps it in.
func (p *Provider) Reload() {
	tr := p.build()
	p.mu.Lock()
	p.current = tr
	p.mu.Unlock()
	if p.logger != nil {
		p.logger.Info("transliteration dictionary reloaded",
			zap.String("path", p.dictPath),
			zap.Int("entries", tr.DictionarySize()),
		)
	}
}

func (p *Provider) build() *Transliterator {
	dict := DefaultDictionary()
	if p.dictPath != "" {
		overlay, err := LoadDictionary(p.dictPath)
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("dictionary overlay skipped", zap.String("path", p.dictPath), zap.Error(err))
			}
		} else {
			dict = mergedDictionary(overlay)
		}
	}
	return New(dict, DefaultRomanTable())
}

// Stop stops the overlay watcher. Safe to call more than once.
func (p *Provider) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.mu.Lock()
		if p.timer != nil {
			p.timer.Stop()
		}
		if p.watcher != nil {
			_ = p.watcher.Close()
		}
		p.started = false
		p.mu.Unlock()
	})
}
