// Package watcher re-runs flow analysis after edits settle. The editor calls
// NotifyChanged on every mutation; the watcher coalesces bursts behind a
// quiet period and fans the fresh result out to subscribers. The analysis
// core stays pure — all timing and mutable subscription state lives here.
package watcher

import (
	"log/slog"
	"sync"
	"time"

	"github.com/accuflow/accuflow/internal/domain"
)

const defaultQuietPeriod = 300 * time.Millisecond

// Analyzer is the slice of the analysis engine the watcher needs.
type Analyzer interface {
	AnalyzeFlow(flow *domain.Flow) domain.FlowValidationResult
}

// Listener receives each completed validation result.
type Listener func(domain.FlowValidationResult)

// Watcher debounces NotifyChanged calls and runs one analysis per burst.
type Watcher struct {
	analyzer Analyzer
	quiet    time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	timer     *time.Timer
	pending   *domain.Flow
	listeners []Listener
	closed    bool
}

func New(analyzer Analyzer, quiet time.Duration, logger *slog.Logger) *Watcher {
	if quiet <= 0 {
		quiet = defaultQuietPeriod
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		analyzer: analyzer,
		quiet:    quiet,
		logger:   logger.With("component", "watcher"),
	}
}

// Subscribe registers a listener for future results. Listeners are invoked
// sequentially, outside the watcher's lock, on the timer goroutine.
func (w *Watcher) Subscribe(fn Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, fn)
}

// NotifyChanged records the latest flow snapshot and restarts the quiet
// timer. Only the newest snapshot of a burst is analyzed.
func (w *Watcher) NotifyChanged(flow *domain.Flow) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.pending = flow
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.quiet, w.fire)
}

// Flush runs any pending analysis immediately instead of waiting out the
// quiet period.
func (w *Watcher) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.fire()
}

// Close stops the timer and drops any pending snapshot. Further
// NotifyChanged calls are ignored.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	flow := w.pending
	w.pending = nil
	closed := w.closed
	listeners := append([]Listener(nil), w.listeners...)
	w.mu.Unlock()

	if closed || flow == nil {
		return
	}

	result := w.analyzer.AnalyzeFlow(flow)

	w.logger.Debug("debounced analysis complete",
		"severity", result.Severity,
		"nodes", len(result.NodeResults))

	for _, fn := range listeners {
		fn(result)
	}
}
