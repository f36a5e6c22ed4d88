package watcher

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accuflow/accuflow/internal/analysis"
	"github.com/accuflow/accuflow/internal/domain"
)

type countingAnalyzer struct {
	mu    sync.Mutex
	calls int
	inner *analysis.Analyzer
}

func (c *countingAnalyzer) AnalyzeFlow(flow *domain.Flow) domain.FlowValidationResult {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner.AnalyzeFlow(flow)
}

func (c *countingAnalyzer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func testFlow() *domain.Flow {
	return &domain.Flow{
		Nodes: []domain.Node{
			{ID: "keys", Type: domain.OpGenerateKeys},
		},
	}
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	counting := &countingAnalyzer{inner: analysis.New(nil, nil)}
	w := New(counting, 30*time.Millisecond, nil)
	defer w.Close()

	results := make(chan domain.FlowValidationResult, 10)
	w.Subscribe(func(r domain.FlowValidationResult) { results <- r })

	for i := 0; i < 5; i++ {
		w.NotifyChanged(testFlow())
	}

	select {
	case result := <-results:
		assert.Equal(t, domain.SeverityValid, result.Severity)
		assert.Len(t, result.NodeResults, 1)
	case <-time.After(time.Second):
		t.Fatal("no result before timeout")
	}

	// The burst settles into exactly one analysis.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, counting.count())
	assert.Empty(t, results)
}

func TestWatcher_FlushRunsImmediately(t *testing.T) {
	counting := &countingAnalyzer{inner: analysis.New(nil, nil)}
	w := New(counting, time.Hour, nil)
	defer w.Close()

	results := make(chan domain.FlowValidationResult, 1)
	w.Subscribe(func(r domain.FlowValidationResult) { results <- r })

	w.NotifyChanged(testFlow())
	w.Flush()

	require.Equal(t, 1, counting.count())
	require.Len(t, results, 1)
}

func TestWatcher_FlushWithoutPendingIsNoop(t *testing.T) {
	counting := &countingAnalyzer{inner: analysis.New(nil, nil)}
	w := New(counting, time.Hour, nil)
	defer w.Close()

	w.Flush()

	assert.Zero(t, counting.count())
}

func TestWatcher_CloseDropsPending(t *testing.T) {
	counting := &countingAnalyzer{inner: analysis.New(nil, nil)}
	w := New(counting, 20*time.Millisecond, nil)

	w.NotifyChanged(testFlow())
	w.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, counting.count())

	// Ignored after close.
	w.NotifyChanged(testFlow())
	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, counting.count())
}

func TestWatcher_DefaultQuietPeriod(t *testing.T) {
	w := New(&countingAnalyzer{inner: analysis.New(nil, nil)}, 0, nil)
	defer w.Close()

	assert.Equal(t, defaultQuietPeriod, w.quiet)
}
