package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestNewWorkers_ZeroIntervalDisablesRefresh(t *testing.T) {
	ws := NewWorkers(&mockLibrary{}, config.Workers{}, logger.Nop())

	if len(ws.workers) != 0 {
		t.Errorf("expected no workers for zero interval, got %d", len(ws.workers))
	}
}

// mockLibrary records refresh calls; LastFetched always reports stale.
type mockLibrary struct {
	mu        sync.Mutex
	refreshed []models.Collection
}

func (m *mockLibrary) ListDocuments(_ context.Context, _ models.Collection) ([]models.Document, error) {
	return nil, nil
}

func (m *mockLibrary) Refresh(_ context.Context, collection models.Collection, page string) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshed = append(m.refreshed, collection)
	return nil, nil
}

func (m *mockLibrary) LastFetched(_ context.Context, _ models.Collection) (time.Time, error) {
	return time.Time{}, nil
}

func (m *mockLibrary) refreshCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.refreshed)
}

func TestRefreshWorker_RefreshesStaleCollections(t *testing.T) {
	library := &mockLibrary{}
	worker := newRefreshWorker(library, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	worker.Run(ctx)

	deadline := time.After(2 * time.Second)
	for library.refreshCount() < len(models.Collections()) {
		select {
		case <-deadline:
			t.Fatalf("expected %d refreshes, got %d", len(models.Collections()), library.refreshCount())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
}

func TestRefreshWorker_SkipsFreshCollections(t *testing.T) {
	library := &freshLibrary{}
	worker := newRefreshWorker(library, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// drive one staleness pass directly instead of waiting for the ticker
	worker.refreshStale(ctx)

	if library.refreshCalls != 0 {
		t.Errorf("expected no refreshes for fresh collections, got %d", library.refreshCalls)
	}
}

// freshLibrary reports every collection as just fetched.
type freshLibrary struct {
	refreshCalls int
}

func (f *freshLibrary) ListDocuments(_ context.Context, _ models.Collection) ([]models.Document, error) {
	return nil, nil
}

func (f *freshLibrary) Refresh(_ context.Context, _ models.Collection, _ string) ([]models.Document, error) {
	f.refreshCalls++
	return nil, nil
}

func (f *freshLibrary) LastFetched(_ context.Context, _ models.Collection) (time.Time, error) {
	return time.Now(), nil
}
