package workers

import (
	"context"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/models"
)

// firstPage is the page each periodic refresh asks the scrapers for.
const firstPage = "1"

// refreshWorker periodically re-fetches every collection whose cache has
// grown older than the configured interval. On-demand refreshes through the
// API bump LastFetched, so a busy collection is skipped until it goes stale
// again.
type refreshWorker struct {
	library  service.LibraryService
	interval time.Duration

	logger *logger.Logger
}

func newRefreshWorker(library service.LibraryService, interval time.Duration, logger *logger.Logger) *refreshWorker {
	return &refreshWorker{
		library:  library,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns the refresh loop and returns immediately;
// the loop stops when ctx is cancelled.
func (w *refreshWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

func (w *refreshWorker) loop(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("refresh worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("refresh worker stopped")
			return
		case <-ticker.C:
			w.refreshStale(ctx)
		}
	}
}

func (w *refreshWorker) refreshStale(ctx context.Context) {
	for _, collection := range models.Collections() {
		lastFetched, err := w.library.LastFetched(ctx, collection)
		if err != nil {
			w.logger.Err(err).Str("collection", string(collection)).Msg("staleness check failed")
			continue
		}

		if time.Since(lastFetched) < w.interval {
			continue
		}

		if _, err = w.library.Refresh(ctx, collection, firstPage); err != nil {
			w.logger.Err(err).Str("collection", string(collection)).Msg("periodic refresh failed")
		}
	}
}
