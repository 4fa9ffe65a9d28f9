package workers

import (
	"context"

	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. A zero refresh
// interval disables the periodic collection refresh.
func NewWorkers(library service.LibraryService, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.RefreshInterval > 0 {
		ws.workers = append(ws.workers, newRefreshWorker(library, cfg.RefreshInterval, logger))
	}

	return ws
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
