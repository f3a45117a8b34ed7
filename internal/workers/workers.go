package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers creates the session watcher and the periodic sync of the
// client. interval <= 0 falls back to service.DefaultSyncInterval.
func NewClientWorkers(services *service.ClientServices, interval time.Duration, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		newSessionWatcher(services.AuthService, services.SyncService, logger),
		newSyncWorker(services.SyncJob, services.AuthService, interval),
	}}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
