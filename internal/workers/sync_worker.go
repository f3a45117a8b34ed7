package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

// syncWorker runs a full sync every interval with the session the source
// reports at that tick.
type syncWorker struct {
	job      service.ClientSyncJob
	source   service.SyncContextSource
	interval time.Duration
}

func newSyncWorker(job service.ClientSyncJob, source service.SyncContextSource, interval time.Duration) *syncWorker {
	return &syncWorker{job: job, source: source, interval: interval}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.source, w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
