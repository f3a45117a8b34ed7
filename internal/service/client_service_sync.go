package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// clientSyncService reconciles the local datasets with the remote tables.
// At most one cycle runs at a time; the remote store wins on pull.
type clientSyncService struct {
	data     *localData
	tables   gateway.Tables
	datasets []syncDataset
	notifier Notifier
	state    *watchable[models.SyncState]
	running  atomic.Bool
	now      func() time.Time
	logger   *logger.Logger
}

// NewClientSyncService creates a sync service over its own view of the local
// store. Services sharing a store should be built with NewClientServices.
func NewClientSyncService(localStore store.LocalStorage, tables gateway.Tables, notifier Notifier, logger *logger.Logger) ClientSyncService {
	return newClientSyncService(newLocalData(localStore), tables, notifier, logger)
}

func newClientSyncService(data *localData, tables gateway.Tables, notifier Notifier, logger *logger.Logger) *clientSyncService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &clientSyncService{
		data:     data,
		tables:   tables,
		datasets: syncDescriptors(),
		notifier: notifier,
		state:    newSyncStateHolder(),
		now:      time.Now,
		logger:   logger,
	}
}

func (s *clientSyncService) FullSync(ctx context.Context, sc models.SyncContext) models.SyncResult {
	return s.run(ctx, sc, true, true)
}

func (s *clientSyncService) SyncFromCloud(ctx context.Context, sc models.SyncContext) models.SyncResult {
	return s.run(ctx, sc, true, false)
}

func (s *clientSyncService) SyncToCloud(ctx context.Context, sc models.SyncContext) models.SyncResult {
	return s.run(ctx, sc, false, true)
}

// TriggerSync is a FullSync started by the user: progress and outcome are
// also reported through the notifier.
func (s *clientSyncService) TriggerSync(ctx context.Context, sc models.SyncContext) models.SyncResult {
	s.notifier.Notify(models.Notification{Kind: models.NotifyInfo, Message: app.MsgSyncStarted})

	res := s.FullSync(ctx, sc)
	if res.Success {
		s.notifier.Notify(models.Notification{Kind: models.NotifySuccess, Message: app.MsgSyncCompleted})
	} else {
		msg := res.Error
		if msg == "" {
			msg = app.MsgSyncFailed
		}
		s.notifier.Notify(models.Notification{Kind: models.NotifyError, Message: msg})
	}
	return res
}

func (s *clientSyncService) run(ctx context.Context, sc models.SyncContext, pull, push bool) models.SyncResult {
	log := s.logger.With().Str("func", "clientSyncService.run").Str("owner_id", sc.OwnerID).Logger()

	if !sc.CloudMode {
		s.state.update(func(st *models.SyncState) { st.Status = models.SyncOffline })
	}
	if !sc.CanSync() || !s.running.CompareAndSwap(false, true) {
		log.Debug().Bool("cloud_mode", sc.CloudMode).Msg("sync skipped")
		return models.SyncResult{Success: false, Error: app.MsgNotReadyToSync}
	}
	defer s.running.Store(false)

	s.state.update(func(st *models.SyncState) {
		st.Status = models.SyncSyncing
		st.Error = ""
	})

	report := models.SyncReport{StartedAt: s.now()}
	if pull {
		report.Results = append(report.Results, s.pullAll(ctx, sc.OwnerID)...)
	}
	if push {
		report.Results = append(report.Results, s.pushAll(ctx, sc.OwnerID)...)
	}
	report.FinishedAt = s.now()

	pending := s.CalculatePendingChanges(ctx)
	failures := report.Failures()
	if len(failures) == 0 {
		finished := report.FinishedAt.UTC()
		s.state.update(func(st *models.SyncState) {
			st.Status = models.SyncOnline
			st.LastSynced = &finished
			st.PendingChanges = pending
			st.Error = ""
		})
		log.Info().Int("results", len(report.Results)).Int("pending", pending).Msg("sync cycle finished")
		return models.SyncResult{Success: true}
	}

	msg := failureMessage(failures)
	s.state.update(func(st *models.SyncState) {
		st.Status = models.SyncError
		st.PendingChanges = pending
		st.Error = msg
	})
	log.Warn().Str("error", msg).Int("pending", pending).Msg("sync cycle finished with failures")
	return models.SyncResult{Success: false, Error: msg}
}

// pullAll pulls every dataset concurrently and returns once all are done.
func (s *clientSyncService) pullAll(ctx context.Context, ownerID string) []models.DatasetResult {
	results := make([]models.DatasetResult, len(s.datasets))

	var wg sync.WaitGroup
	for i, ds := range s.datasets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.pullOne(ctx, ds, ownerID)
		}()
	}
	wg.Wait()

	return results
}

func (s *clientSyncService) pullOne(ctx context.Context, ds syncDataset, ownerID string) (res models.DatasetResult) {
	res = models.DatasetResult{Dataset: ds.key(), Phase: models.PhasePull}
	defer recoverDataset(&res)

	res.Records, res.Err = ds.pull(ctx, s.data, s.tables, ownerID)
	if res.Err != nil {
		s.logger.Err(res.Err).Str("func", "clientSyncService.pullOne").Str("dataset", ds.key()).Msg("pull failed")
	}
	return res
}

// pushAll pushes datasets one after another; a failed dataset does not stop
// the rest.
func (s *clientSyncService) pushAll(ctx context.Context, ownerID string) []models.DatasetResult {
	now := s.now()
	results := make([]models.DatasetResult, 0, len(s.datasets))
	for _, ds := range s.datasets {
		results = append(results, s.pushOne(ctx, ds, ownerID, now))
	}
	return results
}

func (s *clientSyncService) pushOne(ctx context.Context, ds syncDataset, ownerID string, now time.Time) (res models.DatasetResult) {
	res = models.DatasetResult{Dataset: ds.key(), Phase: models.PhasePush}
	defer recoverDataset(&res)

	res.Records, res.Deleted, res.Err = ds.push(ctx, s.data, s.tables, ownerID, now)
	if res.Err != nil {
		s.logger.Err(res.Err).Str("func", "clientSyncService.pushOne").Str("dataset", ds.key()).Msg("push failed")
	}
	return res
}

// CalculatePendingChanges counts local records not yet reflected remotely.
func (s *clientSyncService) CalculatePendingChanges(ctx context.Context) int {
	var n int
	for _, ds := range s.datasets {
		n += ds.pending(ctx, s.data)
	}
	return n
}

// Refresh re-derives the badge after a session or mode change.
func (s *clientSyncService) Refresh(ctx context.Context, sc models.SyncContext) models.SyncState {
	if !sc.CanSync() {
		return s.state.update(func(st *models.SyncState) { st.Status = models.SyncOffline })
	}

	pending := s.CalculatePendingChanges(ctx)
	return s.state.update(func(st *models.SyncState) {
		if !s.running.Load() {
			st.Status = models.SyncOnline
		}
		st.PendingChanges = pending
	})
}

func (s *clientSyncService) State() models.SyncState {
	return s.state.get()
}

func (s *clientSyncService) Subscribe() (<-chan models.SyncState, func()) {
	return s.state.subscribe()
}

func failureMessage(failures []models.DatasetResult) string {
	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Dataset, f.Phase))
	}
	return fmt.Sprintf("%s: %s", app.MsgSyncFailed, strings.Join(parts, ", "))
}
