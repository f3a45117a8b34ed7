// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

// sessionWatcher refreshes the sync status after every sign-in, sign-out
// and mode switch, so the badge never shows "online" for a local session.
type sessionWatcher struct {
	auth   service.ClientAuthService
	sync   service.ClientSyncService
	logger *logger.Logger

	mu          sync.Mutex
	unsubscribe func()
	wg          sync.WaitGroup
}

func newSessionWatcher(auth service.ClientAuthService, syncService service.ClientSyncService, logger *logger.Logger) *sessionWatcher {
	return &sessionWatcher{auth: auth, sync: syncService, logger: logger}
}

func (w *sessionWatcher) Run(ctx context.Context) {
	w.Stop()

	contexts, unsubscribe := w.auth.Subscribe()

	w.mu.Lock()
	w.unsubscribe = unsubscribe
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case sc, ok := <-contexts:
				if !ok {
					return
				}
				state := w.sync.Refresh(ctx, sc)
				w.logger.Debug().
					Bool("cloud", sc.CloudMode).
					Str("status", string(state.Status)).
					Int("pending", state.PendingChanges).
					Msg("sync status refreshed")
			}
		}
	}()
}

func (w *sessionWatcher) Stop() {
	w.mu.Lock()
	unsubscribe := w.unsubscribe
	w.unsubscribe = nil
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	w.wg.Wait()
}
