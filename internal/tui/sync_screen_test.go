package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

func TestRenderSyncBadge(t *testing.T) {
	synced := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		state    models.SyncState
		contains []string
		excludes []string
	}{
		{
			name:     "offline",
			state:    models.SyncState{Status: models.SyncOffline},
			contains: []string{"Offline"},
			excludes: []string{"pending"},
		},
		{
			name:     "syncing",
			state:    models.SyncState{Status: models.SyncSyncing},
			contains: []string{"Syncing"},
		},
		{
			name:     "online with last sync",
			state:    models.SyncState{Status: models.SyncOnline, LastSynced: &synced},
			contains: []string{"Online", "synced 09:30"},
		},
		{
			name:     "error with pending changes",
			state:    models.SyncState{Status: models.SyncError, PendingChanges: 3, Error: "boom"},
			contains: []string{"Sync error", "3 pending"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSyncBadge(tt.state, newSyncSpinner())
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}
