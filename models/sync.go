// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the connectivity/progress badge shown by the UI.
type SyncStatus string

const (
	SyncOffline SyncStatus = "offline"
	SyncSyncing SyncStatus = "syncing"
	SyncOnline  SyncStatus = "online"
	SyncError   SyncStatus = "error"
)

// SyncState is the observable state of the sync engine. Only the sync
// orchestrator mutates it; everybody else reads copies.
type SyncState struct {
	Status         SyncStatus `json:"status"`
	LastSynced     *time.Time `json:"lastSynced,omitempty"`
	PendingChanges int        `json:"pendingChanges"`
	Error          string     `json:"error,omitempty"`
}

// SyncContext is the session snapshot a sync cycle runs with. It is derived
// again on every trigger and never cached across cycles.
type SyncContext struct {
	OwnerID   string
	CloudMode bool
}

// CanSync reports whether remote calls are allowed for this context.
func (c SyncContext) CanSync() bool {
	return c.CloudMode && c.OwnerID != ""
}

// SyncResult is the outcome of an explicitly triggered sync.
type SyncResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SyncPhase names a half of the sync cycle.
type SyncPhase string

const (
	PhasePull SyncPhase = "pull"
	PhasePush SyncPhase = "push"
)

// DatasetResult reports what happened to one dataset in one phase.
type DatasetResult struct {
	Dataset string    `json:"dataset"`
	Phase   SyncPhase `json:"phase"`
	Records int       `json:"records"`
	Deleted int       `json:"deleted,omitempty"`
	Err     error     `json:"-"`
}

// Failed reports whether the dataset phase ended with an error.
func (r DatasetResult) Failed() bool { return r.Err != nil }

// SyncReport collects the dataset results of one cycle.
type SyncReport struct {
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt time.Time       `json:"finishedAt"`
	Results    []DatasetResult `json:"results"`
}

// Failures returns only the failed dataset results.
func (r SyncReport) Failures() []DatasetResult {
	var failed []DatasetResult
	for _, res := range r.Results {
		if res.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}
