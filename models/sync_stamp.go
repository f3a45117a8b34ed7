// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// SyncMark tags the synchronisation state of a single local record.
type SyncMark int

const (
	// MarkLocal is a record created on this device that never reached the
	// remote store.
	MarkLocal SyncMark = iota
	// MarkPendingPush is a record that was synced once and has been edited
	// locally since.
	MarkPendingPush
	// MarkSynced is a record whose current business fields are reflected
	// remotely.
	MarkSynced
)

func (m SyncMark) String() string {
	switch m {
	case MarkLocal:
		return "local"
	case MarkPendingPush:
		return "pending_push"
	case MarkSynced:
		return "synced"
	default:
		return fmt.Sprintf("SyncMark(%d)", int(m))
	}
}

// SyncStamp is the tagged sync state of a record: Local | PendingPush | Synced(at).
//
// It is persisted as the optional "synced_at" ISO-8601 field of the record.
// Only the Synced variant writes a value, so an absent "synced_at" always
// means the record carries changes not yet pushed. PendingPush collapses to
// Local once persisted; both are pending.
type SyncStamp struct {
	mark SyncMark
	at   time.Time
}

// Local returns the stamp of a record that was never pushed.
func Local() SyncStamp { return SyncStamp{mark: MarkLocal} }

// PendingPush returns the stamp of a synced record edited afterwards.
func PendingPush() SyncStamp { return SyncStamp{mark: MarkPendingPush} }

// Synced returns the stamp of a record pushed at the given moment.
func Synced(at time.Time) SyncStamp { return SyncStamp{mark: MarkSynced, at: at.UTC()} }

// Mark returns the variant tag.
func (s SyncStamp) Mark() SyncMark { return s.mark }

// IsPending reports whether the record has local changes not reflected remotely.
func (s SyncStamp) IsPending() bool { return s.mark != MarkSynced }

// SyncedAt returns the push time for the Synced variant.
func (s SyncStamp) SyncedAt() (time.Time, bool) {
	if s.mark != MarkSynced {
		return time.Time{}, false
	}
	return s.at, true
}

// Touched returns the stamp a record receives after a local business edit.
func (s SyncStamp) Touched() SyncStamp {
	if s.mark == MarkSynced {
		return PendingPush()
	}
	return s
}

// IsZero makes "synced_at,omitzero" drop the field for pending records.
func (s SyncStamp) IsZero() bool { return s.IsPending() }

func (s SyncStamp) MarshalJSON() ([]byte, error) {
	if s.IsPending() {
		return []byte("null"), nil
	}
	return json.Marshal(s.at.Format(time.RFC3339Nano))
}

func (s *SyncStamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = Local()
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode synced_at: %w", err)
	}
	if raw == "" {
		*s = Local()
		return nil
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("parse synced_at %q: %w", raw, err)
	}
	*s = Synced(at)
	return nil
}

// StampFromRemote converts a nullable remote synced_at column into a stamp.
func StampFromRemote(syncedAt *time.Time) SyncStamp {
	if syncedAt == nil || syncedAt.IsZero() {
		return Local()
	}
	return Synced(*syncedAt)
}
