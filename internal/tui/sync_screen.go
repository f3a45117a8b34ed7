package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

func newSyncSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

// renderSyncBadge draws the connectivity badge of the dashboard header.
func renderSyncBadge(st models.SyncState, spin spinner.Model) string {
	var badge string
	switch st.Status {
	case models.SyncSyncing:
		badge = badgeSyncingStyle.Render(spin.View() + " Syncing")
	case models.SyncOnline:
		label := "● Online"
		if st.LastSynced != nil {
			label += " · synced " + st.LastSynced.Local().Format("15:04")
		}
		badge = badgeOnlineStyle.Render(label)
	case models.SyncError:
		badge = badgeErrorStyle.Render("● Sync error")
	default:
		badge = badgeOfflineStyle.Render("● Offline")
	}

	if st.PendingChanges > 0 {
		badge += " " + pendingStyle.Render(fmt.Sprintf("%d pending", st.PendingChanges))
	}
	return badge
}
