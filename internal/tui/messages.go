package tui

import (
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, if set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult ends the sign-in flow when Err is nil.
type LoginResult struct {
	Err      error
	Username string
	Cloud    bool
}

// RegisterSuccessNotice is shown by the menu after a local registration.
type RegisterSuccessNotice struct {
	Username string
}

type stateMsg models.SyncState

type toastMsg models.Notification

type clearToastMsg struct {
	seq int
}

type syncDoneMsg models.SyncResult

type dashboardLoadedMsg struct {
	stats    models.DashboardStats
	lowStock []models.Product
	rows     []recordRow
	pending  int
}

// actionDoneMsg reports a finished user action (save, delete, export, mode
// switch). reload asks the dashboard to re-read the datasets.
type actionDoneMsg struct {
	status string
	err    error
	reload bool
}

type modeSwitchedMsg struct {
	err    error
	logout bool
}

type formSavedMsg struct {
	label string
	err   error
}
