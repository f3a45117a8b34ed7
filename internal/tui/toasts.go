package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	toastBuffer   = 16
	toastLifetime = 4 * time.Second
)

// Toasts is the Notifier handed to the client services. Notifications are
// queued until the dashboard picks them up; when nobody reads, new ones are
// dropped instead of blocking the sync engine.
type Toasts struct {
	ch chan models.Notification
}

func NewToasts() *Toasts {
	return &Toasts{ch: make(chan models.Notification, toastBuffer)}
}

func (t *Toasts) Notify(n models.Notification) {
	select {
	case t.ch <- n:
	default:
	}
}

func (t *Toasts) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case n := <-t.ch:
			return toastMsg(n)
		case <-ctx.Done():
			return nil
		}
	}
}

func waitForState(ctx context.Context, states <-chan models.SyncState) tea.Cmd {
	return func() tea.Msg {
		select {
		case st, ok := <-states:
			if !ok {
				return nil
			}
			return stateMsg(st)
		case <-ctx.Done():
			return nil
		}
	}
}

func clearToastAfter(seq int) tea.Cmd {
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })
}

func renderToast(n *models.Notification) string {
	if n == nil || n.Message == "" {
		return ""
	}
	switch n.Kind {
	case models.NotifySuccess:
		return toastSuccessStyle.Render("✓ " + n.Message)
	case models.NotifyError:
		return toastErrorStyle.Render("✗ " + n.Message)
	default:
		return toastInfoStyle.Render("ℹ " + n.Message)
	}
}
