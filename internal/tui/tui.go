// Package tui implements the terminal interface of the ledger client: the
// sign-in flow and the dashboard with the sync status badge.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

// BuildInfo is shown in the version window of the menu.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type TUI struct {
	services  *service.ClientServices
	toasts    *Toasts
	buildInfo BuildInfo
	logger    *logger.Logger
}

// New creates the interface. toasts must be the Notifier the services were
// built with, so sync progress reaches the dashboard.
func New(services *service.ClientServices, toasts *Toasts, buildInfo BuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	if toasts == nil {
		toasts = NewToasts()
	}
	return &TUI{services: services, toasts: toasts, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu until a local or cloud account is signed in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	auth := t.services.AuthService
	pages := map[string]tea.Model{
		pageMenu:          NewMenuModel(),
		pageLoginLocal:    NewLoginModel(ctx, auth, false),
		pageLoginCloud:    NewLoginModel(ctx, auth, true),
		pageRegisterLocal: NewRegisterModel(ctx, auth, false),
		pageRegisterCloud: NewRegisterModel(ctx, auth, true),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Info().Bool("cloud", auth.IsCloudMode()).Str("role", string(auth.CurrentRole())).Msg("signed in")
	return nil
}

// MainLoop runs the dashboard. logout is true when the user asked to sign
// out or switched to a mode without a session.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	states, cancel := t.services.SyncService.Subscribe()
	defer cancel()

	model := newMainLoopModel(ctx, t.services, t.toasts, states)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
