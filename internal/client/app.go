package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/tui"
	"github.com/MKhiriev/go-ledger-keeper/internal/workers"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	tui      *tui.TUI
	closers  []func() error
	logger   *logger.Logger
}

// remote is the cloud backend the client syncs with.
type remote struct {
	auth   gateway.Authenticator
	tables gateway.Tables
	close  func() error
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo tui.BuildInfo, log *logger.Logger) (*App, error) {
	localStore, err := store.NewLocalStorage(ctx, cfg.Storage.Local, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	closers := []func() error{localStore.Close}

	cloud, err := newRemote(ctx, cfg, log)
	if err != nil {
		_ = localStore.Close()
		return nil, fmt.Errorf("create cloud backend: %w", err)
	}
	if cloud.close != nil {
		closers = append(closers, cloud.close)
	}

	toasts := tui.NewToasts()
	services := service.NewClientServices(localStore, cloud.auth, cloud.tables, toasts, log)

	ui, err := tui.New(services, toasts, buildInfo, log)
	if err != nil {
		return nil, err
	}

	return &App{
		services: services,
		workers:  workers.NewClientWorkers(services, cfg.Workers.SyncInterval, log),
		tui:      ui,
		closers:  closers,
		logger:   log,
	}, nil
}

func newRemote(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (remote, error) {
	switch cfg.Cloud.Backend {
	case config.CloudBackendPostgres:
		storages, err := store.NewStorages(ctx, cfg.Storage.RemoteDSN, log)
		if err != nil {
			return remote{}, err
		}
		// tokens of a direct session never leave the process
		signKey := cfg.Adapter.APIKey
		if signKey == "" {
			signKey = uuid.NewString()
		}
		authService := service.NewAuthService(storages.UserRepository, config.ServerAuth{
			TokenSignKey:  signKey,
			TokenIssuer:   config.DefaultTokenIssuer,
			TokenDuration: config.DefaultTokenDuration,
		}, log)
		return remote{
			auth:   service.NewDirectAuthenticator(authService),
			tables: storages.Tables(),
			close:  storages.Close,
		}, nil

	default:
		restAdapter, err := adapter.NewRESTAdapter(cfg.Adapter, log)
		if err != nil {
			return remote{}, err
		}
		return remote{auth: restAdapter, tables: restAdapter.Tables()}, nil
	}
}

// Run restores the previous session, starts the background workers and
// alternates the sign-in flow and the dashboard until the user quits.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.close()

	a.services.AuthService.Restore(ctx)

	a.workers.Run(ctx)
	defer a.workers.Stop()

	for {
		if !a.services.AuthService.IsAuthenticated() {
			if err := a.tui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) || ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if !logout {
			return nil
		}
		if a.services.AuthService.IsAuthenticated() {
			if err = a.services.AuthService.Logout(ctx); err != nil {
				a.logger.Err(err).Msg("logout failed")
			}
		}
	}
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Err(err).Msg("close failed")
		}
	}
}
