package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is shown in the status screen footer.
	Version string
	// LogFile is the rotating log file of the client.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RemoteURL is the base URL of the remote store.
	RemoteURL string
	// APIKey is the public project key of the remote store.
	APIKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientLocal contains local record store settings for the client.
type ClientLocal struct {
	// DSN is the sqlite file or JSON snapshot path.
	DSN string
	// Backend is "sqlite" or "file".
	Backend string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Local holds the offline record store settings.
	Local ClientLocal
	// RemoteDSN is the Postgres DSN used when Cloud.Backend is "postgres".
	RemoteDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background full sync runs.
	SyncInterval time.Duration
}

// ClientCloud selects the remote gateway.
type ClientCloud struct {
	// Backend is "rest" or "postgres".
	Backend string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote store address and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Cloud selects the remote gateway implementation.
	Cloud ClientCloud
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			RemoteURL:      cfg.Adapter.RemoteURL,
			APIKey:         cfg.Adapter.APIKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Local: ClientLocal{
				DSN:     cfg.Storage.Local.DSN,
				Backend: cfg.Storage.Local.Backend,
			},
			RemoteDSN: cfg.Storage.DB.DSN,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Cloud:   ClientCloud{Backend: cfg.Cloud.Backend},
	}

	if clientCfg.App.LogFile == "" {
		clientCfg.App.LogFile = DefaultLogFile
	}
	if clientCfg.Storage.Local.Backend == "" {
		clientCfg.Storage.Local.Backend = LocalBackendSQLite
	}
	if clientCfg.Cloud.Backend == "" {
		clientCfg.Cloud.Backend = CloudBackendREST
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}

	return clientCfg
}
