package config

import (
	"fmt"
	"time"
)

// ServerAuth holds token settings of the remote store server.
type ServerAuth struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerStorage holds the Postgres DSN of the remote store.
type ServerStorage struct {
	DSN string
}

// ServerHTTP holds the listen address and request timeout.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerConfig is the remote store server view of [StructuredConfig].
type ServerConfig struct {
	Auth    ServerAuth
	Storage ServerStorage
	Server  ServerHTTP
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		Auth: ServerAuth{
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenDuration: cfg.Auth.TokenDuration,
		},
		Storage: ServerStorage{DSN: cfg.Storage.DB.DSN},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	if serverCfg.Auth.TokenIssuer == "" {
		serverCfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.Auth.TokenDuration == 0 {
		serverCfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	return serverCfg
}
