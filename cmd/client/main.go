package main

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/internal/client"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		// the file logger needs the config, so this one goes to stdout
		logger.NewLogger("ledger-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("ledger-client", cfg.App.LogFile)
	log.Debug().Str("local_backend", cfg.Storage.Local.Backend).Str("cloud_backend", cfg.Cloud.Backend).Msg("received configs")

	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}

	app, err := client.NewApp(context.Background(), cfg, tui.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
