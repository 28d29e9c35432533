package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/internal/client"
	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/crypto"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/service"
	"github.com/MKhiriev/go-relay-chat/internal/store"
	"github.com/MKhiriev/go-relay-chat/internal/tui"
	"github.com/MKhiriev/go-relay-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const generatedKeySize = 32

func main() {
	log := logger.NewClientLogger("chat-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.GenerateKey {
		if err = printNewKey(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("generate key")
		}
		return
	}

	printBuildInfo()

	var history store.HistoryRepository
	var closers []io.Closer
	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		// chat still works, only input history is lost
		log.Warn().Err(err).Msg("history storage unavailable")
	} else {
		history = storages.HistoryRepository
		closers = append(closers, storages)
	}

	relayInfo, err := adapter.NewRelayInfoAdapter(cfg.Relay, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create relay info adapter")
	}

	notifier := tui.NewNotifier()
	services := service.NewClientServices(
		*cfg,
		adapter.NewWebSocketTransport(cfg.Relay, log),
		relayInfo,
		history,
		notifier,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)

	ui, err := tui.New(services, notifier, cfg.Defaults, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log, closers...)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printNewKey(w io.Writer) error {
	key, encoded, err := crypto.NewRandomKey(generatedKeySize)
	if err != nil {
		return err
	}
	key.Zero()

	_, err = fmt.Fprintln(w, encoded)
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
