package config

import (
	"fmt"
	"time"
)

// ClientRelay holds the client's view of the relay.
type ClientRelay struct {
	// URL is the websocket endpoint.
	URL string
	// HTTPAddress is the base URL for plain HTTP calls to the relay.
	HTTPAddress string
	// DialTimeout bounds the websocket handshake.
	DialTimeout time.Duration
}

// ClientStorage contains local history settings.
type ClientStorage struct {
	HistoryDSN   string
	HistoryLimit int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Relay    ClientRelay
	Defaults Defaults
	Storage  ClientStorage
	// GenerateKey asks the client to print a random key and exit.
	GenerateKey bool
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Relay: ClientRelay{
			URL:         cfg.Relay.URL,
			HTTPAddress: cfg.Relay.HTTPAddress,
			DialTimeout: cfg.Relay.DialTimeout,
		},
		Defaults: cfg.Defaults,
		Storage: ClientStorage{
			HistoryDSN:   cfg.Storage.History.DSN,
			HistoryLimit: cfg.Storage.History.Limit,
		},
		GenerateKey: cfg.App.GenerateKey,
	}
}
