package config

import (
	"fmt"
	"time"
)

// RelayConfig is the relay's view of [StructuredConfig].
type RelayConfig struct {
	App    App
	Server Server
	Relay  RelayOptions
}

// RelayOptions controls per-websocket behaviour of the relay.
type RelayOptions struct {
	ConnectTimeout time.Duration
	DefaultHost    string
	WebDir         string
	AllowedOrigins []string
}

// GetRelayConfig builds and validates the relay configuration.
func GetRelayConfig() (*RelayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	relayCfg := newRelayConfig(cfg)
	return relayCfg, relayCfg.validate()
}

func newRelayConfig(cfg *StructuredConfig) *RelayConfig {
	return &RelayConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Relay: RelayOptions{
			ConnectTimeout: cfg.Relay.ConnectTimeout,
			DefaultHost:    cfg.Relay.DefaultHost,
			WebDir:         cfg.Relay.WebDir,
			AllowedOrigins: cfg.Relay.AllowedOrigins,
		},
	}
}
