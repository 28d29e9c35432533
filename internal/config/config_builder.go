package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// Built-in fallbacks applied after every other source.
const (
	DefaultRelayURL        = "ws://127.0.0.1:8080/ws"
	DefaultRelayHTTP       = "http://127.0.0.1:8080"
	DefaultServerAddress   = ":8080"
	DefaultRelayTargetHost = "127.0.0.1"
	DefaultWebDir          = "web"
	DefaultHistoryLimit    = 500
	DefaultConnectTimeout  = 30 * time.Second
	DefaultDialTimeout     = 10 * time.Second
	DefaultRequestTimeout  = 15 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// DefaultHistoryDSN places the history database in the system temp dir.
func DefaultHistoryDSN() string {
	return filepath.Join(os.TempDir(), "chatclient_history.db")
}

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Relay: Relay{
			URL:            DefaultRelayURL,
			HTTPAddress:    DefaultRelayHTTP,
			DialTimeout:    DefaultDialTimeout,
			ConnectTimeout: DefaultConnectTimeout,
			DefaultHost:    DefaultRelayTargetHost,
			WebDir:         DefaultWebDir,
		},
		Defaults: Defaults{
			Host: DefaultRelayTargetHost,
		},
		Storage: Storage{
			History: History{
				DSN:   DefaultHistoryDSN(),
				Limit: DefaultHistoryLimit,
			},
		},
	}
}
