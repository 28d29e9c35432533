// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.History.Limit < 0 {
		return ErrInvalidStorageConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !strings.HasPrefix(cfg.Relay.URL, "ws://") && !strings.HasPrefix(cfg.Relay.URL, "wss://") {
		return ErrInvalidRelayConfigs
	}

	if cfg.Relay.DialTimeout <= 0 {
		return ErrInvalidRelayConfigs
	}

	if cfg.Storage.HistoryDSN == "" || cfg.Storage.HistoryLimit <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *RelayConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Relay.ConnectTimeout <= 0 || cfg.Relay.DefaultHost == "" {
		return ErrInvalidRelayConfigs
	}

	return nil
}
