// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
)

// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit")

const msgRelayUnavailable = "Relay unavailable"

func humanizeRelayError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrRelayUnreachable) {
		return msgRelayUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgRelayUnavailable
	}

	return err.Error()
}

var (
	ErrNoChatService = errors.New("tui: chat service is required")
	ErrNoNotifier    = errors.New("tui: notifier is required")
)
