// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transports the chat client and the relay use
// to talk to each other.
//
// [RelayTransport] opens a websocket to the relay and yields a [RelayConn]
// that exchanges JSON [models.Envelope] values. The relay wraps its accepted
// websockets in the same [RelayConn] type. [RelayInfoAdapter] is a small
// REST client for the relay's plain HTTP endpoints.
//
// Error values defined in errors.go let callers use [errors.Is] for
// transport-agnostic handling: [ErrTransportClosed] when the socket is gone,
// [ErrMalformedEnvelope] for a single bad message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-relay-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayTransport opens connections to the relay.
type RelayTransport interface {
	// Open dials the relay. The returned connection is ready to Send.
	Open(ctx context.Context) (RelayConn, error)
}

// RelayConn is one websocket carrying envelopes.
//
// Send may be called from several goroutines. Receive must be called from a
// single goroutine.
type RelayConn interface {
	// Send writes one envelope as a JSON text message.
	Send(env models.Envelope) error

	// Receive blocks for the next envelope. It returns an error wrapping
	// [ErrMalformedEnvelope] for a message that is not a JSON envelope (the
	// connection stays usable) and [ErrTransportClosed] once the socket is
	// gone.
	Receive() (models.Envelope, error)

	// Close closes the socket. It is safe to call more than once.
	Close() error
}

// RelayInfoAdapter reads relay metadata over plain HTTP.
type RelayInfoAdapter interface {
	// Version returns the relay's /api/version/ body.
	Version(ctx context.Context) (string, error)
}
