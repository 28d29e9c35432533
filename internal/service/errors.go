package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrNotConnected is returned by Send when no session is live.
	ErrNotConnected = errors.New("not connected")
	// ErrHandshakePending is returned by Send while the chat server has
	// not been greeted yet.
	ErrHandshakePending = errors.New("handshake pending")
	// ErrUnknownEnvelope marks an envelope type the client does not handle.
	// It is logged and never shown to the user.
	ErrUnknownEnvelope = errors.New("unknown envelope type")

	ErrConnectTimeout    = errors.New("no connect envelope before timeout")
	ErrNoConnectEnvelope = errors.New("first envelope is not a connect request")
	ErrMissingPort       = errors.New("connect request has no port")
	ErrUpstreamDial      = errors.New("upstream dial failed")
)
