package adapter

import "errors"

var (
	ErrTransportClosed   = errors.New("transport closed")
	ErrMalformedEnvelope = errors.New("malformed envelope")
	ErrDial              = errors.New("relay dial failed")

	// ErrNoVersionEndpoint means the address answers HTTP but serves no
	// version route.
	ErrNoVersionEndpoint = errors.New("relay has no version endpoint")
	ErrRelayFailure      = errors.New("relay failed to answer")
	ErrRelayUnreachable  = errors.New("relay unreachable behind proxy")
	ErrUnexpectedStatus  = errors.New("unexpected relay status")
)
