package service

import (
	"context"
	"net"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BridgeService couples one client websocket with one upstream TCP
// connection.
type BridgeService interface {
	// Serve waits for the connect envelope, dials the upstream and pumps
	// frames both ways until either side closes. It closes conn before
	// returning.
	Serve(ctx context.Context, conn adapter.RelayConn) error
}

// UpstreamDialer opens the TCP connection to the chat server.
// *net.Dialer satisfies it.
type UpstreamDialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}
