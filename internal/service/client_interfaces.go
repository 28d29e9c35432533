package service

import (
	"context"

	"github.com/MKhiriev/go-relay-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Notifier receives everything the chat session wants to show the user.
// Implementations must not call back into the service.
type Notifier interface {
	// Notify appends one line to the message list.
	Notify(notice models.Notice)
	// SetStatus updates the connection indicator.
	SetStatus(status models.Status)
}

// ClientChatService owns the single live chat session of the client.
//
// A session is the pair of a derived key and a relay connection. Connect
// replaces it wholesale; envelopes that arrive for a replaced session are
// dropped.
type ClientChatService interface {
	// Connect validates req, derives the key, closes any previous session,
	// opens the relay connection and sends the connect envelope. Failures
	// are reported to the Notifier and returned.
	Connect(ctx context.Context, req models.ConnectRequest) error

	// HandleEnvelope dispatches one envelope received on the session
	// identified by sessionID. The receive loop calls it in arrival order.
	HandleEnvelope(ctx context.Context, sessionID string, env models.Envelope)

	// Send encrypts text and sends it as a frame. Blank text is ignored.
	// Returns ErrNotConnected when there is no session.
	Send(ctx context.Context, text string) error

	// Disconnect closes the session and zeroes its key. It is a no-op
	// apart from the status update when nothing is connected.
	Disconnect()

	// State reports the session lifecycle.
	State() models.ConnectionState
}

// ClientHistoryService keeps the lines the user sent.
type ClientHistoryService interface {
	// Record stores line unless it repeats the previous one, then trims
	// the history to its limit.
	Record(ctx context.Context, line string) error
	// Load returns the kept lines, oldest first.
	Load(ctx context.Context) ([]string, error)
}

// ClientAppInfoService reports what the info overlay shows.
type ClientAppInfoService interface {
	BuildInfo() models.AppBuildInfo
	RelayVersion(ctx context.Context) (string, error)
}
