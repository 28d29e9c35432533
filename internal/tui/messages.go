package tui

import (
	"github.com/MKhiriev/go-relay-chat/models"
)

// Page names known to [RootModel].
const (
	pageConnect = "connect"
	pageChat    = "chat"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type noticeMsg struct {
	notice models.Notice
}

type statusMsg struct {
	status models.Status
}

type connectResultMsg struct {
	err error
}

type disconnectedMsg struct{}

// sentMsg reports that one queued line left the chat service.
type sentMsg struct {
	line string
	err  error
}

type historyLoadedMsg struct {
	lines []string
	err   error
}

type relayVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

// errorMsg opens the error overlay.
type errorMsg struct {
	text string
}
