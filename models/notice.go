package models

import "time"

// NoticeKind classifies a line shown to the user.
type NoticeKind int

const (
	// NoticeSystem is a local or relay status line, rendered with "[SYSTEM]".
	NoticeSystem NoticeKind = iota
	// NoticeError is a fatal relay error, rendered with "[ERROR]".
	NoticeError
	// NoticeContent is decrypted chat text from the remote side.
	NoticeContent
	// NoticeOwn echoes a line the user just sent.
	NoticeOwn
)

// Notice is one discrete entry of the message list.
type Notice struct {
	Kind NoticeKind
	Text string
	At   time.Time
}

// String renders the notice the way the message list shows it.
func (n Notice) String() string {
	switch n.Kind {
	case NoticeSystem:
		return "[SYSTEM] " + n.Text
	case NoticeError:
		return "[ERROR] " + n.Text
	case NoticeOwn:
		return "You: " + n.Text
	default:
		return n.Text
	}
}
