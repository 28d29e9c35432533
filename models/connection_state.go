package models

// ConnectionState is the client session lifecycle.
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnecting:
		return "Connecting..."
	case StateConnected:
		return "Connected"
	default:
		return "Disconnected"
	}
}

// Status is the indicator shown next to the connect form.
type Status struct {
	Text string
	OK   bool
}
