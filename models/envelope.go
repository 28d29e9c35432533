// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnvelopeType discriminates the JSON messages exchanged with the relay.
type EnvelopeType string

const (
	// EnvelopeConnect is sent once per connection attempt, in the clear.
	EnvelopeConnect EnvelopeType = "connect"
	// EnvelopeStatus carries a human-readable relay state.
	EnvelopeStatus EnvelopeType = "status"
	// EnvelopeError is fatal for the current connection.
	EnvelopeError EnvelopeType = "error"
	// EnvelopeFrame carries base64 of an encrypted frame, in both directions.
	EnvelopeFrame EnvelopeType = "frame"
)

// Envelope is the wire message between client and relay. Only the fields of
// the given Type are set; the rest are omitted from JSON.
type Envelope struct {
	Type EnvelopeType `json:"type"`
	Host string       `json:"host,omitempty"`
	Port string       `json:"port,omitempty"`
	Text string       `json:"text,omitempty"`
	Data string       `json:"data,omitempty"`
}

// NewConnectEnvelope asks the relay to dial host:port.
func NewConnectEnvelope(host, port string) Envelope {
	return Envelope{Type: EnvelopeConnect, Host: host, Port: port}
}

// NewStatusEnvelope reports relay state to the client.
func NewStatusEnvelope(text string) Envelope {
	return Envelope{Type: EnvelopeStatus, Text: text}
}

// NewErrorEnvelope reports a fatal relay error to the client.
func NewErrorEnvelope(text string) Envelope {
	return Envelope{Type: EnvelopeError, Text: text}
}

// NewFrameEnvelope wraps base64 frame data.
func NewFrameEnvelope(data string) Envelope {
	return Envelope{Type: EnvelopeFrame, Data: data}
}
