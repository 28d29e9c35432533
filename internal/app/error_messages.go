// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants: the protocol
// literals both binaries agree on and the notice texts shown to the user.
//
// Every failure class has exactly one notice so a user can tell a bad key
// from a missing session or a closed connection.
package app

// Protocol literals.
const (
	// StatusConnected is the exact status text that marks a live upstream.
	StatusConnected = "connected"
	// StatusDisconnected is sent by the relay when the upstream closes.
	StatusDisconnected = "disconnected"
	// StatusSendFailed is sent by the relay when an upstream write fails.
	StatusSendFailed = "send failed"

	// IdentityGreeting is the first encrypted message of every session.
	IdentityGreeting = "Infernity"
	// SetNameCommand prefixes the optional display name.
	SetNameCommand = "/setName "
	// SystemPrefix marks decrypted text that the chat server itself sent.
	SystemPrefix = "[SYSTEM]"
)

// Relay error texts.
const (
	MsgMissingPort      = "missing port"
	MsgTCPConnectFailed = "tcp connect failed"
	MsgInvalidFrameData = "invalid frame data"
)

// Client notices.
const (
	MsgKeyRequired      = "AES key is required"
	MsgInvalidKey       = "Invalid AES key"
	MsgNotConnected     = "Not connected"
	MsgNotReady         = "Not connected yet"
	MsgSendFailed       = "Send failed"
	MsgBadFrameData     = "Bad frame data"
	MsgDecryptFailed    = "Decrypt failed"
	MsgEncryptFailed    = "Encrypt failed"
	MsgConnectionClosed = "Connection closed"
	MsgConnectFailed    = "Connection to relay failed"
	MsgHostInvalid      = "Invalid host"
	MsgPortInvalid      = "Port must be a number between 1 and 65535"
	MsgNameInvalid      = "Name must be a single line"
	MsgInvalidForm      = "Invalid connection settings"
	MsgHistoryFailed    = "Input history unavailable"
	MsgClipboardFailed  = "Clipboard unavailable"
	MsgCopied           = "Last message copied"
	MsgNothingToCopy    = "Nothing to copy"
)

// Local composer commands. They are handled by the client and never sent.
const (
	CmdHelp  = "/help"
	CmdClear = "/clear"
)

// HelpLines is printed for [CmdHelp].
var HelpLines = []string{
	"Commands:",
	"  /help   show this list",
	"  /clear  clear the message list",
	"  /setName <name>  change your display name",
	"Keys: enter send, up/down history, ctrl+y copy last message, ctrl+d disconnect, ctrl+c quit",
}

// Client status labels.
const (
	LabelConnecting   = "Connecting..."
	LabelDisconnected = "Disconnected"
)
