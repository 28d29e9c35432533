package models

// ConnectRequest is what the connect form submits.
type ConnectRequest struct {
	Host string
	Port string
	// Key is raw key material: base64, hex or a passphrase.
	Key string
	// Name is optional; when set, "/setName <name>" follows the handshake.
	Name string
}
