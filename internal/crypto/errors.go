package crypto

import "errors"

// Key material errors.
var (
	// ErrEmptyKeyMaterial is returned when the key field is blank.
	ErrEmptyKeyMaterial = errors.New("key material is empty")
	// ErrKeyDerivation is returned when derived bytes cannot form an AES key.
	ErrKeyDerivation = errors.New("key derivation failed")
	// ErrInvalidKeySize is returned by NewRandomKey for sizes other than 16, 24 or 32.
	ErrInvalidKeySize = errors.New("invalid key size")
)

// Frame errors.
var (
	ErrFrameTooShort = errors.New("frame shorter than nonce")
	ErrDecrypt       = errors.New("frame authentication failed")
	ErrInvalidUTF8   = errors.New("plaintext is not valid utf-8")
)
