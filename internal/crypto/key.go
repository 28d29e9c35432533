// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-relay-chat/internal/codec"
)

// KeySource tells which interpretation of the key material produced the key.
type KeySource string

const (
	KeySourceBase64     KeySource = "base64"
	KeySourceHex        KeySource = "hex"
	KeySourcePassphrase KeySource = "passphrase"
)

// SymmetricKey is an AES key of 16, 24 or 32 bytes.
type SymmetricKey []byte

// Len returns the key length in bytes.
func (k SymmetricKey) Len() int {
	return len(k)
}

// Zero overwrites the key bytes in place.
func (k SymmetricKey) Zero() {
	if len(k) == 0 {
		return
	}
	zero := make([]byte, len(k))
	subtle.ConstantTimeCopy(1, k, zero)
}

// String never prints key bytes.
func (k SymmetricKey) String() string {
	return fmt.Sprintf("SymmetricKey(%d bytes, redacted)", len(k))
}

func isAESKeySize(n int) bool {
	return n == 16 || n == 24 || n == 32
}

// DeriveKey turns user supplied key material into an AES key.
//
// The trimmed material is tried in order as standard base64 and as hex; the
// first interpretation that yields 16, 24 or 32 bytes wins. Otherwise the key
// is SHA-256 of the trimmed material. The same material always yields the
// same key.
func DeriveKey(material string) (SymmetricKey, error) {
	key, _, err := DeriveKeyWithSource(material)
	return key, err
}

// DeriveKeyWithSource is DeriveKey that also reports which branch won.
func DeriveKeyWithSource(material string) (SymmetricKey, KeySource, error) {
	trimmed := strings.TrimSpace(material)
	if trimmed == "" {
		return nil, "", ErrEmptyKeyMaterial
	}

	var (
		raw    []byte
		source KeySource
	)

	if b, err := codec.DecodeBase64(trimmed); err == nil && isAESKeySize(len(b)) {
		raw, source = b, KeySourceBase64
	} else if b, err := codec.DecodeHex(trimmed); err == nil && isAESKeySize(len(b)) {
		raw, source = b, KeySourceHex
	} else {
		sum := sha256.Sum256([]byte(trimmed))
		raw, source = sum[:], KeySourcePassphrase
	}

	if _, err := aes.NewCipher(raw); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}

	return SymmetricKey(raw), source, nil
}

// NewRandomKey returns n random bytes as a key together with their base64
// form, which DeriveKey maps back to the same key.
func NewRandomKey(n int) (SymmetricKey, string, error) {
	return newRandomKey(rand.Reader, n)
}

func newRandomKey(r io.Reader, n int) (SymmetricKey, string, error) {
	if !isAESKeySize(n) {
		return nil, "", ErrInvalidKeySize
	}

	key := make(SymmetricKey, n)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, "", fmt.Errorf("read random key: %w", err)
	}
	return key, codec.EncodeBase64(key), nil
}
