// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	// NonceSize is the GCM nonce length prepended to every frame.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
)

// gcmFrameCipher is the private implementation of [FrameCipher].
type gcmFrameCipher struct {
	// random is the nonce source. crypto/rand.Reader outside of tests.
	random io.Reader
}

// NewFrameCipher constructs a [FrameCipher] backed by AES-GCM with nonces
// drawn from crypto/rand.
func NewFrameCipher() FrameCipher {
	return &gcmFrameCipher{random: rand.Reader}
}

// NewFrameCipherWithRand is NewFrameCipher with an explicit nonce source.
func NewFrameCipherWithRand(r io.Reader) FrameCipher {
	return &gcmFrameCipher{random: r}
}

func newGCM(key SymmetricKey) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Encrypt implements [FrameCipher]. The output is nonce || ciphertext || tag,
// so its length is always len(plaintext) + NonceSize + TagSize.
func (c *gcmFrameCipher) Encrypt(key SymmetricKey, plaintext string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, frame); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(frame, frame[:NonceSize], []byte(plaintext), nil), nil
}

// Decrypt implements [FrameCipher].
func (c *gcmFrameCipher) Decrypt(key SymmetricKey, frame []byte) (string, error) {
	if len(frame) < NonceSize {
		return "", ErrFrameTooShort
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce, ciphertext := frame[:NonceSize], frame[NonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecrypt
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidUTF8
	}

	return string(plaintext), nil
}
