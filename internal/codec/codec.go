// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
)

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// DecodeBase64 decodes standard padded base64. The input must consist only of
// the base64 alphabet and '=' and its length must be a multiple of four.
// An empty string decodes to an empty slice.
func DecodeBase64(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	if len(s)%4 != 0 || !base64Pattern.MatchString(s) {
		return nil, ErrInvalidBase64
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return b, nil
}

// DecodeHex decodes an even-length string of hex digits (either case).
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrInvalidHex
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// EncodeBase64 returns the standard padded base64 form of b.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
