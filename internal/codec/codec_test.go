package codec

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{name: "hello", input: "aGVsbG8=", want: []byte("hello")},
		{name: "empty", input: "", want: []byte{}},
		{name: "no padding", input: "aGVsbG8", wantErr: true},
		{name: "url alphabet", input: "a-_b", wantErr: true},
		{name: "whitespace", input: "aGVs bG8=", wantErr: true},
		{name: "misplaced padding", input: "a=bc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBase64)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A 32 digit hex string is also valid base64 and decodes to 24 bytes.
func TestDecodeBase64_HexDigitsAreBase64(t *testing.T) {
	b, err := DecodeBase64("00112233445566778899aabbccddeeff")
	require.NoError(t, err)
	assert.Len(t, b, 24)
}

func TestDecodeHex(t *testing.T) {
	got, err := DecodeHex("00ff10AB")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10, 0xab}, got)

	_, err = DecodeHex("abc")
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = DecodeHex("zz")
	assert.ErrorIs(t, err, ErrInvalidHex)

	got, err = DecodeHex("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBase64RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 12, 28, 1000} {
		b := make([]byte, n)
		_, err := rand.Read(b)
		require.NoError(t, err)

		got, err := DecodeBase64(EncodeBase64(b))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(b, got), "length %d", n)
	}
}
