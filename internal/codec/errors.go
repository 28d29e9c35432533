package codec

import "errors"

var (
	ErrInvalidBase64 = errors.New("invalid base64 text")
	ErrInvalidHex    = errors.New("invalid hex text")
	ErrFrameTooLarge = errors.New("frame too large")
)
