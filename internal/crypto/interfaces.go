package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/frame_cipher_mock.go -package=mock

// FrameCipher seals chat messages into self-contained frames and opens them
// again. A frame is nonce (12 bytes) || ciphertext || GCM tag (16 bytes).
//
// Implementations hold no per-message state and are safe for concurrent use.
type FrameCipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce.
	// It fails only if the key is unusable or the random source fails.
	Encrypt(key SymmetricKey, plaintext string) ([]byte, error)

	// Decrypt opens a frame produced by Encrypt. It returns ErrFrameTooShort,
	// ErrDecrypt or ErrInvalidUTF8 and never returns partial plaintext.
	Decrypt(key SymmetricKey, frame []byte) (string, error)
}
