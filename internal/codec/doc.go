// Package codec converts between text and bytes for the wire envelope and
// frames payloads on the relay's upstream TCP stream.
//
// Text decoding is strict: DecodeBase64 rejects anything that is not a
// padded standard base64 string before attempting to decode, and DecodeHex
// accepts only even-length strings of hex digits. Both report failure with a
// sentinel error instead of partially decoded output.
package codec
