// Package codec converts between raw bytes and the two text encodings used on
// solkit's API surface.
//
//   - Base58 (Bitcoin alphabet, no padding) for keys and secrets
//   - Base64 (standard alphabet, padded) for signatures and instruction payloads
//
// All functions are pure. Decode failures are reported as domain errors of
// KindEncoding; public-key parsing failures as KindInvalidKey. Errors from the
// underlying encoders are not exposed.
package codec
