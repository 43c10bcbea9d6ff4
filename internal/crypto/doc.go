// Package crypto exposes the Ed25519 primitives used by solkit.
//
// Contents
//
//   - Keypair generation from an entropy source (GenerateKeypair)
//   - Key-material normalization from a 32-byte seed or a 64-byte
//     seed ‖ public key export (DeriveFromSecret)
//   - Deterministic signing and signature verification (Sign, Verify)
//   - Best-effort memory wiping for seed buffers (Wipe)
//   - Short public-key fingerprints for logging (Fingerprint)
//
// # Notes
//
// Every function is pure apart from reading entropy in GenerateKeypair, so
// all of them are safe for concurrent use. The default entropy source is
// crypto/rand.Reader, which is itself safe for concurrent use; tests pass a
// deterministic reader instead.
//
// Verify distinguishes malformed input from a failed check: a signature that
// is not 64 bytes is an error of KindVerificationFailed, while a well-formed
// signature that does not match returns false with a nil error.
package crypto
