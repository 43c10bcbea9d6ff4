// Package signing serves SignMessage and VerifyMessage requests.
//
// # Signing
//
// The private key arrives as Base58 and may be either a 32-byte seed or the
// 64-byte seed ‖ public key export. Only the seed is used; the returned public
// key is always recomputed from it. Decoded secret bytes are wiped once the
// signature has been produced.
//
// # Verification
//
// A well-formed signature that does not match yields IsValid=false and no
// error. Only structurally broken input is an error: an unparsable public key
// (KindInvalidKey), undecodable Base64 (KindEncoding) or a signature that is
// not 64 bytes (KindVerificationFailed).
package signing
