package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"solkit/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 8 bytes (16 hex chars). It is meant
// for correlating log lines, never for identifying keys on the wire.
func Fingerprint(pub domain.PublicKey) string {
	sum := sha256.Sum256(pub[:])
	return hex.EncodeToString(sum[:8])
}
