package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"solkit/internal/domain"
)

// GenerateKeypair draws a fresh 32-byte seed from entropy and derives its
// public key. A nil entropy source means crypto/rand.Reader.
func GenerateKeypair(entropy io.Reader) (domain.KeyMaterial, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	var seed domain.Seed
	if _, err := io.ReadFull(entropy, seed[:]); err != nil {
		return domain.KeyMaterial{}, fmt.Errorf("generating seed: %w", err)
	}
	km := fromSeed(seed[:])
	Wipe(seed[:])
	return km, nil
}

// DeriveFromSecret normalizes caller-supplied secret bytes into KeyMaterial.
//
// A 32-byte input is the seed. A 64-byte input is seed ‖ public key; only the
// seed half is used and the public key is recomputed, so a corrupted tail can
// never produce inconsistent key material. Any other length is KindInvalidKey.
func DeriveFromSecret(secret []byte) (domain.KeyMaterial, error) {
	switch len(secret) {
	case domain.SeedSize:
	case domain.ExpandedSecretSize:
		secret = secret[:domain.SeedSize]
	default:
		return domain.KeyMaterial{}, domain.Errorf(domain.KindInvalidKey,
			"secret key must be %d or %d bytes, got %d",
			domain.SeedSize, domain.ExpandedSecretSize, len(secret))
	}
	return fromSeed(secret), nil
}

// Sign returns the Ed25519 signature of message under key. The result is
// deterministic for a given (message, key); empty messages are allowed.
func Sign(message []byte, key domain.KeyMaterial) domain.Signature {
	priv := ed25519.NewKeyFromSeed(key.Seed[:])
	defer Wipe(priv)

	var sig domain.Signature
	copy(sig[:], ed25519.Sign(priv, message))
	return sig
}

// Verify reports whether signature is a valid Ed25519 signature of message
// under pub. It errors only when signature is not 64 bytes long.
func Verify(message, signature []byte, pub domain.PublicKey) (bool, error) {
	if l := len(signature); l != domain.SignatureSize {
		return false, domain.Errorf(domain.KindVerificationFailed,
			"signature must be %d bytes, got %d", domain.SignatureSize, l)
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, signature), nil
}

func fromSeed(seed []byte) domain.KeyMaterial {
	priv := ed25519.NewKeyFromSeed(seed)
	defer Wipe(priv)

	var km domain.KeyMaterial
	copy(km.Seed[:], priv[:ed25519.SeedSize])
	copy(km.Public[:], priv[ed25519.SeedSize:])
	return km
}
