package codec

import (
	"github.com/mr-tron/base58"

	"solkit/internal/domain"
)

// EncodeBase58 returns the Base58 encoding of b.
func EncodeBase58(b []byte) string { return base58.Encode(b) }

// DecodeBase58 decodes a non-empty Base58 string.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, domain.Errorf(domain.KindEncoding, "base58 input is empty")
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, domain.Errorf(domain.KindEncoding, "invalid base58 string")
	}
	return b, nil
}

// ParsePublicKey decodes a Base58 public key and requires exactly 32 bytes.
func ParsePublicKey(s string) (domain.PublicKey, error) {
	var pk domain.PublicKey
	if s == "" {
		return pk, domain.Errorf(domain.KindInvalidKey, "public key is empty")
	}
	b, err := base58.Decode(s)
	if err != nil {
		return pk, domain.Errorf(domain.KindInvalidKey, "public key %q is not valid base58", s)
	}
	if len(b) != domain.PublicKeySize {
		return pk, domain.Errorf(domain.KindInvalidKey,
			"public key must be %d bytes, got %d", domain.PublicKeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// MustPublicKey is ParsePublicKey for compile-time constants. It panics on error.
func MustPublicKey(s string) domain.PublicKey {
	pk, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return pk
}
