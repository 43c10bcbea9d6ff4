package codec

import (
	"encoding/base64"

	"solkit/internal/domain"
)

// std rejects non-zero trailing padding bits so every accepted string has a
// single canonical byte form.
var std = base64.StdEncoding.Strict()

// EncodeBase64 returns the padded standard Base64 encoding of b.
func EncodeBase64(b []byte) string { return std.EncodeToString(b) }

// DecodeBase64 decodes a non-empty, padded standard Base64 string.
func DecodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, domain.Errorf(domain.KindEncoding, "base64 input is empty")
	}
	b, err := std.DecodeString(s)
	if err != nil {
		return nil, domain.Errorf(domain.KindEncoding, "invalid base64 string")
	}
	return b, nil
}
