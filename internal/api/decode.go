package api

import (
	"bytes"
	"encoding/json"
	"io"

	"solkit/internal/domain"
)

// fieldAliases maps accepted snake_case request keys to their canonical
// camelCase names. When both spellings are present the canonical one wins.
var fieldAliases = map[string]string{
	"private_key":      "privateKey",
	"public_key":       "publicKey",
	"mint_authority":   "mintAuthority",
	"freeze_authority": "freezeAuthority",
}

var jsonNull = []byte("null")

// decodeRequest reads a single JSON object from body into dst after resolving
// field aliases. Every name in required must be present and non-null after
// aliasing. Trailing data after the object is rejected.
func decodeRequest(body io.Reader, dst any, required ...string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return domain.Errorf(domain.KindInvalidInput, "JSON parse error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.Errorf(domain.KindInvalidInput, "JSON parse error: %v", err)
	}
	if raw == nil {
		return domain.Errorf(domain.KindInvalidInput, "request body must be a JSON object")
	}

	for alias, canonical := range fieldAliases {
		v, ok := raw[alias]
		if !ok {
			continue
		}
		if _, dup := raw[canonical]; !dup {
			raw[canonical] = v
		}
		delete(raw, alias)
	}

	for _, name := range required {
		v, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return domain.Errorf(domain.KindInvalidInput, "missing field `%s`", name)
		}
	}

	b, err = json.Marshal(raw)
	if err != nil {
		return domain.Errorf(domain.KindInvalidInput, "JSON parse error: %v", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return domain.Errorf(domain.KindInvalidInput, "JSON parse error: %v", err)
	}
	return nil
}
