package logging

import (
	"io"
	"regexp"
)

// RedactedValue is the replacement string for secret material.
const RedactedValue = "[REDACTED]"

var (
	// secretFields matches JSON fields that carry private key material,
	// in either naming convention.
	secretFields = regexp.MustCompile(`"(privateKey|private_key|secret)"\s*:\s*"[^"]*"`)

	// longBase58 matches Base58 runs long enough to be a 64-byte expanded
	// secret (87-88 chars). Public keys and signatures in Base58 are shorter.
	longBase58 = regexp.MustCompile(`[1-9A-HJ-NP-Za-km-z]{80,}`)
)

// FilterSecrets returns s with secret-looking content replaced by RedactedValue.
func FilterSecrets(s string) string {
	s = secretFields.ReplaceAllString(s, `"$1":"`+RedactedValue+`"`)
	return longBase58.ReplaceAllString(s, RedactedValue)
}

// FilteringWriter wraps an io.Writer and redacts secrets from every write.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports len(p) on success so callers never
// see a short write caused by redaction.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(FilterSecrets(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
