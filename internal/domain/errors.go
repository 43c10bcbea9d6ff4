package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure. Every kind is terminal; none is retried.
type Kind uint8

const (
	// KindInvalidInput marks structurally malformed request data.
	KindInvalidInput Kind = iota + 1
	// KindInvalidKey marks key material that does not decode to the expected length.
	KindInvalidKey
	// KindEncoding marks a Base58 or Base64 decode failure.
	KindEncoding
	// KindVerificationFailed marks a signature that cannot be parsed at all.
	KindVerificationFailed
	// KindTokenCreation marks an internal instruction-encoding inconsistency.
	KindTokenCreation
)

var kindLabels = map[Kind]string{
	KindInvalidInput:       "Invalid input",
	KindInvalidKey:         "Invalid key",
	KindEncoding:           "Encoding error",
	KindVerificationFailed: "Verification failed",
	KindTokenCreation:      "Token creation failed",
}

// String returns the human-readable label used as the error message prefix.
func (k Kind) String() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is the single error type produced by solkit's core packages.
//
// Errors from codec libraries are collapsed into a Kind plus a message; the
// underlying library error is not retained.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is matches another *Error of the same Kind that carries no message, so the
// sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrInvalidKey         = &Error{Kind: KindInvalidKey}
	ErrEncoding           = &Error{Kind: KindEncoding}
	ErrVerificationFailed = &Error{Kind: KindVerificationFailed}
	ErrTokenCreation      = &Error{Kind: KindTokenCreation}
)

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// ParseError rebuilds an *Error from its rendered message, as found in the
// "error" field of a failed API response. Messages without a known kind
// prefix are returned as KindInvalidInput.
func ParseError(msg string) *Error {
	for k, label := range kindLabels {
		if msg == label {
			return &Error{Kind: k}
		}
		if rest, ok := strings.CutPrefix(msg, label+": "); ok {
			return &Error{Kind: k, Msg: rest}
		}
	}
	return &Error{Kind: KindInvalidInput, Msg: msg}
}
