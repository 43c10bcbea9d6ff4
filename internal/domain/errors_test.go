package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/domain"
)

func TestError_MessageCarriesKindLabel(t *testing.T) {
	err := domain.Errorf(domain.KindInvalidKey, "expected %d bytes, got %d", 32, 31)
	assert.Equal(t, "Invalid key: expected 32 bytes, got 31", err.Error())
	assert.Equal(t, "Token creation failed", domain.ErrTokenCreation.Error())
}

func TestError_IsMatchesSentinelOfSameKind(t *testing.T) {
	err := fmt.Errorf("decoding: %w", domain.Errorf(domain.KindEncoding, "bad char"))

	assert.ErrorIs(t, err, domain.ErrEncoding)
	assert.NotErrorIs(t, err, domain.ErrInvalidKey)
	assert.NotErrorIs(t, err, domain.Errorf(domain.KindEncoding, "other detail"))

	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindEncoding, kind)
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := domain.KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestParseError_RoundTripsRenderedMessages(t *testing.T) {
	tests := []struct {
		name string
		in   *domain.Error
	}{
		{name: "with detail", in: domain.Errorf(domain.KindVerificationFailed, "signature must be 64 bytes")},
		{name: "bare kind", in: &domain.Error{Kind: domain.KindTokenCreation}},
		{name: "detail containing colon", in: domain.Errorf(domain.KindInvalidInput, "JSON parse error: EOF")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ParseError(tc.in.Error())
			assert.Equal(t, tc.in.Kind, got.Kind)
			assert.Equal(t, tc.in.Msg, got.Msg)
		})
	}
}

func TestParseError_UnknownPrefixFallsBackToInvalidInput(t *testing.T) {
	got := domain.ParseError("something odd happened")
	assert.Equal(t, domain.KindInvalidInput, got.Kind)
	assert.Equal(t, "something odd happened", got.Msg)
}

func TestKeyMaterial_Expanded(t *testing.T) {
	km := domain.KeyMaterial{Seed: domain.Seed{1}, Public: domain.PublicKey{2}}
	exp := km.Expanded()
	require.Len(t, exp, domain.ExpandedSecretSize)
	assert.Equal(t, byte(1), exp[0])
	assert.Equal(t, byte(2), exp[domain.SeedSize])
}

func TestPublicKey_StringIsBase58(t *testing.T) {
	assert.Equal(t, "11111111111111111111111111111111", domain.PublicKey{}.String())
}
