package signing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solkit/internal/codec"
	"solkit/internal/crypto"
	"solkit/internal/domain"
	"solkit/internal/services/signing"
)

func newKey(t *testing.T) domain.KeyMaterial {
	t.Helper()
	km, err := crypto.GenerateKeypair(nil)
	require.NoError(t, err)
	return km
}

func TestSignMessage_SeedAndExpandedAgree(t *testing.T) {
	ctx := context.Background()
	svc := signing.New()
	km := newKey(t)

	fromSeed, err := svc.SignMessage(ctx, domain.SignMessageRequest{
		Message:    "Hello, Solana!",
		PrivateKey: codec.EncodeBase58(km.Seed[:]),
	})
	require.NoError(t, err)

	fromExpanded, err := svc.SignMessage(ctx, domain.SignMessageRequest{
		Message:    "Hello, Solana!",
		PrivateKey: codec.EncodeBase58(km.Expanded()),
	})
	require.NoError(t, err)

	assert.Equal(t, fromSeed, fromExpanded)
	assert.Equal(t, km.Public.String(), fromSeed.PublicKey)
	assert.Equal(t, "Hello, Solana!", fromSeed.Message)

	sig, err := codec.DecodeBase64(fromSeed.Signature)
	require.NoError(t, err)
	assert.Len(t, sig, domain.SignatureSize)
}

func TestSignThenVerify(t *testing.T) {
	ctx := context.Background()
	svc := signing.New()
	km := newKey(t)

	signed, err := svc.SignMessage(ctx, domain.SignMessageRequest{
		Message:    "gm",
		PrivateKey: codec.EncodeBase58(km.Expanded()),
	})
	require.NoError(t, err)

	ok, err := svc.VerifyMessage(ctx, domain.VerifyMessageRequest{
		Message:   "gm",
		Signature: signed.Signature,
		PublicKey: signed.PublicKey,
	})
	require.NoError(t, err)
	assert.True(t, ok.IsValid)
	assert.Equal(t, signed.PublicKey, ok.PublicKey)

	tampered, err := svc.VerifyMessage(ctx, domain.VerifyMessageRequest{
		Message:   "gn",
		Signature: signed.Signature,
		PublicKey: signed.PublicKey,
	})
	require.NoError(t, err)
	assert.False(t, tampered.IsValid)

	other := newKey(t)
	wrongKey, err := svc.VerifyMessage(ctx, domain.VerifyMessageRequest{
		Message:   "gm",
		Signature: signed.Signature,
		PublicKey: other.Public.String(),
	})
	require.NoError(t, err)
	assert.False(t, wrongKey.IsValid)
}

func TestSignMessage_Errors(t *testing.T) {
	km := newKey(t)
	tests := []struct {
		name string
		req  domain.SignMessageRequest
		want error
	}{
		{name: "empty message", req: domain.SignMessageRequest{PrivateKey: codec.EncodeBase58(km.Seed[:])}, want: domain.ErrInvalidInput},
		{name: "empty key", req: domain.SignMessageRequest{Message: "m"}, want: domain.ErrInvalidInput},
		{name: "key not base58", req: domain.SignMessageRequest{Message: "m", PrivateKey: "0OIl"}, want: domain.ErrEncoding},
		{name: "key wrong length", req: domain.SignMessageRequest{Message: "m", PrivateKey: codec.EncodeBase58(make([]byte, 48))}, want: domain.ErrInvalidKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := signing.New().SignMessage(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerifyMessage_Errors(t *testing.T) {
	km := newKey(t)
	sig := crypto.Sign([]byte("m"), km)
	goodSig := codec.EncodeBase64(sig[:])
	goodKey := km.Public.String()

	tests := []struct {
		name string
		req  domain.VerifyMessageRequest
		want error
	}{
		{name: "empty message", req: domain.VerifyMessageRequest{Signature: goodSig, PublicKey: goodKey}, want: domain.ErrInvalidInput},
		{name: "empty signature", req: domain.VerifyMessageRequest{Message: "m", PublicKey: goodKey}, want: domain.ErrInvalidInput},
		{name: "empty pubkey", req: domain.VerifyMessageRequest{Message: "m", Signature: goodSig}, want: domain.ErrInvalidInput},
		{name: "short pubkey", req: domain.VerifyMessageRequest{Message: "m", Signature: goodSig, PublicKey: codec.EncodeBase58([]byte{1, 2, 3})}, want: domain.ErrInvalidKey},
		{name: "signature not base64", req: domain.VerifyMessageRequest{Message: "m", Signature: "!!!", PublicKey: goodKey}, want: domain.ErrEncoding},
		{name: "signature too short", req: domain.VerifyMessageRequest{Message: "m", Signature: codec.EncodeBase64(sig[:32]), PublicKey: goodKey}, want: domain.ErrVerificationFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := signing.New().VerifyMessage(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
