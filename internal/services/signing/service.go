package signing

import (
	"context"

	"github.com/rs/zerolog"

	"solkit/internal/codec"
	"solkit/internal/crypto"
	"solkit/internal/domain"
)

// Service signs and verifies UTF-8 messages.
type Service struct{}

// New returns a signing service.
func New() *Service { return &Service{} }

// SignMessage signs req.Message with req.PrivateKey.
func (s *Service) SignMessage(
	ctx context.Context,
	req domain.SignMessageRequest,
) (domain.SignMessageResponse, error) {
	if req.Message == "" || req.PrivateKey == "" {
		return domain.SignMessageResponse{}, domain.Errorf(domain.KindInvalidInput,
			"message and privateKey are required")
	}

	secret, err := codec.DecodeBase58(req.PrivateKey)
	if err != nil {
		return domain.SignMessageResponse{}, err
	}
	defer crypto.Wipe(secret)

	km, err := crypto.DeriveFromSecret(secret)
	if err != nil {
		return domain.SignMessageResponse{}, err
	}
	defer crypto.WipeKey(&km)

	sig := crypto.Sign([]byte(req.Message), km)

	zerolog.Ctx(ctx).Debug().
		Str("pubkey_fp", crypto.Fingerprint(km.Public)).
		Int("message_len", len(req.Message)).
		Msg("message signed")

	return domain.SignMessageResponse{
		Signature: codec.EncodeBase64(sig[:]),
		Message:   req.Message,
		PublicKey: km.Public.String(),
	}, nil
}

// VerifyMessage checks req.Signature over req.Message under req.PublicKey.
func (s *Service) VerifyMessage(
	ctx context.Context,
	req domain.VerifyMessageRequest,
) (domain.VerifyMessageResponse, error) {
	if req.Message == "" || req.Signature == "" || req.PublicKey == "" {
		return domain.VerifyMessageResponse{}, domain.Errorf(domain.KindInvalidInput,
			"message, signature and publicKey are required")
	}

	pub, err := codec.ParsePublicKey(req.PublicKey)
	if err != nil {
		return domain.VerifyMessageResponse{}, err
	}
	sig, err := codec.DecodeBase64(req.Signature)
	if err != nil {
		return domain.VerifyMessageResponse{}, err
	}
	valid, err := crypto.Verify([]byte(req.Message), sig, pub)
	if err != nil {
		return domain.VerifyMessageResponse{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("pubkey_fp", crypto.Fingerprint(pub)).
		Bool("valid", valid).
		Msg("signature verified")

	return domain.VerifyMessageResponse{
		IsValid:   valid,
		Message:   req.Message,
		PublicKey: req.PublicKey,
	}, nil
}

// Compile-time assertion that Service implements domain.SigningService.
var _ domain.SigningService = (*Service)(nil)
