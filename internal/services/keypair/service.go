package keypair

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"solkit/internal/codec"
	"solkit/internal/crypto"
	"solkit/internal/domain"
)

// Service generates keypairs.
type Service struct {
	entropy io.Reader
}

// New returns a keypair service reading seeds from entropy.
// A nil entropy source means crypto/rand.Reader.
func New(entropy io.Reader) *Service { return &Service{entropy: entropy} }

// GenerateKeypair creates a new keypair and returns it in export form.
func (s *Service) GenerateKeypair(ctx context.Context) (domain.KeypairResponse, error) {
	km, err := crypto.GenerateKeypair(s.entropy)
	if err != nil {
		return domain.KeypairResponse{}, err
	}
	defer crypto.WipeKey(&km)

	secret := km.Expanded()
	defer crypto.Wipe(secret)

	zerolog.Ctx(ctx).Debug().
		Str("pubkey_fp", crypto.Fingerprint(km.Public)).
		Msg("keypair generated")

	return domain.KeypairResponse{
		Pubkey: km.Public.String(),
		Secret: codec.EncodeBase58(secret),
	}, nil
}

// Compile-time assertion that Service implements domain.KeypairService.
var _ domain.KeypairService = (*Service)(nil)
