package mint

import (
	"context"

	"github.com/rs/zerolog"

	"solkit/internal/codec"
	"solkit/internal/domain"
	"solkit/internal/token"
)

// Service builds token-mint initialization instructions.
type Service struct{}

// New returns a mint service.
func New() *Service { return &Service{} }

// CreateTokenMint validates req and returns the InitializeMint instruction.
func (s *Service) CreateTokenMint(
	ctx context.Context,
	req domain.CreateTokenMintRequest,
) (domain.CreateTokenMintResponse, error) {
	if req.Mint == "" || req.MintAuthority == "" {
		return domain.CreateTokenMintResponse{}, domain.Errorf(domain.KindInvalidInput,
			"mint and mintAuthority are required")
	}

	authority, err := codec.ParsePublicKey(req.MintAuthority)
	if err != nil {
		return domain.CreateTokenMintResponse{}, err
	}
	mint, err := codec.ParsePublicKey(req.Mint)
	if err != nil {
		return domain.CreateTokenMintResponse{}, err
	}
	freeze := authority
	if req.FreezeAuthority != "" {
		if freeze, err = codec.ParsePublicKey(req.FreezeAuthority); err != nil {
			return domain.CreateTokenMintResponse{}, err
		}
	}

	ix, err := token.BuildInitializeMint(mint, authority, req.Decimals, &freeze)
	if err != nil {
		return domain.CreateTokenMintResponse{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("mint", mint.String()).
		Uint8("decimals", req.Decimals).
		Int("data_len", len(ix.Data)).
		Msg("initialize-mint instruction built")

	return domain.CreateTokenMintResponse{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        token.AccountMetas(ix),
		InstructionData: codec.EncodeBase64(ix.Data),
	}, nil
}

// Compile-time assertion that Service implements domain.MintService.
var _ domain.MintService = (*Service)(nil)
