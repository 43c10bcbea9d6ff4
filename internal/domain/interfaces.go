package domain

import "context"

// KeypairService generates fresh signing keypairs.
type KeypairService interface {
	GenerateKeypair(ctx context.Context) (KeypairResponse, error)
}

// SigningService signs messages and verifies signatures.
type SigningService interface {
	SignMessage(ctx context.Context, req SignMessageRequest) (SignMessageResponse, error)
	VerifyMessage(ctx context.Context, req VerifyMessageRequest) (VerifyMessageResponse, error)
}

// MintService builds token-mint initialization instructions.
type MintService interface {
	CreateTokenMint(ctx context.Context, req CreateTokenMintRequest) (CreateTokenMintResponse, error)
}
