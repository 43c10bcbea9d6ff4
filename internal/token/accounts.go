package token

import "solkit/internal/domain"

// AccountMetas projects an instruction's accounts into their string form,
// preserving order.
func AccountMetas(ix domain.Instruction) []domain.AccountMetaResponse {
	out := make([]domain.AccountMetaResponse, len(ix.Accounts))
	for i, a := range ix.Accounts {
		out[i] = domain.AccountMetaResponse{
			Pubkey:     a.PublicKey.String(),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		}
	}
	return out
}
