package domain

// The request and response shapes exchanged at the API boundary. JSON names
// are the canonical camelCase ones; snake_case aliases are resolved by the
// transport before decoding.

// KeypairResponse carries a freshly generated keypair.
// Secret is Base58 of the 64-byte seed ‖ public key form.
type KeypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

// SignMessageRequest asks for message to be signed with PrivateKey (Base58,
// 32-byte seed or 64-byte expanded secret).
type SignMessageRequest struct {
	Message    string `json:"message"`
	PrivateKey string `json:"privateKey"`
}

// SignMessageResponse carries a Base64 signature and the signer's public key.
type SignMessageResponse struct {
	Signature string `json:"signature"`
	Message   string `json:"message"`
	PublicKey string `json:"publicKey"`
}

// VerifyMessageRequest asks whether Signature (Base64) over Message verifies
// under PublicKey (Base58).
type VerifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

// VerifyMessageResponse reports the verification outcome.
type VerifyMessageResponse struct {
	IsValid   bool   `json:"isValid"`
	Message   string `json:"message"`
	PublicKey string `json:"publicKey"`
}

// CreateTokenMintRequest asks for an InitializeMint instruction.
// FreezeAuthority is optional; when empty the mint authority is used.
type CreateTokenMintRequest struct {
	Mint            string `json:"mint"`
	MintAuthority   string `json:"mintAuthority"`
	Decimals        uint8  `json:"decimals"`
	FreezeAuthority string `json:"freezeAuthority,omitempty"`
}

// AccountMetaResponse is the string projection of an AccountMeta.
type AccountMetaResponse struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

// CreateTokenMintResponse carries the built instruction, payload in Base64.
type CreateTokenMintResponse struct {
	ProgramID       string                `json:"programId"`
	Accounts        []AccountMetaResponse `json:"accounts"`
	InstructionData string                `json:"instructionData"`
}
