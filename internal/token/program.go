package token

import (
	"solkit/internal/codec"
)

// Well-known program and sysvar addresses.
var (
	ProgramID    = codec.MustPublicKey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	SysvarRentID = codec.MustPublicKey("SysvarRent111111111111111111111111111111111")
)

// Instruction discriminants of the token program, in program order.
const (
	InstructionInitializeMint uint8 = iota
	InstructionInitializeAccount
	InstructionInitializeMultisig
	InstructionTransfer
	InstructionApprove
	InstructionRevoke
	InstructionSetAuthority
	InstructionMintTo
	InstructionBurn
	InstructionCloseAccount
	InstructionFreezeAccount
	InstructionThawAccount
)

// MaxDecimals is the largest decimals value accepted for a new mint.
const MaxDecimals = 9

const (
	// initializeMintLen is the payload length with no freeze authority.
	initializeMintLen = 1 + 1 + 32 + 1
	// initializeMintWithFreezeLen adds the 32-byte freeze authority.
	initializeMintWithFreezeLen = initializeMintLen + 32
)
