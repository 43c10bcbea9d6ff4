// Package mint serves CreateTokenMint requests by building an SPL token
// InitializeMint instruction.
//
// Public keys are validated for shape only (Base58, 32 bytes); nothing is
// looked up on-chain. When no freeze authority is supplied the mint authority
// doubles as the freeze authority.
package mint
