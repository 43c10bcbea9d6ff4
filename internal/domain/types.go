package domain

import (
	"github.com/mr-tron/base58"
)

const (
	// PublicKeySize is the length of an Ed25519 public key.
	PublicKeySize = 32
	// SeedSize is the length of an Ed25519 private seed.
	SeedSize = 32
	// ExpandedSecretSize is the length of the exported seed ‖ public key form.
	ExpandedSecretSize = SeedSize + PublicKeySize
	// SignatureSize is the length of an Ed25519 signature.
	SignatureSize = 64
)

// PublicKey is a 32-byte Ed25519 public key, rendered as Base58.
type PublicKey [PublicKeySize]byte

// String returns the canonical Base58 form of the key.
func (k PublicKey) String() string { return base58.Encode(k[:]) }

// Seed is a 32-byte Ed25519 private seed.
type Seed [SeedSize]byte

// KeyMaterial is a private seed together with the public key derived from it.
//
// Public is always computed from Seed; it is never taken from caller input.
type KeyMaterial struct {
	Seed   Seed
	Public PublicKey
}

// Expanded returns seed ‖ public key, the common 64-byte export format.
func (k KeyMaterial) Expanded() []byte {
	out := make([]byte, 0, ExpandedSecretSize)
	out = append(out, k.Seed[:]...)
	return append(out, k.Public[:]...)
}

// Signature is a 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// AccountMeta describes one account slot referenced by an instruction.
// Slot order is defined by the target program and is significant.
type AccountMeta struct {
	PublicKey  PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a program-addressed unit of work: the program to invoke, the
// accounts it touches in program-defined order, and its binary payload.
type Instruction struct {
	ProgramID PublicKey
	Accounts  []AccountMeta
	Data      []byte
}
