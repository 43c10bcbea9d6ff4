package token

import (
	"solkit/internal/domain"
)

// InitializeMintArgs is the decoded payload of an InitializeMint instruction.
type InitializeMintArgs struct {
	Decimals        uint8
	MintAuthority   domain.PublicKey
	FreezeAuthority *domain.PublicKey
}

// BuildInitializeMint assembles the InitializeMint instruction for mint.
//
// decimals above MaxDecimals is KindInvalidInput and is rejected before any
// encoding. freezeAuthority may be nil.
func BuildInitializeMint(
	mint, mintAuthority domain.PublicKey,
	decimals uint8,
	freezeAuthority *domain.PublicKey,
) (domain.Instruction, error) {
	if decimals > MaxDecimals {
		return domain.Instruction{}, domain.Errorf(domain.KindInvalidInput,
			"token decimals must be between 0 and %d, got %d", MaxDecimals, decimals)
	}

	args := InitializeMintArgs{
		Decimals:        decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
	}
	data := args.Encode()

	// The layout must read back exactly as written.
	got, err := DecodeInitializeMint(data)
	if err != nil || !got.equal(args) {
		return domain.Instruction{}, domain.Errorf(domain.KindTokenCreation,
			"failed to create mint instruction: payload does not round-trip")
	}

	return domain.Instruction{
		ProgramID: ProgramID,
		Accounts: []domain.AccountMeta{
			{PublicKey: mint, IsSigner: false, IsWritable: true},
			{PublicKey: SysvarRentID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

// Encode serializes a into the InitializeMint wire layout.
func (a InitializeMintArgs) Encode() []byte {
	size := initializeMintLen
	if a.FreezeAuthority != nil {
		size = initializeMintWithFreezeLen
	}
	buf := make([]byte, 0, size)
	buf = append(buf, InstructionInitializeMint, a.Decimals)
	buf = append(buf, a.MintAuthority[:]...)
	if a.FreezeAuthority == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	return append(buf, a.FreezeAuthority[:]...)
}

// DecodeInitializeMint parses an InitializeMint payload.
func DecodeInitializeMint(data []byte) (InitializeMintArgs, error) {
	var a InitializeMintArgs
	if len(data) < initializeMintLen {
		return a, domain.Errorf(domain.KindInvalidInput,
			"instruction data too short: %d bytes", len(data))
	}
	if data[0] != InstructionInitializeMint {
		return a, domain.Errorf(domain.KindInvalidInput,
			"not an InitializeMint instruction: discriminant %d", data[0])
	}
	a.Decimals = data[1]
	copy(a.MintAuthority[:], data[2:34])

	switch data[34] {
	case 0:
		if len(data) != initializeMintLen {
			return a, domain.Errorf(domain.KindInvalidInput,
				"unexpected trailing bytes after InitializeMint payload")
		}
	case 1:
		if len(data) != initializeMintWithFreezeLen {
			return a, domain.Errorf(domain.KindInvalidInput,
				"freeze authority flag set but payload is %d bytes", len(data))
		}
		var fa domain.PublicKey
		copy(fa[:], data[35:67])
		a.FreezeAuthority = &fa
	default:
		return a, domain.Errorf(domain.KindInvalidInput,
			"invalid freeze authority flag %d", data[34])
	}
	return a, nil
}

func (a InitializeMintArgs) equal(b InitializeMintArgs) bool {
	if a.Decimals != b.Decimals || a.MintAuthority != b.MintAuthority {
		return false
	}
	if a.FreezeAuthority == nil || b.FreezeAuthority == nil {
		return a.FreezeAuthority == nil && b.FreezeAuthority == nil
	}
	return *a.FreezeAuthority == *b.FreezeAuthority
}
