// Package token builds instructions for the SPL token program.
//
// Only InitializeMint is constructed. Its wire layout is fixed by the program:
//
//	offset  size  field
//	0       1     instruction discriminant (0 = InitializeMint)
//	1       1     decimals
//	2       32    mint authority
//	34      1     freeze authority present (0 or 1)
//	35      32    freeze authority, only when present
//
// The instruction references two accounts, in this order: the mint itself
// (writable) and the rent sysvar (read-only). Neither is a signer.
//
// Building an instruction never submits it anywhere; callers get the program
// ID, account metas and payload to hand to a transaction builder.
package token
