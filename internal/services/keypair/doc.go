// Package keypair serves GenerateKeypair requests.
//
// It draws a fresh Ed25519 keypair from the configured entropy source and
// renders it the way wallets export it: the public key in Base58 and the
// secret as Base58 of the 64-byte seed ‖ public key form. Nothing is stored.
package keypair
