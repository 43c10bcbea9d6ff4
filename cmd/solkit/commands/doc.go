// Package commands defines the solkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve    Run the HTTP API
//   - keygen   Generate an Ed25519 keypair
//   - sign     Sign a message with a Base58 secret
//   - verify   Verify a Base64 signature
//   - mint     Build (or decode) a token InitializeMint instruction
//   - version  Print the build version
//
// # Implementation
//
// The root command loads configuration, builds the logger and wires either
// the in-process services or, with --server, an HTTP client before any
// subcommand runs. Operation commands print the same JSON envelope the HTTP
// API returns.
package commands
