// Package client provides an HTTP implementation of the domain service
// interfaces, talking to a running solkit server.
//
// Supported operations mirror the server routes:
//   - Generating a keypair.
//   - Signing and verifying messages.
//   - Building a token InitializeMint instruction.
//
// Requests are JSON over HTTP and accept a context for cancellation. A
// failed envelope is turned back into a *domain.Error so callers can match
// kinds with errors.Is; transport failures and unexpected statuses are
// returned with the method, path and status text.
package client
