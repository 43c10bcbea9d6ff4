// Package api is solkit's HTTP transport.
//
// HTTP API
//
//	POST /keypair
//	    Generate a keypair. Body is ignored.
//
//	POST /sign { "message", "privateKey" }
//	    Sign message with a Base58 seed or seed ‖ pubkey secret.
//
//	POST /verify { "message", "signature", "publicKey" }
//	    Verify a Base64 signature under a Base58 public key.
//
//	POST /token/create { "mint", "mintAuthority", "decimals", "freezeAuthority"? }
//	    Build an SPL token InitializeMint instruction.
//
//	GET /health
//	    Liveness check; answers "ok".
//
// Behaviour
//
//   - Every response is a JSON envelope: {"success":true,"data":...} or
//     {"success":false,"error":"..."}.
//   - Every domain error is answered with 400 Bad Request; the transport does
//     not distinguish malformed input from failed derivation.
//   - Request fields accept snake_case aliases (private_key, public_key,
//     mint_authority, freeze_authority) next to their camelCase names.
//   - Each request gets an X-Request-Id (generated when absent) that is also
//     attached to its access-log line.
package api
