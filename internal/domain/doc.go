// Package domain defines the value types, request/response shapes and error
// taxonomy shared across solkit.
//
// It contains plain types and contracts (interfaces) only. Every value here is
// immutable once built and lives for a single request; nothing in this package
// touches the network, the filesystem or a logger.
package domain
