// Package app wires application dependencies for the CLI and server.
//
// It builds either the in-process services or an HTTP client for a remote
// solkit server from Config, exposing them via the Wire struct for commands
// to use.
package app
