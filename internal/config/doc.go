// Package config loads solkit's runtime configuration.
//
// Values are resolved in this order (highest precedence first):
//  1. Environment variables (SOLKIT_* prefix, "." replaced by "_")
//  2. The config file passed with --config (YAML, TOML or JSON)
//  3. Built-in defaults
//
// A missing config file is not an error when no path was given.
package config
