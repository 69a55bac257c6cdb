// Package config loads, merges and validates configuration for the mobile
// sync server and the desktop CLI.
//
// Sources in priority order (the first that sets a field wins):
//  1. Environment variables, with a .env file preloaded when present
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the desktop.
package config
