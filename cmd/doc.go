// Package cmd implements the command-line developer tools shipped alongside
// the redisc client library.
//
// The package is organized into several subpackages:
//
//   - inspect: Renders a command line into the exact wire argument vector
//     the library's builder produces, without sending anything
//   - bench: Performance measurement of value encoding, reply decoding,
//     request building and full dispatch over the in-memory transport
//   - util: Shared utilities for command-line processing, configuration and
//     logging setup (internal use)
//
// See redisc -help for a list of all commands.
package cmd
