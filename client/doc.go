// Package client provides the typed command API of the library: per-command
// methods over an injected transport, the argument builder they assemble
// requests with, and the generic dispatch pipeline they all reduce to.
//
// The package focuses on:
//   - A single generic invoke pipeline (build request, send, short-circuit
//     server errors, decode reply) so each command method is a one-screen
//     instantiation of keyword, argument assembly and decoder
//   - Exact, protocol-correct argument ordering: fixed positions first,
//     flattened variadic runs with pre-sized capacity, optional modifiers in
//     their fixed relative order
//   - A structured error type separating transport failures, server-reported
//     errors, protocol contract violations and locally detected argument
//     mistakes; legitimate misses are reported through boolean returns, not
//     errors
//
// Key Components:
//
//   - Client: stateless command surface over a transport.ICommandTransport.
//     Command families live in one file each (string, generic, hash, set,
//     zset, list, pubsub).
//
//   - Args: the command request builder. NewArgs takes a capacity upper
//     bound so variadic assembly does not reallocate.
//
//   - Modifier types (SetCondition, Expiration, Aggregate, Limit,
//     ScoreBound, LexBound): closed value types that render themselves into
//     zero or more arguments. Bounds use the protocol's text encoding
//     (bare value, '(' prefix, '+'/'-' infinities).
//
//   - Lifetime: the tri-state decoding of TTL-style replies (-2 missing,
//     -1 unlimited, n remaining).
//
// Commands that accept a list of keys or elements short-circuit the empty
// list locally to the documented zero/empty result instead of emitting a
// malformed zero-argument call; mismatched weight/source counts fail fast
// locally for the same reason.
//
// Dispatch is instrumented with per-command request counters, error counters
// and latency histograms in the default VictoriaMetrics set.
package client
