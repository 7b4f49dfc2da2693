// Package transport defines the seam between the client core and the wire:
// the ICommandTransport interface the client dispatches commands through,
// and the Config structure implementations are connected with.
//
// The client core consumes this interface but does not own any
// implementation concerns: connection lifecycle, authentication, framing,
// pipelining and retry policy all live behind Send. The only contract the
// core relies on is that one sent command yields exactly one reply value,
// with server-reported errors carried inside the reply as the error variant.
//
// The inmem subpackage provides an in-process implementation backed by
// scripted handlers. It exists for tests and benchmarks; network transports
// are deliberately out of scope for this repository.
package transport
