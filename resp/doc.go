// Package resp implements the wire value model and the conversion layer of
// the client library: the canonical in-memory representation of everything
// the protocol can carry, and the bidirectional seam between that
// representation and native Go types.
//
// The package focuses on:
//   - A single immutable, structurally comparable Value type covering the
//     protocol's variants (null, integer, bulk bytes, array, error)
//   - Total native-to-wire encoders and partial wire-to-native decoders with
//     precise null/mismatch semantics
//   - Grouped decoding of flat array replies (pairs with caller-supplied
//     layout) and per-element degrading decoding of lookup replies
//
// Key Components:
//
//   - Value: the tagged union. Simple string replies are normalized to bulk
//     bytes by the transport, so bulk is the only textual variant here.
//     Accessors are failable views that report a variant mismatch through
//     their boolean return value instead of panicking.
//
//   - ToWire / FromWire: the conversion contract. Encoding never fails;
//     decoding returns (value, ok) where ok is false on variant mismatch,
//     malformed text and null. Numbers travel as decimal text in bulk bytes
//     because the protocol's commands are text oriented; booleans travel as
//     the integers 1 and 0.
//
//   - DecodeSlice / DecodeOptionals / DecodePairs: aggregate decoding.
//     Structurally impossible reply shapes (non-array where an array is
//     required, odd element counts in grouped replies) surface as typed
//     errors, distinct from ordinary absence.
//
//   - Command: the transient keyword-plus-arguments value handed to the
//     transport, one per call.
//
// The package performs no I/O and holds no state; request dispatch lives in
// the client package and byte-level framing lives in the transport
// implementations.
package resp
