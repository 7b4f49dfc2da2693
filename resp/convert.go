package resp

import (
	"errors"
	"strconv"
)

// --------------------------------------------------------------------------
// Conversion Seam
// --------------------------------------------------------------------------

// ToWire converts a native value into its wire representation. Conversions
// in this direction are total and never fail.
type ToWire[T any] func(T) Value

// FromWire attempts to read a wire value back as a native value. Conversions
// in this direction are partial: the boolean return value is false on a
// variant mismatch, on malformed text and on null, distinguishing "absent or
// failed" from "present". A null wire value decodes to absent for every
// target type.
type FromWire[T any] func(Value) (T, bool)

// --------------------------------------------------------------------------
// Encoders (native -> wire)
// --------------------------------------------------------------------------

// EncodeInt renders an integer through its canonical decimal text form as
// bulk bytes. Text-oriented commands expect numeric arguments in this shape.
func EncodeInt(i int64) Value {
	return Value{kind: KindBulk, bulk: strconv.AppendInt(nil, i, 10)}
}

// EncodeFloat renders a float through its decimal text form as bulk bytes.
// There is no binary float wire variant.
func EncodeFloat(f float64) Value {
	return Value{kind: KindBulk, bulk: strconv.AppendFloat(nil, f, 'f', -1, 64)}
}

// EncodeBool renders a boolean as the wire integer 1 or 0
func EncodeBool(b bool) Value {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

// EncodeString renders a string as bulk bytes, passed through unmodified
func EncodeString(s string) Value {
	return NewBulkString(s)
}

// EncodeBytes renders raw bytes as bulk bytes, passed through unmodified
func EncodeBytes(b []byte) Value {
	return NewBulk(b)
}

// --------------------------------------------------------------------------
// Decoders (wire -> native)
// --------------------------------------------------------------------------

// DecodeInt reads an integer from either the integer variant or the decimal
// text form in bulk bytes. Malformed text yields absent.
func DecodeInt(v Value) (int64, bool) {
	switch v.kind {
	case KindInteger:
		return v.integer, true
	case KindBulk:
		i, err := strconv.ParseInt(string(v.bulk), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// DecodeFloat reads a float from its decimal text form in bulk bytes, or
// widens an integer reply.
func DecodeFloat(v Value) (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.integer), true
	case KindBulk:
		f, err := strconv.ParseFloat(string(v.bulk), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// DecodeBool reads a boolean from an integer reply. The wire integer 1 maps
// to true and every other integer maps to false. This mapping is lossy on
// purpose: servers only ever emit 0 and 1 here, and unexpected integers
// degrade to false instead of being rejected.
func DecodeBool(v Value) (bool, bool) {
	i, ok := v.AsInt()
	if !ok {
		return false, false
	}
	return i == 1, true
}

// DecodeString reads a string from bulk bytes
func DecodeString(v Value) (string, bool) {
	return v.AsString()
}

// DecodeBytes reads raw bytes from bulk bytes. The returned slice is the
// value's internal payload and must not be mutated.
func DecodeBytes(v Value) ([]byte, bool) {
	return v.AsBytes()
}

// --------------------------------------------------------------------------
// Aggregate Decoders
// --------------------------------------------------------------------------

// Conversion errors for shapes that are structurally impossible rather than
// merely absent. These indicate a library/server mismatch, not ordinary
// data absence, and are therefore reported instead of swallowed.
var (
	ErrNotArray       = errors.New("resp: reply is not an array")
	ErrOddGroupLength = errors.New("resp: grouped reply has an odd element count")
)

// DecodeSlice decodes every element of an array reply with the given
// element decoder. This is the strict variant for replies whose elements are
// contractually always present: a single failed element makes the whole
// result absent.
func DecodeSlice[T any](v Value, dec FromWire[T]) ([]T, bool) {
	elems, ok := v.AsArray()
	if !ok {
		return nil, false
	}
	out := make([]T, len(elems))
	for i, e := range elems {
		t, ok := dec(e)
		if !ok {
			return nil, false
		}
		out[i] = t
	}
	return out, true
}

// DecodeOptionals decodes every element of an array reply with the given
// element decoder, degrading per element: a null or failed element becomes a
// nil entry while the remaining elements still decode. This is the library's
// policy for lookup commands that report misses positionally (MGET, HMGET).
func DecodeOptionals[T any](v Value, dec FromWire[T]) ([]*T, bool) {
	elems, ok := v.AsArray()
	if !ok {
		return nil, false
	}
	out := make([]*T, len(elems))
	for i, e := range elems {
		if t, ok := dec(e); ok {
			out[i] = &t
		}
	}
	return out, true
}

// --------------------------------------------------------------------------
// Grouped (Pair) Decoders
// --------------------------------------------------------------------------

// Pair is one decoded group of a flat two-per-group array reply
type Pair[K, V any] struct {
	Key K
	Val V
}

// PairOrder tells the grouped decoder how the flat array interleaves its
// groups. The layout is caller-supplied because some commands emit the key
// (member, field, channel, ...) first and others emit it second.
type PairOrder uint8

const (
	// OrderKeyValue means the wire array alternates key, value, key, value
	OrderKeyValue PairOrder = iota
	// OrderValueKey means the wire array alternates value, key, value, key
	OrderValueKey
)

// DecodePairs decodes a flat array reply that came in fixed-size groups of
// two. A non-array reply yields ErrNotArray and an odd element count yields
// ErrOddGroupLength; a failed element conversion makes the whole result nil
// with a nil error, consistent with scalar absence.
func DecodePairs[K, V any](v Value, decKey FromWire[K], decVal FromWire[V], order PairOrder) ([]Pair[K, V], error) {
	elems, ok := v.AsArray()
	if !ok {
		return nil, ErrNotArray
	}
	if len(elems)%2 != 0 {
		return nil, ErrOddGroupLength
	}
	out := make([]Pair[K, V], 0, len(elems)/2)
	for i := 0; i < len(elems); i += 2 {
		keyElem, valElem := elems[i], elems[i+1]
		if order == OrderValueKey {
			keyElem, valElem = valElem, keyElem
		}
		k, ok := decKey(keyElem)
		if !ok {
			return nil, nil
		}
		val, ok := decVal(valElem)
		if !ok {
			return nil, nil
		}
		out = append(out, Pair[K, V]{Key: k, Val: val})
	}
	return out, nil
}
