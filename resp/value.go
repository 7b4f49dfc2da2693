package resp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Value Structure
// --------------------------------------------------------------------------

// Kind identifies the wire variant stored in a Value.
type Kind uint8

const (
	KindNull    Kind = iota // absent value / nil reply
	KindInteger             // signed 64-bit integer
	KindBulk                // binary-safe byte string (simple strings are normalized to this)
	KindArray               // ordered sequence of values, possibly nested
	KindError               // server-reported error message
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindBulk:
		return "bulk"
	case KindArray:
		return "array"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Value is the universal in-memory representation of anything the protocol
// can carry, both as a command argument and as a reply. A Value is immutable
// once constructed; the accessors return read-only views and never mutate.
//
// Exactly one variant is populated, selected by the kind tag. Array elements
// may themselves be any variant including nested arrays and nulls, which
// models heterogeneous replies such as "cursor + result list".
type Value struct {
	kind    Kind
	integer int64
	bulk    []byte
	array   []Value
	errMsg  string
}

// --------------------------------------------------------------------------
// Value Factory Functions
// --------------------------------------------------------------------------

// NewNull creates the null value
func NewNull() Value {
	return Value{kind: KindNull}
}

// NewInt creates an integer value
func NewInt(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// NewBulk creates a bulk value from raw bytes. The bytes are copied so the
// caller may reuse its buffer.
func NewBulk(b []byte) Value {
	if b == nil {
		return NewNull()
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBulk, bulk: cp}
}

// NewBulkString creates a bulk value from a string
func NewBulkString(s string) Value {
	return Value{kind: KindBulk, bulk: []byte(s)}
}

// NewArray creates an array value from the given elements
func NewArray(elems ...Value) Value {
	return Value{kind: KindArray, array: elems}
}

// NewError creates an error value carrying a server-style message
func NewError(msg string) Value {
	return Value{kind: KindError, errMsg: msg}
}

// --------------------------------------------------------------------------
// Accessors
// --------------------------------------------------------------------------

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsInt returns the integer payload. The boolean return value indicates
// whether the value actually is the integer variant.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.integer, true
}

// AsBytes returns the bulk payload. The boolean return value indicates
// whether the value actually is the bulk variant.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBulk {
		return nil, false
	}
	return v.bulk, true
}

// AsString returns the bulk payload as a string. The boolean return value
// indicates whether the value actually is the bulk variant.
func (v Value) AsString() (string, bool) {
	if v.kind != KindBulk {
		return "", false
	}
	return string(v.bulk), true
}

// AsArray returns the element sequence. The boolean return value indicates
// whether the value actually is the array variant.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.array, true
}

// AsError returns the server error message. The boolean return value
// indicates whether the value actually is the error variant.
func (v Value) AsError() (string, bool) {
	if v.kind != KindError {
		return "", false
	}
	return v.errMsg, true
}

// --------------------------------------------------------------------------
// Comparison and Debugging
// --------------------------------------------------------------------------

// Equal reports structural equality: same variant, byte-for-byte payloads,
// element-by-element arrays.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.integer == other.integer
	case KindBulk:
		return bytes.Equal(v.bulk, other.bulk)
	case KindError:
		return v.errMsg == other.errMsg
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(other.array[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value for logging and debugging. The format is not part
// of the wire contract.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "(null)"
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindBulk:
		return strconv.Quote(string(v.bulk))
	case KindError:
		return fmt.Sprintf("(error %q)", v.errMsg)
	case KindArray:
		parts := make([]string, len(v.array))
		for i, e := range v.array {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "(unknown)"
	}
}

// --------------------------------------------------------------------------
// Command Structure
// --------------------------------------------------------------------------

// Command represents one outgoing call: a keyword plus its ordered argument
// list. Commands are built fresh per call and must not be mutated after
// handoff to the transport.
type Command struct {
	// Name is the command keyword, e.g. "SET"
	Name string
	// Args is the ordered argument list
	Args []Value
}

// NewCommand creates a new command with the given keyword and arguments
func NewCommand(name string, args ...Value) Command {
	return Command{Name: name, Args: args}
}

// String renders the command for logging and debugging.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}
