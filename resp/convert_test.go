package resp

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// TestIntRoundTrip tests the round-trip law for integers through the
// text-bulk encoding
func TestIntRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 42, -9000, math.MaxInt64, math.MinInt64}

	for _, n := range tests {
		encoded := EncodeInt(n)
		if encoded.Kind() != KindBulk {
			t.Errorf("EncodeInt(%d) kind = %v, want bulk", n, encoded.Kind())
		}
		decoded, ok := DecodeInt(encoded)
		if !ok || decoded != n {
			t.Errorf("DecodeInt(EncodeInt(%d)) = %v, %v, want %d, true", n, decoded, ok, n)
		}
	}
}

// TestFloatRoundTrip tests the round-trip law for finite floats through the
// decimal text encoding
func TestFloatRoundTrip(t *testing.T) {
	tests := []float64{0, 1, -1, 3.25, -0.001, 12345.6789, math.MaxFloat64}

	for _, f := range tests {
		decoded, ok := DecodeFloat(EncodeFloat(f))
		if !ok || decoded != f {
			t.Errorf("DecodeFloat(EncodeFloat(%v)) = %v, %v, want %v, true", f, decoded, ok, f)
		}
	}
}

// TestStringRoundTrip tests the round-trip law for strings
func TestStringRoundTrip(t *testing.T) {
	tests := []string{"", "a", "hello world", "with\nnewline", "unicode: äöü€"}

	for _, s := range tests {
		decoded, ok := DecodeString(EncodeString(s))
		if !ok || decoded != s {
			t.Errorf("DecodeString(EncodeString(%q)) = %q, %v, want %q, true", s, decoded, ok, s)
		}
	}
}

// TestBoolMapping tests the boolean integer encoding and its deliberately
// lenient decoding
func TestBoolMapping(t *testing.T) {
	// round trip
	for _, b := range []bool{true, false} {
		decoded, ok := DecodeBool(EncodeBool(b))
		if !ok || decoded != b {
			t.Errorf("DecodeBool(EncodeBool(%v)) = %v, %v, want %v, true", b, decoded, ok, b)
		}
	}

	tests := []struct {
		name       string
		value      Value
		expected   bool
		expectedOk bool
	}{
		{name: "one is true", value: NewInt(1), expected: true, expectedOk: true},
		{name: "zero is false", value: NewInt(0), expected: false, expectedOk: true},
		{name: "two degrades to false", value: NewInt(2), expected: false, expectedOk: true},
		{name: "negative degrades to false", value: NewInt(-1), expected: false, expectedOk: true},
		{name: "bulk is a mismatch", value: NewBulkString("1"), expectedOk: false},
		{name: "null is absent", value: NewNull(), expectedOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeBool(tt.value)
			if ok != tt.expectedOk || got != tt.expected {
				t.Errorf("DecodeBool() = %v, %v, want %v, %v", got, ok, tt.expected, tt.expectedOk)
			}
		})
	}
}

// TestDecodeNullAbsent tests that null decodes to absent for every scalar
// target type
func TestDecodeNullAbsent(t *testing.T) {
	null := NewNull()

	if _, ok := DecodeInt(null); ok {
		t.Error("DecodeInt(null) should be absent")
	}
	if _, ok := DecodeFloat(null); ok {
		t.Error("DecodeFloat(null) should be absent")
	}
	if _, ok := DecodeBool(null); ok {
		t.Error("DecodeBool(null) should be absent")
	}
	if _, ok := DecodeString(null); ok {
		t.Error("DecodeString(null) should be absent")
	}
	if _, ok := DecodeBytes(null); ok {
		t.Error("DecodeBytes(null) should be absent")
	}
	if _, ok := DecodeSlice(null, DecodeString); ok {
		t.Error("DecodeSlice(null) should be absent")
	}
	if _, ok := DecodeOptionals(null, DecodeString); ok {
		t.Error("DecodeOptionals(null) should be absent")
	}
}

// TestDecodeInt tests the accepted and rejected source shapes for integer
// targets
func TestDecodeInt(t *testing.T) {
	tests := []struct {
		name       string
		value      Value
		expected   int64
		expectedOk bool
	}{
		{name: "integer variant", value: NewInt(42), expected: 42, expectedOk: true},
		{name: "decimal text", value: NewBulkString("-17"), expected: -17, expectedOk: true},
		{name: "malformed text", value: NewBulkString("abc"), expectedOk: false},
		{name: "out of range text", value: NewBulkString("999999999999999999999"), expectedOk: false},
		{name: "array mismatch", value: NewArray(NewInt(1)), expectedOk: false},
		{name: "error mismatch", value: NewError("ERR x"), expectedOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeInt(tt.value)
			if ok != tt.expectedOk || got != tt.expected {
				t.Errorf("DecodeInt() = %v, %v, want %v, %v", got, ok, tt.expected, tt.expectedOk)
			}
		})
	}
}

// TestDecodeSlice tests the strict aggregate decoder
func TestDecodeSlice(t *testing.T) {
	good := NewArray(NewBulkString("a"), NewBulkString("b"))
	if got, ok := DecodeSlice(good, DecodeString); !ok || !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("DecodeSlice() = %v, %v, want [a b], true", got, ok)
	}

	// a single failed element makes the strict result absent
	mixed := NewArray(NewBulkString("a"), NewInt(1))
	if _, ok := DecodeSlice(mixed, DecodeString); ok {
		t.Error("DecodeSlice() with a failed element should be absent")
	}

	if _, ok := DecodeSlice(NewBulkString("x"), DecodeString); ok {
		t.Error("DecodeSlice() on a non-array should be absent")
	}

	empty := NewArray()
	if got, ok := DecodeSlice(empty, DecodeString); !ok || len(got) != 0 {
		t.Errorf("DecodeSlice() on empty array = %v, %v, want [], true", got, ok)
	}
}

// TestDecodeOptionals tests the degrading aggregate decoder
func TestDecodeOptionals(t *testing.T) {
	reply := NewArray(NewBulkString("a"), NewNull(), NewInt(5), NewBulkString("d"))
	got, ok := DecodeOptionals(reply, DecodeString)
	if !ok {
		t.Fatal("DecodeOptionals() on an array should succeed")
	}
	if len(got) != 4 {
		t.Fatalf("DecodeOptionals() length = %d, want 4", len(got))
	}
	if got[0] == nil || *got[0] != "a" {
		t.Errorf("element 0 = %v, want a", got[0])
	}
	if got[1] != nil {
		t.Errorf("null element should degrade to nil, got %v", *got[1])
	}
	if got[2] != nil {
		t.Errorf("failed element should degrade to nil, got %v", *got[2])
	}
	if got[3] == nil || *got[3] != "d" {
		t.Errorf("element 3 = %v, want d", got[3])
	}
}

// TestDecodePairs tests grouped decoding in both layouts plus the
// structural error cases
func TestDecodePairs(t *testing.T) {
	t.Run("key first", func(t *testing.T) {
		reply := NewArray(NewBulkString("a"), NewInt(1), NewBulkString("b"), NewInt(2))
		got, err := DecodePairs(reply, DecodeString, DecodeInt, OrderKeyValue)
		if err != nil {
			t.Fatalf("DecodePairs() error = %v", err)
		}
		expected := []Pair[string, int64]{{Key: "a", Val: 1}, {Key: "b", Val: 2}}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("DecodePairs() = %v, want %v", got, expected)
		}
	})

	t.Run("value first", func(t *testing.T) {
		reply := NewArray(NewInt(1), NewBulkString("a"))
		got, err := DecodePairs(reply, DecodeString, DecodeInt, OrderValueKey)
		if err != nil {
			t.Fatalf("DecodePairs() error = %v", err)
		}
		expected := []Pair[string, int64]{{Key: "a", Val: 1}}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("DecodePairs() = %v, want %v", got, expected)
		}
	})

	t.Run("odd element count", func(t *testing.T) {
		reply := NewArray(NewBulkString("a"), NewInt(1), NewBulkString("b"))
		if _, err := DecodePairs(reply, DecodeString, DecodeInt, OrderKeyValue); !errors.Is(err, ErrOddGroupLength) {
			t.Errorf("DecodePairs() error = %v, want ErrOddGroupLength", err)
		}
	})

	t.Run("not an array", func(t *testing.T) {
		if _, err := DecodePairs(NewInt(1), DecodeString, DecodeInt, OrderKeyValue); !errors.Is(err, ErrNotArray) {
			t.Errorf("DecodePairs() error = %v, want ErrNotArray", err)
		}
	})

	t.Run("failed element is absent not an error", func(t *testing.T) {
		reply := NewArray(NewBulkString("a"), NewBulkString("not-a-number"))
		got, err := DecodePairs(reply, DecodeString, DecodeInt, OrderKeyValue)
		if err != nil {
			t.Fatalf("DecodePairs() error = %v", err)
		}
		if got != nil {
			t.Errorf("DecodePairs() = %v, want nil", got)
		}
	})

	t.Run("empty array", func(t *testing.T) {
		got, err := DecodePairs(NewArray(), DecodeString, DecodeInt, OrderKeyValue)
		if err != nil || len(got) != 0 {
			t.Errorf("DecodePairs() = %v, %v, want [], nil", got, err)
		}
	})
}
