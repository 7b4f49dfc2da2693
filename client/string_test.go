package client

import (
	"reflect"
	"testing"
	"time"

	"github.com/ValentinKolb/redisc/resp"
)

// TestSet tests argument composition of the write modifiers and the
// condition-met result
func TestSet(t *testing.T) {
	c, tr := newTestClient(t)
	tr.Reply("SET", resp.NewBulkString("OK"))

	ok, err := c.Set("k", []byte("v"), ExpireIn(60*time.Second), CondNX)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !ok {
		t.Error("Set() = false, want true")
	}

	calls := tr.CallsFor("SET")
	if len(calls) != 1 {
		t.Fatalf("sent %d SET commands, want 1", len(calls))
	}
	assertArgs(t, calls[0], "k", "v", "EX", "60", "NX")
}

// TestSetConditionNotMet tests that a null reply reports an unmet condition
// instead of an error
func TestSetConditionNotMet(t *testing.T) {
	c, tr := newTestClient(t)
	tr.Reply("SET", resp.NewNull())

	ok, err := c.Set("k", []byte("v"), NoExpiration(), CondNX)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if ok {
		t.Error("Set() = true, want false")
	}
	assertArgs(t, tr.CallsFor("SET")[0], "k", "v", "NX")
}

// TestGet tests the hit and miss paths
func TestGet(t *testing.T) {
	c, tr := newTestClient(t)

	tr.Reply("GET", resp.NewBulkString("value"))
	value, loaded, err := c.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !loaded || string(value) != "value" {
		t.Errorf("Get() = %q, %v, want value, true", value, loaded)
	}

	tr.Reply("GET", resp.NewNull())
	value, loaded, err = c.Get("missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loaded || value != nil {
		t.Errorf("Get() = %q, %v, want nil, false", value, loaded)
	}
}

// TestGetEmptyValueIsAHit tests that an empty stored value is distinguished
// from a miss
func TestGetEmptyValueIsAHit(t *testing.T) {
	c, tr := newTestClient(t)
	tr.Reply("GET", resp.NewBulkString(""))

	value, loaded, err := c.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !loaded {
		t.Error("empty value should report loaded = true")
	}
	if len(value) != 0 {
		t.Errorf("value = %q, want empty", value)
	}
}

// TestCounters tests the increment/decrement family
func TestCounters(t *testing.T) {
	c, tr := newTestClient(t)
	tr.Reply("INCR", resp.NewInt(2))
	tr.Reply("INCRBY", resp.NewInt(12))
	tr.Reply("DECR", resp.NewInt(1))
	tr.Reply("DECRBY", resp.NewInt(-8))
	tr.Reply("INCRBYFLOAT", resp.NewBulkString("3.5"))

	if n, err := c.Incr("k"); err != nil || n != 2 {
		t.Errorf("Incr() = %d, %v, want 2, nil", n, err)
	}
	if n, err := c.IncrBy("k", 10); err != nil || n != 12 {
		t.Errorf("IncrBy() = %d, %v, want 12, nil", n, err)
	}
	if n, err := c.Decr("k"); err != nil || n != 1 {
		t.Errorf("Decr() = %d, %v, want 1, nil", n, err)
	}
	if n, err := c.DecrBy("k", 9); err != nil || n != -8 {
		t.Errorf("DecrBy() = %d, %v, want -8, nil", n, err)
	}
	if f, err := c.IncrByFloat("k", 0.5); err != nil || f != 3.5 {
		t.Errorf("IncrByFloat() = %v, %v, want 3.5, nil", f, err)
	}

	assertArgs(t, tr.CallsFor("INCRBY")[0], "k", "10")
	assertArgs(t, tr.CallsFor("DECRBY")[0], "k", "9")
	assertArgs(t, tr.CallsFor("INCRBYFLOAT")[0], "k", "0.5")
}

// TestMSet tests pair flattening and the empty short-circuit
func TestMSet(t *testing.T) {
	c, tr := newTestClient(t)
	tr.Reply("MSET", resp.NewBulkString("OK"))

	if err := c.MSet(KV{Key: "a", Value: []byte("1")}, KV{Key: "b", Value: []byte("2")}); err != nil {
		t.Fatalf("MSet() error = %v", err)
	}
	assertArgs(t, tr.CallsFor("MSET")[0], "a", "1", "b", "2")

	// empty input short-circuits locally
	if err := c.MSet(); err != nil {
		t.Fatalf("MSet() with no pairs error = %v", err)
	}
	if calls := tr.CallsFor("MSET"); len(calls) != 1 {
		t.Errorf("empty MSet should not reach the transport, sent %d commands", len(calls))
	}
}

// TestMGet tests positional miss reporting and the empty short-circuit
func TestMGet(t *testing.T) {
	c, tr := newTestClient(t)
	tr.Reply("MGET", resp.NewArray(
		resp.NewBulkString("1"),
		resp.NewNull(),
		resp.NewBulkString("3"),
	))

	values, err := c.MGet("a", "missing", "c")
	if err != nil {
		t.Fatalf("MGet() error = %v", err)
	}
	expected := [][]byte{[]byte("1"), nil, []byte("3")}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("MGet() = %v, want %v", values, expected)
	}

	values, err = c.MGet()
	if err != nil || values != nil {
		t.Errorf("MGet() with no keys = %v, %v, want nil, nil", values, err)
	}
	if calls := tr.CallsFor("MGET"); len(calls) != 1 {
		t.Errorf("empty MGet should not reach the transport, sent %d commands", len(calls))
	}
}

// TestAppendStrLen tests the length-returning string commands
func TestAppendStrLen(t *testing.T) {
	c, tr := newTestClient(t)
	tr.Reply("APPEND", resp.NewInt(11))
	tr.Reply("STRLEN", resp.NewInt(11))

	if n, err := c.Append("k", []byte(" world")); err != nil || n != 11 {
		t.Errorf("Append() = %d, %v, want 11, nil", n, err)
	}
	if n, err := c.StrLen("k"); err != nil || n != 11 {
		t.Errorf("StrLen() = %d, %v, want 11, nil", n, err)
	}
}

// TestGetSet tests the previous-value semantics
func TestGetSet(t *testing.T) {
	c, tr := newTestClient(t)

	tr.Reply("GETSET", resp.NewBulkString("old"))
	old, loaded, err := c.GetSet("k", []byte("new"))
	if err != nil || !loaded || string(old) != "old" {
		t.Errorf("GetSet() = %q, %v, %v, want old, true, nil", old, loaded, err)
	}
	assertArgs(t, tr.CallsFor("GETSET")[0], "k", "new")

	tr.Reply("GETSET", resp.NewNull())
	_, loaded, err = c.GetSet("fresh", []byte("new"))
	if err != nil || loaded {
		t.Errorf("GetSet() on a fresh key = %v, %v, want false, nil", loaded, err)
	}
}
