package client

import (
	"testing"

	"github.com/ValentinKolb/redisc/resp"
)

// TestArgsOrdering tests that arguments are appended in declaration order
// across the typed append helpers
func TestArgsOrdering(t *testing.T) {
	args := NewArgs("ZADD", 6)
	args.AddString("key").AddFloat(1.5).AddString("member").AddInt(-3).AddBytes([]byte("raw"))

	cmd := args.Command()
	if cmd.Name != "ZADD" {
		t.Errorf("Name = %q, want ZADD", cmd.Name)
	}
	expected := []resp.Value{
		resp.NewBulkString("key"),
		resp.NewBulkString("1.5"),
		resp.NewBulkString("member"),
		resp.NewBulkString("-3"),
		resp.NewBulkString("raw"),
	}
	if len(cmd.Args) != len(expected) {
		t.Fatalf("got %d arguments, want %d", len(cmd.Args), len(expected))
	}
	for i := range expected {
		if !cmd.Args[i].Equal(expected[i]) {
			t.Errorf("arg[%d] = %s, want %s", i, cmd.Args[i], expected[i])
		}
	}
}

// TestArgsPreSizing tests that a correct capacity bound avoids reallocation
// during variadic assembly
func TestArgsPreSizing(t *testing.T) {
	keys := []string{"a", "b", "c", "d"}
	args := NewArgs("DEL", len(keys))
	args.AddStrings(keys...)

	cmd := args.Command()
	if got := cap(cmd.Args); got != len(keys) {
		t.Errorf("capacity = %d, want %d", got, len(keys))
	}
	if args.Len() != len(keys) {
		t.Errorf("Len() = %d, want %d", args.Len(), len(keys))
	}
}

// TestArgsLowCapacityStillCorrect tests the sizing contract: a low bound is
// a performance mistake, never a correctness one
func TestArgsLowCapacityStillCorrect(t *testing.T) {
	args := NewArgs("MSET", 1)
	args.AddStrings("k1", "v1", "k2", "v2")

	cmd := args.Command()
	assertArgs(t, cmd, "k1", "v1", "k2", "v2")
}
