package client

import (
	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// Command Argument Builder
// --------------------------------------------------------------------------

// Args assembles a command keyword plus its ordered argument list from typed
// inputs. Fixed-position arguments are appended in declaration order,
// variadic inputs as a flattened run, and optional flags only when present.
// The protocol is positional, so relative order is part of every command's
// contract.
type Args struct {
	name string
	vals []resp.Value
}

// NewArgs creates a builder for the given command keyword. The capacity is
// an upper bound on the number of arguments the caller will append (e.g.
// number of pairs times two) and pre-reserves the backing array so variadic
// assembly does not reallocate. Sizing is a performance contract only; a
// low bound is still correct.
func NewArgs(name string, capacity int) *Args {
	return &Args{
		name: name,
		vals: make([]resp.Value, 0, capacity),
	}
}

// Add appends an already-converted wire value
func (a *Args) Add(v resp.Value) *Args {
	a.vals = append(a.vals, v)
	return a
}

// AddString appends a string argument
func (a *Args) AddString(s string) *Args {
	return a.Add(resp.EncodeString(s))
}

// AddBytes appends a raw byte argument, passed through unmodified
func (a *Args) AddBytes(b []byte) *Args {
	return a.Add(resp.EncodeBytes(b))
}

// AddInt appends an integer argument in its decimal text form
func (a *Args) AddInt(i int64) *Args {
	return a.Add(resp.EncodeInt(i))
}

// AddFloat appends a float argument in its decimal text form
func (a *Args) AddFloat(f float64) *Args {
	return a.Add(resp.EncodeFloat(f))
}

// AddStrings appends a run of string arguments in order
func (a *Args) AddStrings(ss ...string) *Args {
	for _, s := range ss {
		a.AddString(s)
	}
	return a
}

// Len returns the number of arguments appended so far
func (a *Args) Len() int {
	return len(a.vals)
}

// Command finalizes the builder into the transient request value handed to
// the transport. The builder must not be reused afterwards.
func (a *Args) Command() resp.Command {
	return resp.Command{Name: a.name, Args: a.vals}
}
