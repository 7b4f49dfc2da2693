package client

import (
	"time"

	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// Optional Command Modifiers
// --------------------------------------------------------------------------
//
// Each modifier is a small closed value type whose only behavior is to
// render itself into zero or more wire arguments. The command methods
// compose them into the argument list in the fixed order the protocol
// expects.

// SetCondition controls whether a write requires the key to be absent or
// present
type SetCondition uint8

const (
	// CondNone places no condition on the write
	CondNone SetCondition = iota
	// CondNX only performs the write if the key does not exist
	CondNX
	// CondXX only performs the write if the key already exists
	CondXX
)

// render appends the condition flag, if any
func (c SetCondition) render(a *Args) {
	switch c {
	case CondNX:
		a.AddString("NX")
	case CondXX:
		a.AddString("XX")
	}
}

// Expiration is an optional time-to-live for a written key. The zero value
// means no expiration.
type Expiration struct {
	dur     time.Duration
	keepTTL bool
}

// NoExpiration places no lifetime on the written key
func NoExpiration() Expiration {
	return Expiration{}
}

// ExpireIn expires the written key after the given duration. Durations with
// sub-second precision are sent in milliseconds, everything else in seconds.
func ExpireIn(d time.Duration) Expiration {
	return Expiration{dur: d}
}

// KeepTTL retains the lifetime already attached to the key
func KeepTTL() Expiration {
	return Expiration{keepTTL: true}
}

// render appends the expiration clause, if any
func (e Expiration) render(a *Args) {
	switch {
	case e.keepTTL:
		a.AddString("KEEPTTL")
	case e.dur <= 0:
	case e.dur < time.Second || e.dur%time.Second != 0:
		a.AddString("PX").AddInt(int64(e.dur / time.Millisecond))
	default:
		a.AddString("EX").AddInt(int64(e.dur / time.Second))
	}
}

// Aggregate selects how a set-combination command merges scores
type Aggregate uint8

const (
	// AggSum is the server default and renders no clause
	AggSum Aggregate = iota
	AggMin
	AggMax
)

// render appends the aggregate clause, if any
func (g Aggregate) render(a *Args) {
	switch g {
	case AggMin:
		a.AddString("AGGREGATE").AddString("MIN")
	case AggMax:
		a.AddString("AGGREGATE").AddString("MAX")
	}
}

// Limit restricts a range reply to count elements starting at offset. The
// zero value renders no clause.
type Limit struct {
	Offset int64
	Count  int64
}

// render appends the limit clause, if any
func (l Limit) render(a *Args) {
	if l.Count != 0 {
		a.AddString("LIMIT").AddInt(l.Offset).AddInt(l.Count)
	}
}

// --------------------------------------------------------------------------
// Range Bounds
// --------------------------------------------------------------------------
//
// Bounds render with the protocol's text encoding: an inclusive bound is the
// bare value text, an exclusive bound is the value text prefixed with '(',
// and the two infinities are the reserved characters '+' and '-' (always
// inclusive).

type boundKind uint8

const (
	boundInclusive boundKind = iota
	boundExclusive
	boundPosInf
	boundNegInf
)

// ScoreBound is one endpoint of a score range
type ScoreBound struct {
	kind  boundKind
	score float64
}

// Inclusive creates a score bound that includes the given score
func Inclusive(score float64) ScoreBound {
	return ScoreBound{kind: boundInclusive, score: score}
}

// Exclusive creates a score bound that excludes the given score
func Exclusive(score float64) ScoreBound {
	return ScoreBound{kind: boundExclusive, score: score}
}

// PositiveInfinity creates the upper unbounded score bound
func PositiveInfinity() ScoreBound {
	return ScoreBound{kind: boundPosInf}
}

// NegativeInfinity creates the lower unbounded score bound
func NegativeInfinity() ScoreBound {
	return ScoreBound{kind: boundNegInf}
}

// arg renders the bound into its single wire argument
func (b ScoreBound) arg() resp.Value {
	switch b.kind {
	case boundPosInf:
		return resp.EncodeString("+")
	case boundNegInf:
		return resp.EncodeString("-")
	case boundExclusive:
		text, _ := resp.EncodeFloat(b.score).AsString()
		return resp.EncodeString("(" + text)
	default:
		return resp.EncodeFloat(b.score)
	}
}

// LexBound is one endpoint of a lexicographic range
type LexBound struct {
	kind boundKind
	val  string
}

// LexInclusive creates a lex bound that includes the given value
func LexInclusive(val string) LexBound {
	return LexBound{kind: boundInclusive, val: val}
}

// LexExclusive creates a lex bound that excludes the given value
func LexExclusive(val string) LexBound {
	return LexBound{kind: boundExclusive, val: val}
}

// LexPositiveInfinity creates the upper unbounded lex bound
func LexPositiveInfinity() LexBound {
	return LexBound{kind: boundPosInf}
}

// LexNegativeInfinity creates the lower unbounded lex bound
func LexNegativeInfinity() LexBound {
	return LexBound{kind: boundNegInf}
}

// arg renders the bound into its single wire argument
func (b LexBound) arg() resp.Value {
	switch b.kind {
	case boundPosInf:
		return resp.EncodeString("+")
	case boundNegInf:
		return resp.EncodeString("-")
	case boundExclusive:
		return resp.EncodeString("(" + b.val)
	default:
		return resp.EncodeString(b.val)
	}
}
