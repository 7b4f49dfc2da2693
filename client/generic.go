package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// Key Lifetime
// --------------------------------------------------------------------------

// LifetimeState is the tri-state result of a TTL-style query
type LifetimeState uint8

const (
	// LifetimeMissing means the key does not exist (wire reply -2)
	LifetimeMissing LifetimeState = iota
	// LifetimeUnlimited means the key exists without expiry (wire reply -1)
	LifetimeUnlimited
	// LifetimeLimited means the key expires after the carried duration
	LifetimeLimited
)

// Lifetime is the decoded reply of a TTL-style command
type Lifetime struct {
	state LifetimeState
	dur   time.Duration
}

// State returns the lifetime's tri-state classification
func (l Lifetime) State() LifetimeState {
	return l.state
}

// Duration returns the remaining lifetime. The boolean return value is only
// true for the limited state.
func (l Lifetime) Duration() (time.Duration, bool) {
	if l.state != LifetimeLimited {
		return 0, false
	}
	return l.dur, true
}

// decLifetime decodes the reserved TTL reply values -2 (key absent) and -1
// (no expiry); any other negative integer violates the contract
func decLifetime(unit time.Duration) decoder[Lifetime] {
	return func(v resp.Value) (Lifetime, error) {
		n, ok := resp.DecodeInt(v)
		if !ok {
			return Lifetime{}, NewError(RetCProtocol, fmt.Sprintf("unexpected lifetime reply %s", v))
		}
		switch {
		case n == -2:
			return Lifetime{state: LifetimeMissing}, nil
		case n == -1:
			return Lifetime{state: LifetimeUnlimited}, nil
		case n < 0:
			return Lifetime{}, NewError(RetCProtocol, fmt.Sprintf("reserved lifetime reply %d", n))
		default:
			return Lifetime{state: LifetimeLimited, dur: time.Duration(n) * unit}, nil
		}
	}
}

// --------------------------------------------------------------------------
// Key Management Commands
// --------------------------------------------------------------------------

// Del deletes the given keys and returns how many existed. Called with no
// keys it returns 0 and nothing is sent.
func (c *Client) Del(keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	args := NewArgs("DEL", len(keys)).AddStrings(keys...)
	return invoke(c, args.Command(), decInt)
}

// Exists returns how many of the given keys exist, counting duplicates.
// Called with no keys it returns 0 and nothing is sent.
func (c *Client) Exists(keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	args := NewArgs("EXISTS", len(keys)).AddStrings(keys...)
	return invoke(c, args.Command(), decInt)
}

// Expire attaches a lifetime to a key. The boolean return value reports
// whether the key existed.
func (c *Client) Expire(key string, ttl time.Duration) (bool, error) {
	return invoke(c, NewArgs("EXPIRE", 2).AddString(key).AddInt(int64(ttl/time.Second)).Command(), decBool)
}

// ExpireAt attaches an absolute expiry timestamp to a key. The boolean
// return value reports whether the key existed.
func (c *Client) ExpireAt(key string, at time.Time) (bool, error) {
	return invoke(c, NewArgs("EXPIREAT", 2).AddString(key).AddInt(at.Unix()).Command(), decBool)
}

// Persist removes the lifetime from a key. The boolean return value reports
// whether a lifetime was removed.
func (c *Client) Persist(key string) (bool, error) {
	return invoke(c, NewArgs("PERSIST", 1).AddString(key).Command(), decBool)
}

// TTL returns the key's lifetime with second resolution
func (c *Client) TTL(key string) (Lifetime, error) {
	return invoke(c, NewArgs("TTL", 1).AddString(key).Command(), decLifetime(time.Second))
}

// PTTL returns the key's lifetime with millisecond resolution
func (c *Client) PTTL(key string) (Lifetime, error) {
	return invoke(c, NewArgs("PTTL", 1).AddString(key).Command(), decLifetime(time.Millisecond))
}

// Type returns the storage type of the value at key ("string", "hash", ...)
func (c *Client) Type(key string) (string, error) {
	return invoke(c, NewArgs("TYPE", 1).AddString(key).Command(), decStatus)
}

// Rename renames a key, overwriting the destination if it exists
func (c *Client) Rename(key, newKey string) error {
	_, err := invoke(c, NewArgs("RENAME", 2).AddString(key).AddString(newKey).Command(), decStatus)
	return err
}

// Keys returns all keys matching the given glob pattern
func (c *Client) Keys(pattern string) ([]string, error) {
	return invoke(c, NewArgs("KEYS", 1).AddString(pattern).Command(), decStrings)
}

// --------------------------------------------------------------------------
// Cursor Iteration
// --------------------------------------------------------------------------

// scanPage is the split form of the combined cursor-plus-results reply
type scanPage struct {
	cursor uint64
	elems  []resp.Value
}

// decScan splits the two-element scan reply into its cursor and result
// parts; everything about the shape is contractually guaranteed
func decScan(v resp.Value) (scanPage, error) {
	elems, ok := v.AsArray()
	if !ok || len(elems) != 2 {
		return scanPage{}, NewError(RetCProtocol, fmt.Sprintf("unexpected scan reply %s", v))
	}
	text, ok := elems[0].AsString()
	if !ok {
		return scanPage{}, NewError(RetCProtocol, fmt.Sprintf("unexpected scan cursor %s", elems[0]))
	}
	cursor, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return scanPage{}, NewError(RetCProtocol, fmt.Sprintf("malformed scan cursor %q", text))
	}
	items, ok := elems[1].AsArray()
	if !ok {
		return scanPage{}, NewError(RetCProtocol, fmt.Sprintf("unexpected scan result %s", elems[1]))
	}
	return scanPage{cursor: cursor, elems: items}, nil
}

// scanArgs builds the shared argument tail of the scan family
func scanArgs(args *Args, cursor uint64, match string, count int64) *Args {
	args.AddString(strconv.FormatUint(cursor, 10))
	if match != "" {
		args.AddString("MATCH").AddString(match)
	}
	if count > 0 {
		args.AddString("COUNT").AddInt(count)
	}
	return args
}

// Scan iterates the key space. It returns the next cursor and one page of
// keys; iteration is complete when the returned cursor is 0. An empty match
// pattern and a non-positive count render no clause.
func (c *Client) Scan(cursor uint64, match string, count int64) (uint64, []string, error) {
	page, err := invoke(c, scanArgs(NewArgs("SCAN", 5), cursor, match, count).Command(), decScan)
	if err != nil {
		return 0, nil, err
	}
	keys, ok := resp.DecodeSlice(resp.NewArray(page.elems...), resp.DecodeString)
	if !ok {
		return 0, nil, NewError(RetCProtocol, "unexpected element in scan result")
	}
	return page.cursor, keys, nil
}
