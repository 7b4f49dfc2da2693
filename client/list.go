package client

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// List Commands
// --------------------------------------------------------------------------

// LPush prepends values to the list at key and returns the resulting length.
// Called with no values it returns 0 and nothing is sent.
func (c *Client) LPush(key string, values ...string) (int64, error) {
	return c.push("LPUSH", key, values)
}

// RPush appends values to the list at key and returns the resulting length.
// Called with no values it returns 0 and nothing is sent.
func (c *Client) RPush(key string, values ...string) (int64, error) {
	return c.push("RPUSH", key, values)
}

// push is the shared pipeline of the push commands
func (c *Client) push(name, key string, values []string) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	args := NewArgs(name, 1+len(values)).AddString(key).AddStrings(values...)
	return invoke(c, args.Command(), decInt)
}

// LPop removes and returns the first element of the list at key. The boolean
// return value indicates whether the list was non-empty.
func (c *Client) LPop(key string) (value string, loaded bool, err error) {
	return c.pop("LPOP", key)
}

// RPop removes and returns the last element of the list at key. The boolean
// return value indicates whether the list was non-empty.
func (c *Client) RPop(key string) (value string, loaded bool, err error) {
	return c.pop("RPOP", key)
}

// pop is the shared pipeline of the non-blocking pop commands
func (c *Client) pop(name, key string) (string, bool, error) {
	res, err := invoke(c, NewArgs(name, 1).AddString(key).Command(), decOptString)
	if err != nil {
		return "", false, err
	}
	return res.val, res.present, nil
}

// LLen returns the length of the list at key, 0 if absent
func (c *Client) LLen(key string) (int64, error) {
	return invoke(c, NewArgs("LLEN", 1).AddString(key).Command(), decInt)
}

// LRange returns the elements between start and stop (inclusive, negative
// indexes count from the end)
func (c *Client) LRange(key string, start, stop int64) ([]string, error) {
	return invoke(c, NewArgs("LRANGE", 3).AddString(key).AddInt(start).AddInt(stop).Command(), decStrings)
}

// LIndex returns the element at the given index. The boolean return value
// indicates whether the index was within range.
func (c *Client) LIndex(key string, index int64) (value string, loaded bool, err error) {
	res, err := invoke(c, NewArgs("LINDEX", 2).AddString(key).AddInt(index).Command(), decOptString)
	if err != nil {
		return "", false, err
	}
	return res.val, res.present, nil
}

// LSet overwrites the element at the given index
func (c *Client) LSet(key string, index int64, value string) error {
	_, err := invoke(c, NewArgs("LSET", 3).AddString(key).AddInt(index).AddString(value).Command(), decStatus)
	return err
}

// LRem removes up to count occurrences of value from the list at key and
// returns how many were removed. A negative count removes from the tail, a
// zero count removes all occurrences.
func (c *Client) LRem(key string, count int64, value string) (int64, error) {
	return invoke(c, NewArgs("LREM", 3).AddString(key).AddInt(count).AddString(value).Command(), decInt)
}

// LTrim trims the list at key to the elements between start and stop
func (c *Client) LTrim(key string, start, stop int64) error {
	_, err := invoke(c, NewArgs("LTRIM", 3).AddString(key).AddInt(start).AddInt(stop).Command(), decStatus)
	return err
}

// --------------------------------------------------------------------------
// Blocking Pop Commands
// --------------------------------------------------------------------------

// decKeyValue decodes the two-element key-plus-value reply of a successful
// blocking pop; a null reply means the wait timed out
func decKeyValue(v resp.Value) (opt[resp.Pair[string, string]], error) {
	if v.IsNull() {
		return opt[resp.Pair[string, string]]{}, nil
	}
	elems, ok := v.AsArray()
	if !ok || len(elems) != 2 {
		return opt[resp.Pair[string, string]]{}, NewError(RetCProtocol, fmt.Sprintf("unexpected blocking pop reply %s", v))
	}
	key, okKey := elems[0].AsString()
	val, okVal := elems[1].AsString()
	if !okKey || !okVal {
		return opt[resp.Pair[string, string]]{}, NewError(RetCProtocol, fmt.Sprintf("unexpected blocking pop reply %s", v))
	}
	return opt[resp.Pair[string, string]]{val: resp.Pair[string, string]{Key: key, Val: val}, present: true}, nil
}

// BLPop waits up to timeout for an element to appear at the head of any of
// the given lists. The timeout is a protocol argument sent to the server in
// whole seconds (zero blocks indefinitely), not a local cancellation. The
// boolean return value is false when the wait timed out. Called with no keys
// it returns a miss and nothing is sent.
func (c *Client) BLPop(timeout time.Duration, keys ...string) (key, value string, loaded bool, err error) {
	return c.blockingPop("BLPOP", timeout, keys)
}

// BRPop is BLPop for the tails of the given lists
func (c *Client) BRPop(timeout time.Duration, keys ...string) (key, value string, loaded bool, err error) {
	return c.blockingPop("BRPOP", timeout, keys)
}

// blockingPop is the shared pipeline of the blocking pop commands
func (c *Client) blockingPop(name string, timeout time.Duration, keys []string) (string, string, bool, error) {
	if len(keys) == 0 {
		return "", "", false, nil
	}
	args := NewArgs(name, len(keys)+1).AddStrings(keys...).AddInt(int64(timeout / time.Second))
	res, err := invoke(c, args.Command(), decKeyValue)
	if err != nil {
		return "", "", false, err
	}
	return res.val.Key, res.val.Val, res.present, nil
}
