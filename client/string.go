package client

import (
	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// String Commands
// --------------------------------------------------------------------------

// KV is one key-value pair for multi-set commands
type KV struct {
	Key   string
	Value []byte
}

// Set stores a key-value pair. The expiration and condition modifiers render
// in that fixed order after key and value. The boolean return value reports
// whether the write happened; it is only false when a condition was not met.
func (c *Client) Set(key string, value []byte, exp Expiration, cond SetCondition) (bool, error) {
	args := NewArgs("SET", 6)
	args.AddString(key).AddBytes(value)
	exp.render(args)
	cond.render(args)

	// a null reply means the condition was not met
	res, err := invoke(c, args.Command(), decOptStatus)
	if err != nil {
		return false, err
	}
	return res.present, nil
}

// Get returns the value for a key. The boolean return value indicates
// whether a value for the key was found.
func (c *Client) Get(key string) (value []byte, loaded bool, err error) {
	res, err := invoke(c, NewArgs("GET", 1).AddString(key).Command(), decOptBytes)
	if err != nil {
		return nil, false, err
	}
	return res.val, res.present, nil
}

// GetSet stores a new value and returns the previous one. The boolean return
// value indicates whether a previous value existed.
func (c *Client) GetSet(key string, value []byte) (old []byte, loaded bool, err error) {
	res, err := invoke(c, NewArgs("GETSET", 2).AddString(key).AddBytes(value).Command(), decOptBytes)
	if err != nil {
		return nil, false, err
	}
	return res.val, res.present, nil
}

// Append appends to the value of a key and returns the resulting length
func (c *Client) Append(key string, value []byte) (int64, error) {
	return invoke(c, NewArgs("APPEND", 2).AddString(key).AddBytes(value).Command(), decInt)
}

// StrLen returns the length of the value stored at key, 0 if absent
func (c *Client) StrLen(key string) (int64, error) {
	return invoke(c, NewArgs("STRLEN", 1).AddString(key).Command(), decInt)
}

// Incr increments the integer value of a key by one and returns the result
func (c *Client) Incr(key string) (int64, error) {
	return invoke(c, NewArgs("INCR", 1).AddString(key).Command(), decInt)
}

// IncrBy increments the integer value of a key and returns the result
func (c *Client) IncrBy(key string, delta int64) (int64, error) {
	return invoke(c, NewArgs("INCRBY", 2).AddString(key).AddInt(delta).Command(), decInt)
}

// IncrByFloat increments the float value of a key and returns the result
func (c *Client) IncrByFloat(key string, delta float64) (float64, error) {
	return invoke(c, NewArgs("INCRBYFLOAT", 2).AddString(key).AddFloat(delta).Command(), decFloat)
}

// Decr decrements the integer value of a key by one and returns the result
func (c *Client) Decr(key string) (int64, error) {
	return invoke(c, NewArgs("DECR", 1).AddString(key).Command(), decInt)
}

// DecrBy decrements the integer value of a key and returns the result
func (c *Client) DecrBy(key string, delta int64) (int64, error) {
	return invoke(c, NewArgs("DECRBY", 2).AddString(key).AddInt(delta).Command(), decInt)
}

// MSet stores multiple key-value pairs in one call. Called with no pairs it
// is a local no-op and nothing is sent.
func (c *Client) MSet(pairs ...KV) error {
	if len(pairs) == 0 {
		return nil
	}
	args := NewArgs("MSET", len(pairs)*2)
	for _, p := range pairs {
		args.AddString(p.Key).AddBytes(p.Value)
	}
	_, err := invoke(c, args.Command(), decStatus)
	return err
}

// MGet returns the values for the given keys in order. Missing keys yield a
// nil entry at their position. Called with no keys it returns an empty
// result and nothing is sent.
func (c *Client) MGet(keys ...string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	args := NewArgs("MGET", len(keys)).AddStrings(keys...)
	return invoke(c, args.Command(), decRequired(func(v resp.Value) ([][]byte, bool) {
		elems, ok := v.AsArray()
		if !ok {
			return nil, false
		}
		// misses are reported positionally, so failed elements degrade to
		// nil instead of failing the whole reply
		out := make([][]byte, len(elems))
		for i, e := range elems {
			if b, ok := e.AsBytes(); ok {
				out[i] = b
			}
		}
		return out, true
	}))
}
