package client

import (
	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// Hash Commands
// --------------------------------------------------------------------------

// FV is one field-value pair for multi-field hash commands
type FV struct {
	Field string
	Value []byte
}

// HSet stores field-value pairs in the hash at key and returns the number of
// fields that were newly created. Called with no pairs it returns 0 and
// nothing is sent.
func (c *Client) HSet(key string, pairs ...FV) (int64, error) {
	if len(pairs) == 0 {
		return 0, nil
	}
	args := NewArgs("HSET", 1+len(pairs)*2).AddString(key)
	for _, p := range pairs {
		args.AddString(p.Field).AddBytes(p.Value)
	}
	return invoke(c, args.Command(), decInt)
}

// HGet returns the value of a hash field. The boolean return value indicates
// whether the field was found.
func (c *Client) HGet(key, field string) (value []byte, loaded bool, err error) {
	res, err := invoke(c, NewArgs("HGET", 2).AddString(key).AddString(field).Command(), decOptBytes)
	if err != nil {
		return nil, false, err
	}
	return res.val, res.present, nil
}

// HMGet returns the values of the given hash fields in order. Missing fields
// yield a nil entry at their position. Called with no fields it returns an
// empty result and nothing is sent.
func (c *Client) HMGet(key string, fields ...string) ([]*string, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	args := NewArgs("HMGET", 1+len(fields)).AddString(key).AddStrings(fields...)
	return invoke(c, args.Command(), decRequired(func(v resp.Value) ([]*string, bool) {
		return resp.DecodeOptionals(v, resp.DecodeString)
	}))
}

// HGetAll returns all field-value pairs of the hash at key, in the server's
// order. The flat reply alternates field then value.
func (c *Client) HGetAll(key string) ([]resp.Pair[string, string], error) {
	return invoke(c, NewArgs("HGETALL", 1).AddString(key).Command(),
		decPairs(resp.DecodeString, resp.DecodeString, resp.OrderKeyValue))
}

// HDel deletes the given hash fields and returns how many existed. Called
// with no fields it returns 0 and nothing is sent.
func (c *Client) HDel(key string, fields ...string) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	args := NewArgs("HDEL", 1+len(fields)).AddString(key).AddStrings(fields...)
	return invoke(c, args.Command(), decInt)
}

// HLen returns the number of fields in the hash at key, 0 if absent
func (c *Client) HLen(key string) (int64, error) {
	return invoke(c, NewArgs("HLEN", 1).AddString(key).Command(), decInt)
}

// HExists reports whether the hash at key contains the field
func (c *Client) HExists(key, field string) (bool, error) {
	return invoke(c, NewArgs("HEXISTS", 2).AddString(key).AddString(field).Command(), decBool)
}

// HIncrBy increments the integer value of a hash field and returns the
// result
func (c *Client) HIncrBy(key, field string, delta int64) (int64, error) {
	return invoke(c, NewArgs("HINCRBY", 3).AddString(key).AddString(field).AddInt(delta).Command(), decInt)
}

// HKeys returns all field names of the hash at key
func (c *Client) HKeys(key string) ([]string, error) {
	return invoke(c, NewArgs("HKEYS", 1).AddString(key).Command(), decStrings)
}

// HVals returns all values of the hash at key
func (c *Client) HVals(key string) ([]string, error) {
	return invoke(c, NewArgs("HVALS", 1).AddString(key).Command(), decStrings)
}

// HScan iterates the hash at key. It returns the next cursor and one page of
// field-value pairs; iteration is complete when the returned cursor is 0.
func (c *Client) HScan(key string, cursor uint64, match string, count int64) (uint64, []resp.Pair[string, string], error) {
	args := scanArgs(NewArgs("HSCAN", 6).AddString(key), cursor, match, count)
	page, err := invoke(c, args.Command(), decScan)
	if err != nil {
		return 0, nil, err
	}
	pairs, err := resp.DecodePairs(resp.NewArray(page.elems...), resp.DecodeString, resp.DecodeString, resp.OrderKeyValue)
	if err != nil || pairs == nil {
		return 0, nil, NewError(RetCProtocol, "unexpected element in hash scan result")
	}
	return page.cursor, pairs, nil
}
