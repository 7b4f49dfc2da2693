package client

// --------------------------------------------------------------------------
// Set Commands
// --------------------------------------------------------------------------

// SAdd adds members to the set at key and returns how many were newly added.
// Called with no members it returns 0 and nothing is sent.
func (c *Client) SAdd(key string, members ...string) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	args := NewArgs("SADD", 1+len(members)).AddString(key).AddStrings(members...)
	return invoke(c, args.Command(), decInt)
}

// SRem removes members from the set at key and returns how many existed.
// Called with no members it returns 0 and nothing is sent.
func (c *Client) SRem(key string, members ...string) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	args := NewArgs("SREM", 1+len(members)).AddString(key).AddStrings(members...)
	return invoke(c, args.Command(), decInt)
}

// SCard returns the number of members in the set at key, 0 if absent
func (c *Client) SCard(key string) (int64, error) {
	return invoke(c, NewArgs("SCARD", 1).AddString(key).Command(), decInt)
}

// SIsMember reports whether member is in the set at key
func (c *Client) SIsMember(key, member string) (bool, error) {
	return invoke(c, NewArgs("SISMEMBER", 2).AddString(key).AddString(member).Command(), decBool)
}

// SMembers returns all members of the set at key
func (c *Client) SMembers(key string) ([]string, error) {
	return invoke(c, NewArgs("SMEMBERS", 1).AddString(key).Command(), decStrings)
}

// SPop removes and returns one random member of the set at key. The boolean
// return value indicates whether the set was non-empty.
func (c *Client) SPop(key string) (member string, loaded bool, err error) {
	res, err := invoke(c, NewArgs("SPOP", 1).AddString(key).Command(), decOptString)
	if err != nil {
		return "", false, err
	}
	return res.val, res.present, nil
}

// SUnion returns the union of the sets at the given keys. Called with no
// keys it returns an empty result and nothing is sent.
func (c *Client) SUnion(keys ...string) ([]string, error) {
	return c.setCombine("SUNION", keys)
}

// SInter returns the intersection of the sets at the given keys. Called with
// no keys it returns an empty result and nothing is sent.
func (c *Client) SInter(keys ...string) ([]string, error) {
	return c.setCombine("SINTER", keys)
}

// SDiff returns the difference of the first set against the remaining ones.
// Called with no keys it returns an empty result and nothing is sent.
func (c *Client) SDiff(keys ...string) ([]string, error) {
	return c.setCombine("SDIFF", keys)
}

// SUnionStore stores the union of the source sets at dest and returns the
// result's cardinality. Called with no sources it returns 0 and nothing is
// sent.
func (c *Client) SUnionStore(dest string, keys ...string) (int64, error) {
	return c.setCombineStore("SUNIONSTORE", dest, keys)
}

// SInterStore stores the intersection of the source sets at dest and returns
// the result's cardinality. Called with no sources it returns 0 and nothing
// is sent.
func (c *Client) SInterStore(dest string, keys ...string) (int64, error) {
	return c.setCombineStore("SINTERSTORE", dest, keys)
}

// SDiffStore stores the difference of the source sets at dest and returns
// the result's cardinality. Called with no sources it returns 0 and nothing
// is sent.
func (c *Client) SDiffStore(dest string, keys ...string) (int64, error) {
	return c.setCombineStore("SDIFFSTORE", dest, keys)
}

// setCombine is the shared pipeline of the set-combination queries
func (c *Client) setCombine(name string, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	args := NewArgs(name, len(keys)).AddStrings(keys...)
	return invoke(c, args.Command(), decStrings)
}

// setCombineStore is the shared pipeline of the storing set combinations
func (c *Client) setCombineStore(name, dest string, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	args := NewArgs(name, 1+len(keys)).AddString(dest).AddStrings(keys...)
	return invoke(c, args.Command(), decInt)
}
