package client

import (
	"fmt"

	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// Sorted Set Commands
// --------------------------------------------------------------------------

// Z is one member with its score
type Z struct {
	Member string
	Score  float64
}

// decMemberScores decodes the flat member-then-score reply of the WITHSCORES
// range commands
var decMemberScores = decPairs(resp.DecodeString, resp.DecodeFloat, resp.OrderKeyValue)

// ZAdd adds members with their scores to the sorted set at key and returns
// how many were newly added. The condition restricts the write to new (NX)
// or existing (XX) members. Called with no members it returns 0 and nothing
// is sent.
func (c *Client) ZAdd(key string, cond SetCondition, members ...Z) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	args := NewArgs("ZADD", 2+len(members)*2).AddString(key)
	cond.render(args)
	for _, m := range members {
		args.AddFloat(m.Score).AddString(m.Member)
	}
	return invoke(c, args.Command(), decInt)
}

// ZScore returns the score of a member. The boolean return value indicates
// whether the member was found.
func (c *Client) ZScore(key, member string) (score float64, loaded bool, err error) {
	res, err := invoke(c, NewArgs("ZSCORE", 2).AddString(key).AddString(member).Command(), decOptFloat)
	if err != nil {
		return 0, false, err
	}
	return res.val, res.present, nil
}

// ZIncrBy increments the score of a member and returns the new score
func (c *Client) ZIncrBy(key string, delta float64, member string) (float64, error) {
	return invoke(c, NewArgs("ZINCRBY", 3).AddString(key).AddFloat(delta).AddString(member).Command(), decFloat)
}

// ZCard returns the number of members in the sorted set at key, 0 if absent
func (c *Client) ZCard(key string) (int64, error) {
	return invoke(c, NewArgs("ZCARD", 1).AddString(key).Command(), decInt)
}

// ZCount returns how many members have a score within the given bounds
func (c *Client) ZCount(key string, min, max ScoreBound) (int64, error) {
	return invoke(c, NewArgs("ZCOUNT", 3).AddString(key).Add(min.arg()).Add(max.arg()).Command(), decInt)
}

// ZRem removes members from the sorted set at key and returns how many
// existed. Called with no members it returns 0 and nothing is sent.
func (c *Client) ZRem(key string, members ...string) (int64, error) {
	if len(members) == 0 {
		return 0, nil
	}
	args := NewArgs("ZREM", 1+len(members)).AddString(key).AddStrings(members...)
	return invoke(c, args.Command(), decInt)
}

// ZRank returns the ascending rank of a member. The boolean return value
// indicates whether the member was found.
func (c *Client) ZRank(key, member string) (rank int64, loaded bool, err error) {
	return c.zRank("ZRANK", key, member)
}

// ZRevRank returns the descending rank of a member. The boolean return value
// indicates whether the member was found.
func (c *Client) ZRevRank(key, member string) (rank int64, loaded bool, err error) {
	return c.zRank("ZREVRANK", key, member)
}

// zRank is the shared pipeline of the rank queries
func (c *Client) zRank(name, key, member string) (int64, bool, error) {
	res, err := invoke(c, NewArgs(name, 2).AddString(key).AddString(member).Command(), decOptInt)
	if err != nil {
		return 0, false, err
	}
	return res.val, res.present, nil
}

// ZRange returns the members with ascending rank between start and stop
// (inclusive, negative indexes count from the end)
func (c *Client) ZRange(key string, start, stop int64) ([]string, error) {
	return invoke(c, NewArgs("ZRANGE", 3).AddString(key).AddInt(start).AddInt(stop).Command(), decStrings)
}

// ZRangeWithScores is ZRange with each member paired with its score
func (c *Client) ZRangeWithScores(key string, start, stop int64) ([]resp.Pair[string, float64], error) {
	args := NewArgs("ZRANGE", 4).AddString(key).AddInt(start).AddInt(stop).AddString("WITHSCORES")
	return invoke(c, args.Command(), decMemberScores)
}

// ZRevRange returns the members with descending rank between start and stop
func (c *Client) ZRevRange(key string, start, stop int64) ([]string, error) {
	return invoke(c, NewArgs("ZREVRANGE", 3).AddString(key).AddInt(start).AddInt(stop).Command(), decStrings)
}

// ZRangeByScore returns the members with a score within the given bounds,
// optionally restricted by a limit clause
func (c *Client) ZRangeByScore(key string, min, max ScoreBound, limit Limit) ([]string, error) {
	args := NewArgs("ZRANGEBYSCORE", 6).AddString(key).Add(min.arg()).Add(max.arg())
	limit.render(args)
	return invoke(c, args.Command(), decStrings)
}

// ZRangeByLex returns the members lexicographically within the given bounds,
// optionally restricted by a limit clause
func (c *Client) ZRangeByLex(key string, min, max LexBound, limit Limit) ([]string, error) {
	args := NewArgs("ZRANGEBYLEX", 6).AddString(key).Add(min.arg()).Add(max.arg())
	limit.render(args)
	return invoke(c, args.Command(), decStrings)
}

// ZUnionStore stores the union of the source sorted sets at dest and returns
// the result's cardinality. Weights must either be empty or match the number
// of sources; the aggregate selects how colliding scores merge. Called with
// no sources it returns 0 and nothing is sent.
func (c *Client) ZUnionStore(dest string, keys []string, weights []float64, agg Aggregate) (int64, error) {
	return c.zCombineStore("ZUNIONSTORE", dest, keys, weights, agg)
}

// ZInterStore stores the intersection of the source sorted sets at dest and
// returns the result's cardinality. Weights must either be empty or match
// the number of sources; the aggregate selects how colliding scores merge.
// Called with no sources it returns 0 and nothing is sent.
func (c *Client) ZInterStore(dest string, keys []string, weights []float64, agg Aggregate) (int64, error) {
	return c.zCombineStore("ZINTERSTORE", dest, keys, weights, agg)
}

// zCombineStore is the shared pipeline of the storing sorted-set
// combinations. The weight count is validated locally before anything is
// sent.
func (c *Client) zCombineStore(name, dest string, keys []string, weights []float64, agg Aggregate) (int64, error) {
	if len(weights) > 0 && len(weights) != len(keys) {
		return 0, NewError(RetCInvalidArgument,
			fmt.Sprintf("%s: %d weights for %d source keys", name, len(weights), len(keys)))
	}
	if len(keys) == 0 {
		return 0, nil
	}

	args := NewArgs(name, 2+len(keys)+1+len(weights)+2)
	args.AddString(dest).AddInt(int64(len(keys))).AddStrings(keys...)
	if len(weights) > 0 {
		args.AddString("WEIGHTS")
		for _, w := range weights {
			args.AddFloat(w)
		}
	}
	agg.render(args)
	return invoke(c, args.Command(), decInt)
}
