package client

import (
	"fmt"

	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// Connection and Pub/Sub Commands
// --------------------------------------------------------------------------
//
// Subscription state and message framing are owned by the transport; this
// layer only covers the request/reply shaped part of the pub/sub surface.

// Ping checks the connection and returns the server's reply text. On a
// connection in subscribe mode the server answers with a two-element array
// instead of a plain string; both shapes are accepted and normalized here.
func (c *Client) Ping() (string, error) {
	return invoke(c, NewArgs("PING", 0).Command(), func(v resp.Value) (string, error) {
		if s, ok := v.AsString(); ok {
			return s, nil
		}
		if elems, ok := v.AsArray(); ok && len(elems) == 2 {
			if s, ok := elems[0].AsString(); ok {
				return s, nil
			}
		}
		return "", NewError(RetCProtocol, fmt.Sprintf("unexpected ping reply %s", v))
	})
}

// Echo returns the given message unchanged
func (c *Client) Echo(message string) (string, error) {
	return invoke(c, NewArgs("ECHO", 1).AddString(message).Command(), decStatus)
}

// Publish sends a message to a channel and returns the number of subscribers
// that received it
func (c *Client) Publish(channel string, message []byte) (int64, error) {
	return invoke(c, NewArgs("PUBLISH", 2).AddString(channel).AddBytes(message).Command(), decInt)
}

// PubSubChannels returns the active channels matching the given glob
// pattern. An empty pattern renders no argument and lists every channel.
func (c *Client) PubSubChannels(pattern string) ([]string, error) {
	args := NewArgs("PUBSUB", 2).AddString("CHANNELS")
	if pattern != "" {
		args.AddString(pattern)
	}
	return invoke(c, args.Command(), decStrings)
}

// PubSubNumSub returns the subscriber count per channel, in the requested
// order. The flat reply alternates channel then count. Called with no
// channels it returns an empty result and nothing is sent.
func (c *Client) PubSubNumSub(channels ...string) ([]resp.Pair[string, int64], error) {
	if len(channels) == 0 {
		return nil, nil
	}
	args := NewArgs("PUBSUB", 1+len(channels)).AddString("NUMSUB").AddStrings(channels...)
	return invoke(c, args.Command(), decPairs(resp.DecodeString, resp.DecodeInt, resp.OrderKeyValue))
}
