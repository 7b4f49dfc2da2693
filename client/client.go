package client

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/redisc/resp"
	"github.com/ValentinKolb/redisc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("client")

// --------------------------------------------------------------------------
// Client
// --------------------------------------------------------------------------

// Client is the typed command API over an injected transport. It is
// stateless apart from the transport handle: every command builds a fresh
// request, sends it, and decodes exactly one reply.
type Client struct {
	transport transport.ICommandTransport
	config    transport.Config
}

// New creates a new client over the given transport.
// The function connects the transport with the given configuration and
// returns the client and an error if the connection fails.
func New(t transport.ICommandTransport, config transport.Config) (*Client, error) {
	if err := t.Connect(config); err != nil {
		return nil, err
	}
	return &Client{transport: t, config: config}, nil
}

// Close closes the underlying transport
func (c *Client) Close() error {
	return c.transport.Close()
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCTransport:
		errorCode = "Transport"
	case RetCServer:
		errorCode = "Server"
	case RetCProtocol:
		errorCode = "Protocol"
	case RetCInvalidArgument:
		errorCode = "InvalidArgument"
	default:
		errorCode = "Unknown"
	}
	return fmt.Sprintf("ClientError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess         RetCode = iota // 0: Command executed successfully.
	RetCTransport                      // 1: Transport failure, the command may not have reached the server.
	RetCServer                         // 2: The server answered with its error variant.
	RetCProtocol                       // 3: The reply shape violates the command's contract.
	RetCInvalidArgument                // 4: Malformed argument composition, detected locally.
)

// --------------------------------------------------------------------------
// Generic Dispatch Pipeline
// --------------------------------------------------------------------------

// decoder converts one reply value into the command's typed result. A
// decoder is only invoked on non-error replies; it reports contract
// violations through its error return value.
type decoder[T any] func(resp.Value) (T, error)

// invoke is the generic call pipeline every command method reduces to:
// send the built command through the transport, short-circuit on
// server-reported errors regardless of the requested result type, then run
// the command's decoder on the reply.
func invoke[T any](c *Client, cmd resp.Command, dec decoder[T]) (T, error) {
	var zero T

	start := time.Now()
	reply, err := c.transport.Send(cmd)
	requestDuration(cmd.Name).UpdateDuration(start)
	requestsTotal(cmd.Name).Inc()

	if err != nil {
		errorsTotal(cmd.Name).Inc()
		return zero, NewError(RetCTransport, fmt.Sprintf("send %s: %v", cmd.Name, err))
	}

	if msg, isErr := reply.AsError(); isErr {
		errorsTotal(cmd.Name).Inc()
		return zero, NewError(RetCServer, msg)
	}

	res, err := dec(reply)
	if err != nil {
		errorsTotal(cmd.Name).Inc()
		Logger.Warningf("command %s: %v", cmd.Name, err)
		return zero, err
	}
	return res, nil
}

// --------------------------------------------------------------------------
// Reply Decoders
// --------------------------------------------------------------------------

// opt carries a legitimately absent reply, distinguishing a lookup miss
// from the zero value
type opt[T any] struct {
	val     T
	present bool
}

// decRequired decodes a reply that the command contract defines as always
// present on success. An absent or mismatched reply is therefore a protocol
// contract violation, not an ordinary miss.
func decRequired[T any](dec resp.FromWire[T]) decoder[T] {
	return func(v resp.Value) (T, error) {
		res, ok := dec(v)
		if !ok {
			var zero T
			return zero, NewError(RetCProtocol, fmt.Sprintf("unexpected reply %s", v))
		}
		return res, nil
	}
}

// decOptional decodes a reply that may legitimately be null (lookup miss,
// field missing). Only a present-but-unconvertible reply is a violation.
func decOptional[T any](dec resp.FromWire[T]) decoder[opt[T]] {
	return func(v resp.Value) (opt[T], error) {
		if v.IsNull() {
			return opt[T]{}, nil
		}
		res, ok := dec(v)
		if !ok {
			return opt[T]{}, NewError(RetCProtocol, fmt.Sprintf("unexpected reply %s", v))
		}
		return opt[T]{val: res, present: true}, nil
	}
}

// decPairs decodes a flat grouped reply into typed pairs, escalating the
// conversion layer's structural errors to protocol errors
func decPairs[K, V any](decKey resp.FromWire[K], decVal resp.FromWire[V], order resp.PairOrder) decoder[[]resp.Pair[K, V]] {
	return func(v resp.Value) ([]resp.Pair[K, V], error) {
		pairs, err := resp.DecodePairs(v, decKey, decVal, order)
		if err != nil {
			return nil, NewError(RetCProtocol, fmt.Sprintf("grouped reply: %v", err))
		}
		if pairs == nil {
			return nil, NewError(RetCProtocol, fmt.Sprintf("unexpected element in grouped reply %s", v))
		}
		return pairs, nil
	}
}

// common scalar decoders
var (
	decInt     = decRequired(resp.DecodeInt)
	decFloat   = decRequired(resp.DecodeFloat)
	decBool    = decRequired(resp.DecodeBool)
	decStatus  = decRequired(resp.DecodeString)
	decStrings = decRequired(func(v resp.Value) ([]string, bool) {
		return resp.DecodeSlice(v, resp.DecodeString)
	})
	decOptBytes  = decOptional(resp.DecodeBytes)
	decOptString = decOptional(resp.DecodeString)
	decOptFloat  = decOptional(resp.DecodeFloat)
	decOptInt    = decOptional(resp.DecodeInt)
	decOptStatus = decOptional(resp.DecodeString)
)
