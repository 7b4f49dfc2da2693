package transport

import (
	"github.com/ValentinKolb/redisc/resp"
)

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// ICommandTransport is the interface the client dispatches commands through.
// Implementations own the connection lifecycle, authentication, request
// pipelining and retries; the client core only relies on the contract that
// one sent command yields exactly one reply value.
type ICommandTransport interface {
	// Connect initializes the transport with the given configuration
	Connect(config Config) error
	// Send transmits one command and returns the server's reply value.
	// Server-side errors travel inside the reply as the error variant;
	// the returned error is reserved for transport failures.
	Send(cmd resp.Command) (resp.Value, error)
	// Close closes the transport connection
	Close() error
}

// --------------------------------------------------------------------------
// Transport Configuration
// --------------------------------------------------------------------------

// Config holds the connection parameters handed to a transport. The client
// core treats it as opaque.
type Config struct {
	// Endpoints lists the server addresses. Transports that support load
	// balancing may use more than the first entry.
	Endpoints []string

	// TimeoutSecond is the per-request timeout in seconds
	TimeoutSecond int64

	// Retries is how many times a transport may retry a failed request.
	// Retry policy is owned entirely by the transport.
	Retries int
}
