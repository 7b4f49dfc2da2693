package inmem

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ValentinKolb/redisc/resp"
	"github.com/ValentinKolb/redisc/transport"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var Logger = logger.GetLogger("transport/inmem")

// --------------------------------------------------------------------------
// Handler Types
// --------------------------------------------------------------------------

// HandlerFunc produces the reply value for one command invocation
type HandlerFunc func(args []resp.Value) resp.Value

// --------------------------------------------------------------------------
// In-Memory Transport
// --------------------------------------------------------------------------

// Transport is an in-process ICommandTransport backed by scripted handlers,
// one per command keyword. It records every sent command so tests can assert
// on the exact argument vectors the client produced. Commands without a
// registered handler are answered with a wire error, the same way a server
// rejects unknown commands.
//
// A Transport is safe for concurrent use.
type Transport struct {
	handlers *xsync.MapOf[string, HandlerFunc]

	callsMu   sync.Mutex
	calls     []resp.Command
	recording bool
}

// New creates a new in-memory transport with no handlers registered and
// call recording enabled
func New() *Transport {
	return &Transport{
		handlers:  xsync.NewMapOf[string, HandlerFunc](),
		recording: true,
	}
}

// SetRecording toggles call recording. Benchmarks disable it so the call
// log does not grow without bound.
func (t *Transport) SetRecording(on bool) {
	t.callsMu.Lock()
	t.recording = on
	t.callsMu.Unlock()
}

// Handle registers (or replaces) the handler for a command keyword.
// Keywords are matched case-insensitively.
func (t *Transport) Handle(name string, fn HandlerFunc) {
	t.handlers.Store(strings.ToUpper(name), fn)
}

// Reply registers a handler that answers every invocation of the keyword
// with the same fixed value
func (t *Transport) Reply(name string, v resp.Value) {
	t.Handle(name, func([]resp.Value) resp.Value { return v })
}

// Calls returns a copy of all commands sent so far, in order
func (t *Transport) Calls() []resp.Command {
	t.callsMu.Lock()
	defer t.callsMu.Unlock()
	out := make([]resp.Command, len(t.calls))
	copy(out, t.calls)
	return out
}

// CallsFor returns all sent commands with the given keyword
func (t *Transport) CallsFor(name string) []resp.Command {
	name = strings.ToUpper(name)
	var out []resp.Command
	for _, c := range t.Calls() {
		if strings.ToUpper(c.Name) == name {
			out = append(out, c)
		}
	}
	return out
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.ICommandTransport)
// --------------------------------------------------------------------------

func (t *Transport) Connect(_ transport.Config) error {
	return nil
}

func (t *Transport) Send(cmd resp.Command) (resp.Value, error) {
	t.callsMu.Lock()
	if t.recording {
		t.calls = append(t.calls, cmd)
	}
	t.callsMu.Unlock()

	fn, ok := t.handlers.Load(strings.ToUpper(cmd.Name))
	if !ok {
		Logger.Debugf("no handler for command %q", cmd.Name)
		return resp.NewError(fmt.Sprintf("ERR unknown command '%s'", cmd.Name)), nil
	}
	return fn(cmd.Args), nil
}

func (t *Transport) Close() error {
	return nil
}
