/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

// Package socket defines the host-facing surface of the proactor engine:
// the Server lifecycle, the opaque Conn handle passed to a HandlerFunc, and
// the small set of constants and helpers every transport implementation
// (currently socket/server/tcp) shares.
package socket

import (
	"context"
	"net"
	"strings"
)

// DefaultBufferSize is the capacity of the inline buffer each pending Read
// operation reads into. It is not a framing unit: a payload larger than
// this arrives to the handler split across multiple callback invocations.
const DefaultBufferSize = 4096

// Conn is the opaque handle a HandlerFunc receives in place of the
// underlying socket. It must not be retained by the host beyond the
// call that received it — the engine remains its sole owner.
type Conn interface {
	// ID identifies the connection for the lifetime of the process.
	ID() string
	RemoteAddr() net.Addr
	LocalAddr() net.Addr
}

// HandlerFunc is the host callback boundary. data points into the engine's
// inline read buffer for this connection; the handler may read it and
// mutate it in place but must not retain the slice past the call.
//
// The return value selects the engine's next action: a non-negative n
// posts a Write of data[:n] back to the peer (an n larger than len(data)
// is capped to len(data)); a negative value closes the connection
// without writing anything.
type HandlerFunc func(conn Conn, data []byte) int

// ConnState enumerates the lifecycle of a single Conn as the dispatcher
// advances it through the accept/read/write state machine (see §4.3 of
// the engine design).
type ConnState uint8

const (
	StateNone ConnState = iota
	StateAccepting
	StateIdle
	StateReading
	StateHandling
	StateWriting
	StateClosing
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateAccepting:
		return "accepting"
	case StateIdle:
		return "idle"
	case StateReading:
		return "reading"
	case StateHandling:
		return "handling"
	case StateWriting:
		return "writing"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "none"
	}
}

// ErrorFilter strips the errors that are an expected side effect of the
// engine closing a listener or connection out from under a blocked
// Accept/Read/Write, so callers only see errors worth reporting.
func ErrorFilter(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "use of closed network connection"):
		return nil
	case strings.Contains(msg, "file already closed"):
		return nil
	default:
		return err
	}
}

// Server is the Lifecycle Controller's host-facing surface (§4.5): it takes
// a transport from unbound to accepting connections, and back down again.
type Server interface {
	// Listen performs the one-time bind/listen/worker-spawn sequence
	// (§4.1, §4.2), posts the first Accept, then blocks servicing
	// completions until ctx is cancelled or Shutdown is called.
	// It must be called exactly once.
	Listen(ctx context.Context) error

	// Shutdown sets the shutdown flag, wakes every worker with a
	// sentinel completion, joins them, then releases the listener.
	// It blocks until teardown completes or ctx is done.
	Shutdown(ctx context.Context) error

	// Close is a non-blocking request to stop: it starts Shutdown with a
	// background context in its own goroutine and returns at once.
	Close() error

	// Done is closed once Listen has returned.
	Done() <-chan struct{}

	IsRunning() bool
	IsGone() bool

	// OpenConnections reports the number of Conns currently adopted.
	OpenConnections() int64
}
