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

package tcp

import (
	"net"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nabbar/proactor/socket"
)

// conn is the Go analogue of the engine's Connection Record. Exactly one
// of a Read or a Write is ever in flight for a given conn at a time (§3);
// that invariant is upheld structurally by the dispatcher, which only
// ever posts the next operation after the previous one's completion has
// been fully handled, so conn itself needs no lock on the hot path.
type conn struct {
	id    string
	raw   net.Conn
	state atomic.Uint32

	// buf is the fixed-capacity inline read buffer the kernel (here, the
	// goroutine performing net.Conn.Read) fills in place.
	buf []byte

	closed atomic.Bool
}

func newConn(raw net.Conn, bufSize int) *conn {
	c := &conn{
		id:  uuid.NewString(),
		raw: raw,
		buf: make([]byte, bufSize),
	}
	c.state.Store(uint32(socket.StateAccepting))
	return c
}

func (c *conn) ID() string            { return c.id }
func (c *conn) RemoteAddr() net.Addr  { return c.raw.RemoteAddr() }
func (c *conn) LocalAddr() net.Addr   { return c.raw.LocalAddr() }

func (c *conn) setState(s socket.ConnState) { c.state.Store(uint32(s)) }
func (c *conn) getState() socket.ConnState  { return socket.ConnState(c.state.Load()) }

// release closes the underlying socket exactly once. It is safe to call
// from any worker, and from more than one, since close races are
// resolved by closed.
func (c *conn) release() {
	if c.closed.CompareAndSwap(false, true) {
		c.setState(socket.StateClosed)
		_ = c.raw.Close()
	}
}

var _ socket.Conn = (*conn)(nil)
