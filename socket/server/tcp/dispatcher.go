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
	"github.com/nabbar/proactor/logger"
	"github.com/nabbar/proactor/socket"
)

// postAccept submits the next Accept: a goroutine stands in for the kernel,
// blocking on the listener and handing its result to the completion queue
// as an Op. Self-renewing (§3 invariant): called once up front by Listen,
// then once more by the dispatcher for every Accept it retires.
func (s *Server) postAccept() {
	go func() {
		c, err := s.ln.Accept()
		if err != nil {
			if s.shutdown.Load() {
				// Expected: the listener was closed as part of shutdown.
				return
			}
			s.enqueue(&op{tag: opAccept, err: err})
			return
		}
		s.enqueue(&op{tag: opAccept, accepted: c})
	}()
}

// postRead submits a Read on c; only ever one in flight for a given conn
// at a time (§3 single-outstanding-I/O invariant), enforced by the
// dispatcher never posting it except right after adopting a conn or
// retiring a prior Write.
func (s *Server) postRead(c *conn) {
	go func() {
		n, err := c.raw.Read(c.buf)
		s.enqueue(&op{tag: opRead, conn: c, n: n, err: err})
	}()
}

// postWrite submits a Write of payload on c. payload is an owned copy so
// the Read buffer it was sliced from can be reused for the next Read
// immediately (§4.4).
func (s *Server) postWrite(c *conn, payload []byte) {
	go func() {
		_, err := c.raw.Write(payload)
		s.enqueue(&op{tag: opWrite, conn: c, payload: payload, err: err})
	}()
}

func (s *Server) enqueue(o *op) {
	select {
	case s.queue <- o:
	case <-s.closed:
		// Queue is being torn down; drop the completion. Only reachable
		// for a completion racing the very end of shutdown.
	}
}

// worker is the Worker Pool's loop (§4.2): block on the completion queue,
// exit on a sentinel, otherwise dispatch.
func (s *Server) worker(id int) {
	defer s.wg.Done()

	log := s.log.WithFields(logger.Fields{"worker": id})

	for o := range s.queue {
		if o.isSentinel {
			return
		}
		s.dispatch(o, log)
	}
}

// dispatch advances the per-connection state machine for one completed Op
// (§4.3).
func (s *Server) dispatch(o *op, log logger.Logger) {
	switch o.tag {
	case opAccept:
		s.dispatchAccept(o, log)
	case opRead:
		s.dispatchRead(o, log)
	case opWrite:
		s.dispatchWrite(o, log)
	}
}

func (s *Server) dispatchAccept(o *op, log logger.Logger) {
	if o.err != nil {
		// Accept path failures after startup are not retried (§4.7): stop
		// accepting, keep servicing existing connections.
		if !s.shutdown.Load() {
			log.Error("accept failed, no longer accepting new connections: " + o.err.Error())
		}
		return
	}

	c := newConn(o.accepted, s.cfg.ResolvedBufferSize())
	s.openConns.Add(1)

	// (ii) post the next Accept immediately, in parallel with this
	// connection's work.
	s.postAccept()

	// (iii) post the first Read on the new Conn.
	c.setState(socket.StateReading)
	s.postRead(c)
}

func (s *Server) dispatchRead(o *op, log logger.Logger) {
	c := o.conn

	if o.err != nil {
		s.releaseConn(c)
		return
	}

	if o.n == 0 {
		// Peer closed its write half.
		s.releaseConn(c)
		return
	}

	c.setState(socket.StateHandling)
	ret := s.handler(c, c.buf[:o.n])
	if ret < 0 {
		s.releaseConn(c)
		return
	}

	send := ret
	if send > o.n {
		send = o.n
	}
	payload := make([]byte, send)
	copy(payload, c.buf[:send])

	c.setState(socket.StateWriting)
	s.postWrite(c, payload)
}

func (s *Server) dispatchWrite(o *op, log logger.Logger) {
	c := o.conn

	if o.err != nil {
		s.releaseConn(c)
		return
	}

	c.setState(socket.StateReading)
	s.postRead(c)
}

func (s *Server) releaseConn(c *conn) {
	c.release()
	s.openConns.Add(-1)
}
