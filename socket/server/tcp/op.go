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

import "net"

// opTag is the operation kind carried by an Op, immutable after construction.
type opTag uint8

const (
	opAccept opTag = iota
	opRead
	opWrite
)

// op is the Go analogue of the engine's Operation Record: a per-I/O value
// describing what kind of I/O just finished, on which conn, with what
// result. There is no kernel completion-port metadata to carry here — the
// goroutine that performed the blocking call (post_accept/post_read/
// post_write) already resolved the result before handing it to the
// completion queue, so op only needs to carry the outcome.
//
// An op with isSentinel set is a sentinel completion: the shutdown
// protocol's signal for a worker to stop dequeuing and exit (§4.2, §4.5).
type op struct {
	tag  opTag
	conn *conn

	// accepted is set only on a completed Accept.
	accepted net.Conn

	// n is the byte count for a completed Read; it is left at zero for a
	// Write.
	n int

	// payload is the owned copy of the bytes submitted with a Write,
	// returned here so the dispatcher can release it after completion.
	payload []byte

	err error

	// isSentinel marks a completion deliberately enqueued with no
	// associated I/O, used only to wake and release a worker at shutdown.
	isSentinel bool
}

// sentinelOp builds the wake-and-exit completion the shutdown protocol
// enqueues once per worker (§4.2, §4.5).
func sentinelOp() *op {
	return &op{isSentinel: true}
}
