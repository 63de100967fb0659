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

// Package tcp implements the proactor engine's Lifecycle Controller,
// Listener, Worker Pool and Operation Dispatcher over TCP (§4). Go has no
// portable completion-port primitive, so the engine wraps a
// completion-shaped API over blocking calls run in their own goroutines
// (§9: "wrap a completion-shaped API over the readiness primitive"): each
// post_accept/post_read/post_write spawns a goroutine that performs the
// blocking net.Conn/net.Listener call and hands its result to a shared
// channel, which stands in for the kernel completion queue.
package tcp

import (
	"context"
	"net"
	"sync"
	"sync/atomic"

	"github.com/nabbar/proactor/errors"
	"github.com/nabbar/proactor/logger"
	"github.com/nabbar/proactor/socket"
	"github.com/nabbar/proactor/socket/config"
)

// Server is the TCP proactor engine's Lifecycle Controller.
type Server struct {
	cfg     config.Config
	handler socket.HandlerFunc
	log     logger.Logger

	ln    net.Listener
	queue chan *op

	wg       sync.WaitGroup
	shutdown atomic.Bool
	running  atomic.Bool
	gone     atomic.Bool

	openConns atomic.Int64

	done       chan struct{}
	doneOnce   sync.Once
	closed     chan struct{}
	closedOnce sync.Once

	shutdownOnce sync.Once
	shutdownErr  error
}

// New builds a Server bound to cfg, dispatching every received payload to
// handler. Nothing is validated or allocated until Listen is called
// (§4.5: initialize is a distinct step from construction).
func New(handler socket.HandlerFunc, cfg config.Config, log logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}

	return &Server{
		cfg:     cfg,
		handler: handler,
		log:     log,
		done:    make(chan struct{}),
		closed:  make(chan struct{}),
	}
}

var _ socket.Server = (*Server)(nil)

// Listen performs initialize (§4.1, §4.2) then start (posting the first
// Accept), and blocks servicing completions until ctx is cancelled or
// Shutdown is called from elsewhere. It must be called exactly once.
func (s *Server) Listen(ctx context.Context) error {
	defer s.doneOnce.Do(func() { close(s.done) })

	if s.handler == nil {
		return ErrorNilHandler.Error()
	}

	if err := s.cfg.Validate(); err != nil {
		return err
	}

	queueSize := s.cfg.ResolvedWorkerCount() * 4
	if queueSize < 16 {
		queueSize = 16
	}
	s.queue = make(chan *op, queueSize)

	ln, err := bindListen(s.cfg.Network, s.cfg.Address)
	if err != nil {
		return err
	}
	s.ln = ln

	workers := s.cfg.ResolvedWorkerCount()
	s.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go s.worker(i)
	}

	s.running.Store(true)
	s.postAccept()

	go func() {
		select {
		case <-ctx.Done():
			_ = s.Shutdown(context.Background())
		case <-s.done:
		}
	}()

	<-s.done
	return s.shutdownErr
}

// Shutdown sets the shutdown flag, wakes every worker with a sentinel
// completion, joins them, then releases the listener (§4.5). It is safe
// to call more than once and from any goroutine; only the first call does
// the work.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.shutdown.Store(true)

		if s.ln != nil {
			_ = s.ln.Close()
		}

		workers := s.cfg.ResolvedWorkerCount()
		for i := 0; i < workers; i++ {
			s.enqueue(sentinelOp())
		}

		joined := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(joined)
		}()

		select {
		case <-joined:
		case <-ctx.Done():
			// Shutdown is not graceful: in-flight Ops may leak here (§4.5,
			// §4.7); the process or host is expected to be terminating
			// this Server regardless.
			s.shutdownErr = errors.New(0, "shutdown: timed out waiting for workers")
		}

		if s.ln != nil {
			_ = s.ln.Close()
		}

		s.running.Store(false)
		s.gone.Store(true)
		s.closedOnce.Do(func() { close(s.closed) })
		s.doneOnce.Do(func() { close(s.done) })
	})

	return s.shutdownErr
}

// Close requests shutdown without waiting for it to complete.
func (s *Server) Close() error {
	go func() { _ = s.Shutdown(context.Background()) }()
	return nil
}

func (s *Server) Done() <-chan struct{} { return s.done }

func (s *Server) IsRunning() bool { return s.running.Load() }
func (s *Server) IsGone() bool    { return s.gone.Load() }

func (s *Server) OpenConnections() int64 { return s.openConns.Load() }
