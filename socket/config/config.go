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

// Package config describes the static parameters a socket/server
// implementation is built from: bind address, protocol family, worker pool
// sizing and the one idle-connection timeout knob the engine exposes.
package config

import (
	"runtime"

	liberr "github.com/nabbar/proactor/errors"
	libdur "github.com/nabbar/proactor/duration"
	libptc "github.com/nabbar/proactor/network/protocol"
)

const (
	ErrorConfigInvalidAddress liberr.CodeError = iota + liberr.MinPkgConfig
	ErrorConfigInvalidNetwork
	ErrorConfigInvalidWorkerCount
)

func init() {
	liberr.RegisterIdFctMessage(liberr.MinPkgConfig, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorConfigInvalidAddress:
		return "invalid or empty bind address"
	case ErrorConfigInvalidNetwork:
		return "network must be one of tcp, tcp4, tcp6"
	case ErrorConfigInvalidWorkerCount:
		return "worker count must be zero (auto) or positive"
	}
	return liberr.NullMessage
}

// Config is the configuration of a single Server instance. The zero value
// is not valid; call Validate (or let Server.Listen call it) before use.
type Config struct {
	// Network is the address family to bind; only TCP families are
	// accepted by Validate.
	Network libptc.NetworkProtocol `json:"network" yaml:"network" toml:"network"`

	// Address is a host:port pair passed to net.Listen, e.g. "0.0.0.0:9000"
	// or ":9000". IPv4 and IPv6 literals are both accepted.
	Address string `json:"address" yaml:"address" toml:"address"`

	// WorkerCount overrides the worker pool size. Zero selects the
	// default heuristic, min(2*NumCPU, 64).
	WorkerCount int `json:"workerCount" yaml:"workerCount" toml:"workerCount"`

	// BufferSize overrides the inline per-connection read buffer size.
	// Zero selects socket.DefaultBufferSize.
	BufferSize int `json:"bufferSize" yaml:"bufferSize" toml:"bufferSize"`

	// ConIdleTimeout is carried for the embedding host's own bookkeeping
	// (e.g. reporting or an external reaper); per-connection timeouts are
	// a non-goal of this engine, so the dispatcher never reads this field
	// or sets a read/write deadline from it.
	ConIdleTimeout libdur.Duration `json:"conIdleTimeout" yaml:"conIdleTimeout" toml:"conIdleTimeout"`
}

// Validate reports the first configuration defect found, as the same
// numbered-failure-code style the rest of the engine's initialization
// path uses.
func (c Config) Validate() error {
	if c.Address == "" {
		return ErrorConfigInvalidAddress.Error()
	}

	if !c.Network.TCPFamily() {
		return ErrorConfigInvalidNetwork.Error()
	}

	if c.WorkerCount < 0 {
		return ErrorConfigInvalidWorkerCount.Error()
	}

	return nil
}

// ResolvedWorkerCount returns WorkerCount, or the default heuristic when
// WorkerCount is zero.
func (c Config) ResolvedWorkerCount() int {
	if c.WorkerCount > 0 {
		return c.WorkerCount
	}

	n := runtime.NumCPU() * 2
	if n > 64 {
		n = 64
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ResolvedBufferSize returns BufferSize, or socket.DefaultBufferSize when
// BufferSize is zero. Declared here (rather than importing socket) to
// avoid a config <-> socket import cycle; socket.DefaultBufferSize mirrors
// this same value.
func (c Config) ResolvedBufferSize() int {
	if c.BufferSize > 0 {
		return c.BufferSize
	}
	return 4096
}
