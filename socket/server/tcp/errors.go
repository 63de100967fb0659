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
	liberr "github.com/nabbar/proactor/errors"
)

// The seven numbered initialization failure codes from the engine's
// embedding API (§6): 1 through 7, in the order the Listener attempts
// them. They are registered starting at liberr.MinPkgProactor so they
// never collide with another package's codes in the same process.
const (
	ErrorNilHandler liberr.CodeError = iota + liberr.MinPkgProactor
	ErrorSocketInit
	ErrorQueueInit
	ErrorListenSocketCreate
	ErrorSocketOptions
	ErrorBind
	ErrorListen
)

func init() {
	liberr.RegisterIdFctMessage(liberr.MinPkgProactor, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorNilHandler:
		return "initialize: handler callback is nil"
	case ErrorSocketInit:
		return "initialize: socket subsystem init failed"
	case ErrorQueueInit:
		return "initialize: completion queue creation failed"
	case ErrorListenSocketCreate:
		return "initialize: listen socket creation failed"
	case ErrorSocketOptions:
		return "initialize: listen socket option configuration failed"
	case ErrorBind:
		return "initialize: bind failed"
	case ErrorListen:
		return "initialize: listen failed"
	}
	return liberr.NullMessage
}
