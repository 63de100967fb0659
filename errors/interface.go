/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package errors provides numeric, package-namespaced error codes with
// stack-frame capture and parent chaining, in the style used across the
// embedding host's other libraries. It intentionally drops the gin/HTTP
// and pool sub-packages of the original: this module has no HTTP surface
// and errors never need cross-goroutine collection.
package errors

import (
	"errors"
)

// Error extends the standard error with a numeric code, a capture site and
// an optional parent chain (e.g. a per-connection teardown error wrapping
// the socket error that triggered it).
type Error interface {
	error

	// IsCode reports whether this error's own code matches.
	IsCode(code CodeError) bool
	// HasCode reports whether this error or any parent carries the code.
	HasCode(code CodeError) bool
	// Code returns the numeric code as raw uint16.
	Code() uint16
	// GetCode returns the numeric code as a CodeError.
	GetCode() CodeError

	// Add appends parent errors as direct parents, skipping nil ones; a
	// parent that is itself a chain is kept whole, not flattened.
	Add(parent ...error)
	// HasParent reports whether this error wraps at least one parent.
	HasParent() bool
	// GetParent returns the direct parents, preceded by a parentless copy of
	// self when withSelf is true; the parents' own parents are not included.
	GetParent(withSelf bool) []error

	// GetTrace returns "file#line" (or "func#line") for the capture site.
	GetTrace() string

	// Is implements errors.Is against another Error or a plain error.
	Is(err error) bool
	// Unwrap exposes the parent chain to errors.Is/errors.As.
	Unwrap() []error
}

// New builds an Error with the given code and message, wrapping parents.
func New(code uint16, msg string, parent ...error) Error {
	e := &ers{c: code, e: msg, t: getFrame()}
	e.Add(parent...)
	return e
}

// IfError returns an Error only when at least one non-nil parent is given;
// otherwise it returns nil. Used to fold a possibly-nil underlying error
// into the engine's code space without allocating on the success path.
func IfError(code uint16, msg string, parent ...error) Error {
	any := false
	for _, p := range parent {
		if p != nil {
			any = true
			break
		}
	}
	if !any {
		return nil
	}
	return New(code, msg, parent...)
}

// As is a thin convenience wrapper over the standard library's errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
