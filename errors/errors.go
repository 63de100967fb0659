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

package errors

import (
	"fmt"
	"runtime"
	"strings"
)

type ers struct {
	c uint16
	e string
	p []Error
	t runtime.Frame
}

func (e *ers) is(o *ers) bool {
	if e == nil || o == nil {
		return false
	}
	if ts, td := e.GetTrace(), o.GetTrace(); ts != "" || td != "" {
		return ts == td
	}
	return strings.EqualFold(e.e, o.e) && e.c == o.c
}

func (e *ers) Is(err error) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(*ers); ok {
		return e.is(er)
	}
	return strings.EqualFold(e.e, err.Error())
}

func (e *ers) Add(parent ...error) {
	for _, v := range parent {
		if v == nil {
			continue
		}
		if er, ok := v.(*ers); ok {
			e.p = append(e.p, er)
		} else if err, ok := v.(Error); ok {
			e.p = append(e.p, err)
		} else {
			e.p = append(e.p, &ers{e: v.Error()})
		}
	}
}

func (e *ers) IsCode(code CodeError) bool {
	return e.c == code.Uint16()
}

func (e *ers) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}
	for _, p := range e.p {
		if p.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *ers) Code() uint16 {
	return e.c
}

func (e *ers) GetCode() CodeError {
	return CodeError(e.c)
}

func (e *ers) HasParent() bool {
	return len(e.p) > 0
}

func (e *ers) GetParent(withSelf bool) []error {
	res := make([]error, 0, len(e.p)+1)
	if withSelf {
		res = append(res, &ers{c: e.c, e: e.e, t: e.t})
	}
	for _, p := range e.p {
		res = append(res, p)
	}
	return res
}

func (e *ers) GetTrace() string {
	return frameString(e.t)
}

func (e *ers) Unwrap() []error {
	if len(e.p) == 0 {
		return nil
	}
	res := make([]error, 0, len(e.p))
	for _, p := range e.p {
		res = append(res, p)
	}
	return res
}

func (e *ers) Error() string {
	if e.c == 0 {
		return e.e
	}
	if t := e.GetTrace(); t != "" {
		return fmt.Sprintf("[#%d] %s (%s)", e.c, e.e, t)
	}
	return fmt.Sprintf("[#%d] %s", e.c, e.e)
}
