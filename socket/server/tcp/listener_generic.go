//go:build !linux && !darwin && !freebsd

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

	libptc "github.com/nabbar/proactor/network/protocol"
)

// bindListen is the fallback for platforms without the raw-syscall path in
// listener_unix.go (notably Windows, where the original design's staged
// socket()/bind()/listen() sequence is CreateIoCompletionPort-specific and
// not reproduced here). net.Listen already performs socket creation, bind
// and listen as one call; failures are reported against ErrorListen since
// the standard library does not expose which sub-step failed.
func bindListen(network libptc.NetworkProtocol, address string) (net.Listener, error) {
	ln, err := net.Listen(network.Code(), address)
	if err != nil {
		return nil, ErrorListen.Error(err)
	}
	return ln, nil
}
