//go:build linux || darwin || freebsd

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
	"os"

	"golang.org/x/sys/unix"

	liberr "github.com/nabbar/proactor/errors"
	libptc "github.com/nabbar/proactor/network/protocol"
)

// bindListen reproduces the Listener's staged failure codes (§4.1, §6) by
// driving socket()/setsockopt()/bind()/listen() directly instead of
// collapsing them into a single net.Listen call, so initialize can still
// report which step failed the way the original embedding API does.
func bindListen(network libptc.NetworkProtocol, address string) (net.Listener, error) {
	addr, err := net.ResolveTCPAddr(network.Code(), address)
	if err != nil {
		return nil, ErrorBind.Error(err)
	}

	domain := unix.AF_INET
	sa := &unix.SockaddrInet4{Port: addr.Port}
	if addr.IP != nil {
		if ip4 := addr.IP.To4(); ip4 != nil {
			copy(sa.Addr[:], ip4)
		} else if ip6 := addr.IP.To16(); ip6 != nil && network != libptc.NetworkTCP4 {
			domain = unix.AF_INET6
		}
	}

	var fd int
	if domain == unix.AF_INET6 {
		sa6 := &unix.SockaddrInet6{Port: addr.Port}
		copy(sa6.Addr[:], addr.IP.To16())
		fd, err = unix.Socket(unix.AF_INET6, unix.SOCK_STREAM, 0)
		if err != nil {
			return nil, ErrorListenSocketCreate.Error(err)
		}
		if sockErr := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); sockErr != nil {
			_ = unix.Close(fd)
			return nil, ErrorSocketOptions.Error(sockErr)
		}
		if bindErr := unix.Bind(fd, sa6); bindErr != nil {
			_ = unix.Close(fd)
			return nil, ErrorBind.Error(bindErr)
		}
	} else {
		fd, err = unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
		if err != nil {
			return nil, ErrorListenSocketCreate.Error(err)
		}
		if sockErr := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); sockErr != nil {
			_ = unix.Close(fd)
			return nil, ErrorSocketOptions.Error(sockErr)
		}
		if bindErr := unix.Bind(fd, sa); bindErr != nil {
			_ = unix.Close(fd)
			return nil, ErrorBind.Error(bindErr)
		}
	}

	if err = unix.Listen(fd, unix.SOMAXCONN); err != nil {
		_ = unix.Close(fd)
		return nil, ErrorListen.Error(err)
	}

	f := os.NewFile(uintptr(fd), "proactor-listener")
	ln, err := net.FileListener(f)
	_ = f.Close()
	if err != nil {
		return nil, liberr.New(ErrorListen.Uint16(), ErrorListen.Message(), err)
	}

	return ln, nil
}
