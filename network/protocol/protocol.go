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

// Package protocol names the network protocols the engine's listener can be
// bound to. Only the TCP family is accepted by socket/config.Validate; the
// other constants are kept so String/Code/text-marshaling behave the same
// way across this module's configuration surface regardless of which
// family a future transport adds.
package protocol

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type NetworkProtocol uint8

const (
	NetworkEmpty NetworkProtocol = iota
	NetworkTCP
	NetworkTCP4
	NetworkTCP6
	NetworkUDP
	NetworkUDP4
	NetworkUDP6
	NetworkUnix
	NetworkUnixGram
	NetworkIP
	NetworkIP4
	NetworkIP6
)

func (n NetworkProtocol) String() string {
	switch n {
	case NetworkTCP:
		return "tcp"
	case NetworkTCP4:
		return "tcp4"
	case NetworkTCP6:
		return "tcp6"
	case NetworkUDP:
		return "udp"
	case NetworkUDP4:
		return "udp4"
	case NetworkUDP6:
		return "udp6"
	case NetworkUnix:
		return "unix"
	case NetworkUnixGram:
		return "unixgram"
	case NetworkIP:
		return "ip"
	case NetworkIP4:
		return "ip4"
	case NetworkIP6:
		return "ip6"
	default:
		return ""
	}
}

// Code returns the string accepted by the net package's Dial/Listen family
// for this protocol, identical to String for every network this module uses.
func (n NetworkProtocol) Code() string {
	return n.String()
}

// TCPFamily reports whether n is one of tcp, tcp4, tcp6 — the only
// families the proactor listener accepts.
func (n NetworkProtocol) TCPFamily() bool {
	switch n {
	case NetworkTCP, NetworkTCP4, NetworkTCP6:
		return true
	default:
		return false
	}
}

func Parse(s string) NetworkProtocol {
	switch s {
	case "tcp":
		return NetworkTCP
	case "tcp4":
		return NetworkTCP4
	case "tcp6":
		return NetworkTCP6
	case "udp":
		return NetworkUDP
	case "udp4":
		return NetworkUDP4
	case "udp6":
		return NetworkUDP6
	case "unix":
		return NetworkUnix
	case "unixgram":
		return NetworkUnixGram
	case "ip":
		return NetworkIP
	case "ip4":
		return NetworkIP4
	case "ip6":
		return NetworkIP6
	default:
		return NetworkEmpty
	}
}

func (n NetworkProtocol) MarshalText() ([]byte, error) {
	if n == NetworkEmpty {
		return nil, nil
	}
	return []byte(n.String()), nil
}

func (n *NetworkProtocol) UnmarshalText(p []byte) error {
	v := Parse(string(p))
	if v == NetworkEmpty && len(p) > 0 {
		return fmt.Errorf("protocol: unknown network %q", string(p))
	}
	*n = v
	return nil
}

// MarshalYAML returns the YAML encoding of n. gopkg.in/yaml.v3 does not fall
// back to encoding.TextMarshaler, so this is spelled out explicitly rather
// than relying on MarshalText.
func (n NetworkProtocol) MarshalYAML() (interface{}, error) {
	return n.String(), nil
}

// UnmarshalYAML parses the YAML-encoded network and stores the result in
// the receiver.
func (n *NetworkProtocol) UnmarshalYAML(value *yaml.Node) error {
	return n.UnmarshalText([]byte(value.Value))
}

// MarshalTOML returns the TOML encoding of n. pelletier/go-toml does not
// fall back to encoding.TextMarshaler either, so this mirrors MarshalYAML.
func (n NetworkProtocol) MarshalTOML() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalTOML parses the TOML-decoded network and stores the result in
// the receiver. go-toml hands scalar values to this method as either a
// string or a []byte depending on the decoding path taken.
func (n *NetworkProtocol) UnmarshalTOML(i interface{}) error {
	switch v := i.(type) {
	case string:
		return n.UnmarshalText([]byte(v))
	case []byte:
		return n.UnmarshalText(v)
	default:
		return fmt.Errorf("protocol: value not in valid format")
	}
}
