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

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding a Config is read from or written to.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// Load decodes a Config from r in the given format. Whichever format an
// embedding host already standardizes on, the struct tags on Config line up
// with it.
func Load(r io.Reader, f Format) (Config, error) {
	var c Config

	p, e := io.ReadAll(r)
	if e != nil {
		return c, e
	}

	switch f {
	case FormatYAML:
		e = yaml.Unmarshal(p, &c)
	case FormatTOML:
		e = toml.Unmarshal(p, &c)
	default:
		e = json.Unmarshal(p, &c)
	}

	return c, e
}

// Save encodes c to w in the given format. Internally every format is
// reached through a JSON round-trip into a generic map so the three
// encoders stay byte-for-byte consistent with each other on field order
// and naming.
func Save(w io.Writer, f Format, c Config) error {
	raw, e := json.Marshal(c)
	if e != nil {
		return e
	}

	if f == FormatJSON {
		_, e = w.Write(raw)
		return e
	}

	var mod map[string]interface{}
	if e = json.Unmarshal(raw, &mod); e != nil {
		return e
	}

	var p []byte
	switch f {
	case FormatYAML:
		p, e = yaml.Marshal(mod)
	case FormatTOML:
		p, e = toml.Marshal(mod)
	default:
		return fmt.Errorf("config: unknown format %d", f)
	}
	if e != nil {
		return e
	}

	_, e = io.Copy(w, bytes.NewReader(p))
	return e
}
