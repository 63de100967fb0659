/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package logger provides the structured, leveled logging used throughout
// the engine: accept failures, per-connection teardown, and lifecycle
// transitions. It is a thin wrapper over logrus kept deliberately small —
// the embedding host owns its own diagnostics stack (see spec §1 scope);
// this package only covers the engine's own internal log lines.
package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Level mirrors logrus.Level with the engine's own naming, so call sites
// never import logrus directly.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	NilLevel
)

func (l Level) logrus() logrus.Level {
	switch l {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "Debug"
	case InfoLevel:
		return "Info"
	case WarnLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	case FatalLevel:
		return "Fatal Error"
	case PanicLevel:
		return "Critical Error"
	case NilLevel:
		return ""
	}
	return "unknown"
}

// GetLevelString resolves a Level from a case-insensitive exact match of its
// String form, then from a partial match, falling back to InfoLevel — used
// when a host passes a level by name.
func GetLevelString(l string) Level {
	l = strings.ToLower(l)
	for _, lvl := range []Level{PanicLevel, FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel, NilLevel} {
		if strings.ToLower(lvl.String()) == l {
			return lvl
		}
	}
	switch {
	case strings.Contains(strings.ToLower(PanicLevel.String()), l):
		return PanicLevel
	case strings.Contains(strings.ToLower(FatalLevel.String()), l):
		return FatalLevel
	case strings.Contains(strings.ToLower(ErrorLevel.String()), l):
		return ErrorLevel
	case strings.Contains(strings.ToLower(WarnLevel.String()), l):
		return WarnLevel
	case strings.Contains(strings.ToLower(InfoLevel.String()), l):
		return InfoLevel
	case strings.Contains(strings.ToLower(DebugLevel.String()), l):
		return DebugLevel
	}
	return InfoLevel
}
