/*
MIT License

Copyright (c) 2021 Nicolas JUHEL

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

package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled, structured sink used by the engine. Implementations
// must be safe for concurrent use: worker goroutines log without locking
// between themselves.
type Logger interface {
	WithFields(f Fields) Logger
	SetLevel(lvl Level)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type logger struct {
	mu     sync.RWMutex
	entry  *logrus.Entry
	fields Fields
}

// New returns a Logger writing to w (os.Stderr when w is nil) at the given
// level, using logrus's text formatter the way the rest of the embedding
// host's libraries do.
func New(w io.Writer, lvl Level) Logger {
	if w == nil {
		w = os.Stderr
	}

	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(lvl.logrus())
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &logger{entry: logrus.NewEntry(base)}
}

func (l *logger) WithFields(f Fields) Logger {
	merged := make(Fields, len(l.fields)+len(f))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range f {
		merged[k] = v
	}
	return &logger{entry: l.entry.WithFields(merged.logrus()), fields: merged}
}

func (l *logger) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry.Logger.SetLevel(lvl.logrus())
}

func (l *logger) Debug(msg string) { l.entry.Debug(msg) }
func (l *logger) Info(msg string)  { l.entry.Info(msg) }
func (l *logger) Warn(msg string)  { l.entry.Warn(msg) }
func (l *logger) Error(msg string) { l.entry.Error(msg) }

// Discard returns a Logger that drops everything, for hosts that opt out
// of the engine's own diagnostics entirely.
func Discard() Logger {
	return New(io.Discard, NilLevel)
}
