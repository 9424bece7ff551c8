// Copyright 2026 The routerd Authors
// This file is part of the routerd library.
//
// The routerd library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The routerd library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the routerd library. If not, see <http://www.gnu.org/licenses/>.

// Package logger is a compact, glog-flavored leveled logger. It keeps the
// V(level) facade the rest of this tree calls through, without the
// multi-sink LogSystem fan-out the teacher's logger/glog carries — a single
// daemon process only ever writes to one stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Level mirrors the ad-hoc severity scale used around the teacher codebase
// (see accounts/watch.go's glog.V(logger.Detail) calls).
type Level int32

const (
	Error Level = iota
	Warn
	Info
	Detail
	Debug
)

func (l Level) String() string {
	switch l {
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Info:
		return "INFO"
	case Detail:
		return "DETAIL"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

var (
	mu        sync.Mutex
	verbosity int32 = int32(Info)
	out       io.Writer = os.Stderr
)

// SetVerbosity sets the process-wide verbosity threshold. Calls at a level
// above the threshold are dropped before formatting.
func SetVerbosity(l Level) {
	atomic.StoreInt32(&verbosity, int32(l))
}

// SetOutput redirects the logger's sink; tests use this to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func enabled(l Level) bool {
	return int32(l) <= atomic.LoadInt32(&verbosity)
}

func write(l Level, format string, args ...interface{}) {
	if !enabled(l) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s [%s] %s\n", time.Now().Format("2006-01-02T15:04:05.000Z07:00"), l, fmt.Sprintf(format, args...))
}

// V returns a Verbose gate; use it for call sites that should stay silent
// below a given verbosity, e.g. V(logger.Debug).Infof(...).
func V(l Level) Verbose { return Verbose(l) }

type Verbose Level

func (v Verbose) Infof(format string, args ...interface{})  { write(Level(v), format, args...) }
func (v Verbose) Warnf(format string, args ...interface{})  { write(Level(v), format, args...) }
func (v Verbose) Errorf(format string, args ...interface{}) { write(Level(v), format, args...) }

func Infof(format string, args ...interface{})  { write(Info, format, args...) }
func Warnf(format string, args ...interface{})  { write(Warn, format, args...) }
func Errorf(format string, args ...interface{}) { write(Error, format, args...) }

// Fatalf logs at Error and terminates the process; used only for
// configuration errors at startup (spec.md §7).
func Fatalf(format string, args ...interface{}) {
	write(Error, format, args...)
	os.Exit(1)
}
