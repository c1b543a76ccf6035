/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a logging abstraction for the icc package.
//
// Both loggers discard output until a Logger is set. The parser itself
// writes nothing to either of them - parsing a profile is a pure,
// synchronous computation with no suspension points - and a malformed
// tag fails Parse with an error rather than being logged and skipped.
package log

import (
	"log"
	"os"
)

// Logger defines an interface for logging messages.
type Logger interface {
	// Printf logs a formatted string.
	Printf(format string, args ...interface{})
}

type logger struct {
	log Logger
}

// The two loggers icc defines. Both default to discarding output.
var (
	Trace = &logger{}
	Debug = &logger{}
)

// SetTraceLogger sets the logger behind Trace.
func SetTraceLogger(l Logger) {
	Trace.log = l
}

// SetDebugLogger sets the logger behind Debug.
func SetDebugLogger(l Logger) {
	Debug.log = l
}

// SetDefaultTraceLogger sends Trace output to stderr.
func SetDefaultTraceLogger() {
	SetTraceLogger(log.New(os.Stderr, "TRACE: ", log.Ldate|log.Ltime))
}

// SetDefaultDebugLogger sends Debug output to stderr.
func SetDefaultDebugLogger() {
	SetDebugLogger(log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime))
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetTraceLogger(nil)
	SetDebugLogger(nil)
}

// Printf writes a formatted message to the log.
func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}
