// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging exposes the package-level logger shared by the container
// core and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than holding on to L, so tests can swap it.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	Prefix: "listkit",
	Level:  clog.WarnLevel,
})

// SetOutput redirects the package-level logger, keeping its level.
func SetOutput(w io.Writer) {
	level := L.GetLevel()
	L = clog.NewWithOptions(w, clog.Options{Prefix: "listkit", Level: level})
}

// SetLevel parses name ("debug", "info", "warn", "error") and applies it.
// Unknown names leave the level untouched and return an error.
func SetLevel(name string) error {
	level, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", name, err)
	}
	L.SetLevel(level)
	return nil
}

// SetDebug switches between debug and the default warn level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.WarnLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}

// Error logs err with structured key/value pairs.
func Error(msg string, err error, keyvals ...any) {
	L.Error(msg, append([]any{"err", err}, keyvals...)...)
}
