// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// swapLogger points L at a buffer for the duration of the test.
func swapLogger(t *testing.T, level clog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(level)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t, clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")
	Error("write failed", errors.New("disk full"), "path", "/tmp/x")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E", "write failed", "disk full", "/tmp/x"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetLevel_FiltersBelowThreshold(t *testing.T) {
	buf := swapLogger(t, clog.DebugLevel)

	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	Infof("quiet")
	Errorf("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message should be filtered at error level; got: %s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("missing error output; got: %s", out)
	}
}

func TestSetLevel_Unknown(t *testing.T) {
	swapLogger(t, clog.InfoLevel)
	if err := SetLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if L.GetLevel() != clog.InfoLevel {
		t.Fatalf("level changed on bad input: %v", L.GetLevel())
	}
}

func TestSetDebug_Toggles(t *testing.T) {
	swapLogger(t, clog.WarnLevel)
	SetDebug(true)
	if L.GetLevel() != clog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L.GetLevel())
	}
	SetDebug(false)
	if L.GetLevel() != clog.WarnLevel {
		t.Fatalf("expected warn level, got %v", L.GetLevel())
	}
}
