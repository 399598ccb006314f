// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"bytes"
	"testing"
)

func TestFprint(t *testing.T) {
	l := StringsOf([]string{"one", "two"})

	var buf bytes.Buffer
	if err := l.Fprint(&buf, "- ", true); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got, want := buf.String(), "- [1] one\n- [2] two\n"; got != want {
		t.Fatalf("Fprint = %q, want %q", got, want)
	}

	buf.Reset()
	if err := NumbersOf([]float64{1.5, 2}).Fprint(&buf, "", false); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got, want := buf.String(), "1.5\n2\n"; got != want {
		t.Fatalf("Fprint = %q, want %q", got, want)
	}
}
