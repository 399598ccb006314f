// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sdk6/listkit/core/list"
)

var testTime = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestCapture(t *testing.T) {
	n := list.NumbersOf([]float64{1, 2.5, -3}, list.WithDuplicates(false))
	got := Capture("n", n.List)
	want := Snapshot{Name: "n", Kind: list.KindNumber, Values: []string{"1", "2.5", "-3"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Capture mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_BadValue(t *testing.T) {
	snap := Snapshot{Name: "bad", Kind: list.KindNumber, Values: []string{"1", "two"}}
	n, err := snap.Numbers()
	if err == nil {
		t.Fatalf("expected error, got %v", n)
	}
	var fe *list.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *list.FormatError, got %T", err)
	}
	if fe.Line != 2 || fe.Text != "two" {
		t.Errorf("unexpected FormatError: %+v", fe)
	}
}

func TestFill_KindMismatch(t *testing.T) {
	snap := Snapshot{Name: "s", Kind: list.KindString, Values: []string{"1"}}
	if _, err := snap.Numbers(); err == nil {
		t.Fatal("expected kind mismatch error")
	}
}

func TestSnapshotNumbers_Options(t *testing.T) {
	snap := Snapshot{Name: "n", Kind: list.KindNumber, AllowDuplicates: true, Values: []string{"1"}}
	n, err := snap.Numbers(list.WithIncrementMode(list.IncrementDelta))
	if err != nil {
		t.Fatalf("Numbers failed: %v", err)
	}
	if n.IncrementMode() != list.IncrementDelta {
		t.Errorf("IncrementMode = %v, want delta", n.IncrementMode())
	}
}

func TestDefaultBackupName(t *testing.T) {
	if got := DefaultBackupName(testTime); got != "listkit-backup-2026-03-14.json.zst" {
		t.Errorf("DefaultBackupName = %q", got)
	}
}

func TestSnapshot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{"numbers", Snapshot{Name: "n", Kind: list.KindNumber, Values: []string{"1", "2.5"}}, false},
		{"strings", Snapshot{Name: "s", Kind: list.KindString, Values: []string{"x", ""}}, false},
		{"bad number", Snapshot{Name: "n", Kind: list.KindNumber, Values: []string{"x"}}, true},
		{"unknown kind", Snapshot{Name: "m", Kind: "matrix"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.snap.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
