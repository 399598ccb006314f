// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sorted returns a sorted copy, for asserting contents after a dedup pass
// where order is unspecified.
func sorted[T interface{ ~float64 | ~string }](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

func TestNew_Defaults(t *testing.T) {
	l := New(NumberTraits)
	if !l.IsEmpty() || l.Size() != 0 {
		t.Fatalf("new list should be empty, got size %d", l.Size())
	}
	if !l.AllowsDuplicates() {
		t.Fatalf("duplicates should be allowed by default")
	}
	if l.Kind() != KindNumber {
		t.Fatalf("kind = %q, want %q", l.Kind(), KindNumber)
	}
	if got := l.String(); got != "[]" {
		t.Fatalf("String() = %q, want []", got)
	}
}

func TestGetSet(t *testing.T) {
	l := New(StringTraits).AddSlice([]string{"a", "b", "c"})

	v, err := l.Get(1)
	if err != nil || v != "b" {
		t.Fatalf("Get(1) = %q, %v", v, err)
	}
	if err := l.Set(2, "z"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "z"}, l.ToArray()); diff != "" {
		t.Fatalf("after Set (-want +got):\n%s", diff)
	}

	for _, idx := range []int{-1, 3, 100} {
		if _, err := l.Get(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Get(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
		if err := l.Set(idx, "x"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Set(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestSet_DoesNotEliminateDuplicates(t *testing.T) {
	l := New(StringTraits, WithDuplicates(false)).AddSlice([]string{"a", "b"})
	i := l.IndexOf("b")
	if err := l.Set(i, "a"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if l.CountDuplicates("a") != 2 {
		t.Fatalf("Set should be able to introduce a duplicate, got %v", l.ToArray())
	}
}

func TestToArray_IsACopy(t *testing.T) {
	l := New(NumberTraits).AddSlice([]float64{1, 2, 3})
	arr := l.ToArray()
	arr[0] = 99
	if v, _ := l.Get(0); v != 1 {
		t.Fatalf("mutating ToArray result changed the list: %v", l.ToArray())
	}
}

func TestAdd_Chaining(t *testing.T) {
	l := New(NumberTraits)
	got := l.Add(1).Add(2).AddSlice([]float64{3, 4})
	if got != l {
		t.Fatalf("Add should return the receiver")
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, l.ToArray()); diff != "" {
		t.Fatalf("contents (-want +got):\n%s", diff)
	}
}

func TestAddAll(t *testing.T) {
	a := New(NumberTraits).AddSlice([]float64{1, 2})
	b := New(NumberTraits).AddSlice([]float64{3})
	a.AddAll(b).AddAll(nil)
	if diff := cmp.Diff([]float64{1, 2, 3}, a.ToArray()); diff != "" {
		t.Fatalf("AddAll (-want +got):\n%s", diff)
	}
	a.AddAll(a)
	if a.Size() != 6 {
		t.Fatalf("self AddAll should double contents, got %v", a.ToArray())
	}
}

func TestUniquePolicy_AfterEveryAppend(t *testing.T) {
	l := New(NumberTraits, WithDuplicates(false))
	l.AddSlice([]float64{3, 1, 3, 2, 1})
	if diff := cmp.Diff([]float64{1, 2, 3}, sorted(l.ToArray())); diff != "" {
		t.Fatalf("after AddSlice (-want +got):\n%s", diff)
	}

	l.Add(2).Add(4)
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, sorted(l.ToArray())); diff != "" {
		t.Fatalf("after Add (-want +got):\n%s", diff)
	}

	other := New(NumberTraits).AddSlice([]float64{4, 5, 5})
	l.AddAll(other)
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5}, sorted(l.ToArray())); diff != "" {
		t.Fatalf("after AddAll (-want +got):\n%s", diff)
	}
	for _, v := range l.ToArray() {
		if n := l.CountDuplicates(v); n != 1 {
			t.Fatalf("%v occurs %d times", v, n)
		}
	}
}

func TestSetAllowDuplicates(t *testing.T) {
	l := New(StringTraits).AddSlice([]string{"x", "x"})
	l.SetAllowDuplicates(false)
	if l.Size() != 2 {
		t.Fatalf("changing policy must not dedup existing elements")
	}
	l.Add("y")
	if diff := cmp.Diff([]string{"x", "y"}, sorted(l.ToArray())); diff != "" {
		t.Fatalf("next append should dedup (-want +got):\n%s", diff)
	}
}

func TestEraseDuplicates(t *testing.T) {
	l := New(StringTraits).AddSlice([]string{"b", "a", "b", "c", "a"})
	l.EraseDuplicates()
	if diff := cmp.Diff([]string{"a", "b", "c"}, sorted(l.ToArray())); diff != "" {
		t.Fatalf("EraseDuplicates (-want +got):\n%s", diff)
	}
	if !l.AllowsDuplicates() {
		t.Fatalf("EraseDuplicates must not change the policy")
	}
}

func TestContainsIndexOfCount(t *testing.T) {
	l := New(NumberTraits).AddSlice([]float64{5, 7, 5, 9})
	if !l.Contains(7) || l.Contains(8) {
		t.Fatalf("Contains mismatch")
	}
	if l.IndexOf(5) != 0 || l.IndexOf(9) != 3 || l.IndexOf(42) != -1 {
		t.Fatalf("IndexOf mismatch: %v", l.ToArray())
	}
	if l.CountDuplicates(5) != 2 || l.CountDuplicates(42) != 0 {
		t.Fatalf("CountDuplicates mismatch")
	}
}

func TestRemove(t *testing.T) {
	l := New(StringTraits).AddSlice([]string{"a", "b", "c", "b"})
	if !l.Remove(0) {
		t.Fatalf("Remove(0) should succeed")
	}
	if l.Remove(10) || l.Remove(-1) {
		t.Fatalf("Remove with invalid index should report false")
	}
	if !l.RemoveValue("b") {
		t.Fatalf("RemoveValue(b) should succeed")
	}
	if l.RemoveValue("zzz") {
		t.Fatalf("RemoveValue of absent value should report false")
	}
	if diff := cmp.Diff([]string{"c", "b"}, l.ToArray()); diff != "" {
		t.Fatalf("after removals (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	l := New(NumberTraits).AddSlice([]float64{1, 2})
	l.Clear()
	if !l.IsEmpty() || l.Size() != 0 {
		t.Fatalf("Clear left %v", l.ToArray())
	}
	l.Add(3)
	if diff := cmp.Diff([]float64{3}, l.ToArray()); diff != "" {
		t.Fatalf("reuse after Clear (-want +got):\n%s", diff)
	}
}

func TestSortReverse(t *testing.T) {
	l := New(NumberTraits).AddSlice([]float64{3, -1, 10, 2.5})
	l.Sort()
	want := []float64{-1, 2.5, 3, 10}
	if diff := cmp.Diff(want, l.ToArray()); diff != "" {
		t.Fatalf("Sort (-want +got):\n%s", diff)
	}
	l.Reverse()
	if diff := cmp.Diff([]float64{10, 3, 2.5, -1}, l.ToArray()); diff != "" {
		t.Fatalf("Reverse (-want +got):\n%s", diff)
	}
	l.Reverse()
	if diff := cmp.Diff(want, l.ToArray()); diff != "" {
		t.Fatalf("double Reverse should be identity (-want +got):\n%s", diff)
	}

	s := New(StringTraits).AddSlice([]string{"pear", "Apple", "apple", "banana"})
	s.Sort()
	if diff := cmp.Diff([]string{"Apple", "apple", "banana", "pear"}, s.ToArray()); diff != "" {
		t.Fatalf("lexical Sort (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	l := New(NumberTraits).AddSlice([]float64{1, 2.5, -3})
	if got := l.String(); got != "[1,2.5,-3]" {
		t.Fatalf("String() = %q", got)
	}
}

func TestNaN_LookupAndUniquePolicy(t *testing.T) {
	nan := math.NaN()
	l := New(NumberTraits).AddSlice([]float64{1, nan, 2, nan})

	if !l.Contains(nan) {
		t.Error("Contains(NaN) = false for a list holding NaN")
	}
	if i := l.IndexOf(nan); i != 1 {
		t.Errorf("IndexOf(NaN) = %d, want 1", i)
	}
	if n := l.CountDuplicates(nan); n != 2 {
		t.Errorf("CountDuplicates(NaN) = %d, want 2", n)
	}
	if !l.RemoveValue(nan) || l.Size() != 3 {
		t.Errorf("RemoveValue(NaN) left %v", l)
	}

	l.SetAllowDuplicates(false)
	l.Add(nan)
	got := l.ToArray()
	if len(got) != 3 || countNaNs(got) != 1 {
		t.Fatalf("unique list = %v, want 1, 2 and a single NaN", got)
	}
}

func countNaNs(s []float64) int {
	n := 0
	for _, v := range s {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
