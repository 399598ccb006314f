// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package classify

import (
	"math"
	"testing"
)

func TestParity(t *testing.T) {
	cases := []struct {
		in   float64
		even bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{-3, false},
		{-4, true},
		{2.9, true},   // truncates to 2
		{3.99, false}, // truncates to 3
	}
	for _, c := range cases {
		if got := IsEven(c.in); got != c.even {
			t.Fatalf("IsEven(%v) = %v, want %v", c.in, got, c.even)
		}
		if got := IsOdd(c.in); got == c.even {
			t.Fatalf("IsOdd(%v) = %v, want %v", c.in, got, !c.even)
		}
	}
}

func TestIsPrime(t *testing.T) {
	var got []float64
	for i := -2.0; i <= 30; i++ {
		if IsPrime(i) {
			got = append(got, i)
		}
	}
	want := []float64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(got) != len(want) {
		t.Fatalf("primes up to 30: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("primes up to 30: got %v, want %v", got, want)
		}
	}
}

func TestIsPrime_NonIntegral(t *testing.T) {
	for _, v := range []float64{2.5, 7.0001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsPrime(v) {
			t.Fatalf("IsPrime(%v) should be false", v)
		}
	}
	if !IsPrime(7919) {
		t.Fatalf("7919 is prime")
	}
	if IsPrime(7917) {
		t.Fatalf("7917 = 3*7*13*29 is not prime")
	}
}

func TestIsPerfect(t *testing.T) {
	perfect := map[float64]bool{6: true, 28: true, 496: true, 8128: true}
	for i := -1.0; i <= 10000; i++ {
		if got := IsPerfect(i); got != perfect[i] {
			t.Fatalf("IsPerfect(%v) = %v, want %v", i, got, perfect[i])
		}
	}
	if IsPerfect(6.5) {
		t.Fatalf("fractional values are not perfect")
	}
}
