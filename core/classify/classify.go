// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package classify

import "math"

// maxExact is the largest float64 below which every integer is representable.
const maxExact = 1 << 53

// IsEven reports whether v, truncated toward zero, is divisible by two.
func IsEven(v float64) bool {
	return int64(v)%2 == 0
}

// IsOdd reports whether v, truncated toward zero, is not divisible by two.
func IsOdd(v float64) bool {
	return int64(v)%2 != 0
}

// integral returns v as an unsigned integer when v is a finite, non-negative
// whole number small enough to be exact.
func integral(v float64) (uint64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= maxExact {
		return 0, false
	}
	if v != math.Trunc(v) {
		return 0, false
	}
	return uint64(v), true
}

// IsPrime reports whether v is a whole number greater than one with no
// divisors other than one and itself. Fractional values are never prime.
func IsPrime(v float64) bool {
	n, ok := integral(v)
	if !ok || n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsPerfect reports whether v is a positive whole number equal to the sum of
// its proper divisors (6, 28, 496, ...).
func IsPerfect(v float64) bool {
	n, ok := integral(v)
	if !ok || n <= 1 {
		return false
	}
	sum := uint64(1)
	for i := uint64(2); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		sum += i
		if j := n / i; j != i {
			sum += j
		}
	}
	return sum == n
}
