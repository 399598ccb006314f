// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package mapst

// Set

// SetOf collects the distinct elements of s into a set.
func SetOf[T comparable, S ~[]T](s S) map[T]struct{} {
	result := make(map[T]struct{}, len(s))
	for _, v := range s {
		result[v] = struct{}{}
	}
	return result
}

// Counts returns the frequency of every distinct element of s.
func Counts[T comparable, S ~[]T](s S) map[T]int {
	result := make(map[T]int, len(s))
	for _, v := range s {
		result[v]++
	}
	return result
}

// Keys

// Keys returns the keys of m in map iteration order, which is unspecified.
func Keys[K comparable, V any, M ~map[K]V](m M) []K {
	result := make([]K, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}

// Equal

// Equal reports whether a and b hold the same keys mapped to equal values.
func Equal[K, V comparable, M ~map[K]V](a, b M) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || w != v {
			return false
		}
	}
	return true
}
