// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

// Naming follows one convention across the package:
// - X: callback may fail; the first error stops iteration and is returned.
// - I: callback receives the element index.
// - D: an explicit initial accumulator is supplied.

// Map

// MapXI maps every element of s through fn, stopping on the first error.
func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	return MapXI(s, func(_ int, t T) (U, error) {
		return fn(t)
	})
}

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result, _ := MapXI(s, func(i int, t T) (U, error) {
		return fn(i, t), nil
	})
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Transform rewrites every element of s in place.
func Transform[T any, S ~[]T](s S, fn func(T) T) {
	for i, v := range s {
		s[i] = fn(v)
	}
}

// Filter

// FilterI returns a new slice holding the elements for which fn reports true.
// The result is never nil and never aliases s.
func FilterI[T any, S ~[]T](s S, fn func(int, T) bool) S {
	result := make(S, 0)
	for i, v := range s {
		if fn(i, v) {
			result = append(result, v)
		}
	}
	return result
}

func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	return FilterI(s, func(_ int, t T) bool {
		return fn(t)
	})
}

// Count returns how many elements satisfy fn.
func Count[T any, S ~[]T](s S, fn func(T) bool) int {
	return ReduceD(s, 0, func(t T, n int) int {
		if fn(t) {
			return n + 1
		}
		return n
	})
}

// Reduce

// ReduceXDI reduces slice S to type U with initial value and error propagation.
func ReduceXDI[T any, S ~[]T, U any](s S, init U, fn func(int, T, U) (U, error)) (U, error) {
	var zero U
	for i, t := range s {
		var err error
		init, err = fn(i, t, init)
		if err != nil {
			return zero, err
		}
	}
	return init, nil
}

// ReduceD reduces slice S to type U starting from init.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	result, _ := ReduceXDI(s, init, func(_ int, t T, u U) (U, error) {
		return fn(t, u), nil
	})
	return result
}

// Reduce reduces slice S to type U starting from the zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// BestI returns the index of the element preferred by better, scanning left to
// right and keeping the earlier element on ties. It returns -1 for an empty s.
func BestI[T any, S ~[]T](s S, better func(candidate, current T) bool) int {
	best := -1
	for i, v := range s {
		if best < 0 || better(v, s[best]) {
			best = i
		}
	}
	return best
}
