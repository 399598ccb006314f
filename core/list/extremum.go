// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"cmp"
	"math"

	"github.com/sdk6/listkit/util/slicest"
)

// Biggest returns the first element with the largest key (value for numbers,
// length for strings). NaN sorts above every other key.
func (l *List[T]) Biggest() (T, error) {
	return l.at(l.BiggestIndex())
}

// Smallest returns the first element with the smallest key.
func (l *List[T]) Smallest() (T, error) {
	return l.at(l.SmallestIndex())
}

// BiggestIndex returns the position of the first element equal to Biggest.
func (l *List[T]) BiggestIndex() (int, error) {
	return l.extremumIndex(func(c int) bool { return c > 0 })
}

// SmallestIndex returns the position of the first element equal to Smallest.
func (l *List[T]) SmallestIndex() (int, error) {
	return l.extremumIndex(func(c int) bool { return c < 0 })
}

// The first element holding the winning key is also the first occurrence of
// its value, since equal values share a key.
func (l *List[T]) extremumIndex(better func(c int) bool) (int, error) {
	key := l.traits.Key
	i := slicest.BestI(l.elements, func(candidate, current T) bool {
		return better(compareKeys(key(candidate), key(current)))
	})
	if i < 0 {
		return -1, ErrEmpty
	}
	return i, nil
}

func (l *List[T]) at(i int, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return l.elements[i], nil
}

// compareKeys orders keys ascending with NaN greater than +Inf and equal to
// itself.
func compareKeys(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmp.Compare(a, b)
}
