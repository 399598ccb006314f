// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"cmp"
	"slices"

	"github.com/sdk6/listkit/util/mapst"
	"github.com/sdk6/listkit/util/slicest"
)

// Equal reports multiset equality: both lists hold the same elements with
// the same multiplicities, in any order.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil || l.Size() != other.Size() {
		return false
	}
	return slicest.Count(l.elements, isNaN[T]) == slicest.Count(other.elements, isNaN[T]) &&
		mapst.Equal(mapst.Counts(withoutNaN(l.elements)), mapst.Counts(withoutNaN(other.elements)))
}

// Map keys never match a NaN, so NaNs are counted apart from the rest.
func withoutNaN[T cmp.Ordered](s []T) []T {
	return slices.DeleteFunc(slices.Clone(s), isNaN[T])
}

// LooseEquals reports whether both lists have the same size and every element
// of other is present in l. Multiplicities are not compared, so [1,1,2] and
// [1,2,2] are loosely equal.
func (l *List[T]) LooseEquals(other *List[T]) bool {
	if other == nil || l.Size() != other.Size() {
		return false
	}
	present := mapst.SetOf(l.elements)
	for _, v := range other.elements {
		if isNaN(v) {
			if !l.Contains(v) {
				return false
			}
			continue
		}
		if _, ok := present[v]; !ok {
			return false
		}
	}
	return true
}

// SortedEquals sorts copies of both element sequences and compares them
// pairwise.
func (l *List[T]) SortedEquals(other *List[T]) bool {
	if other == nil {
		return false
	}
	a, b := l.ToArray(), other.ToArray()
	slices.Sort(a)
	slices.Sort(b)
	return slices.EqualFunc(a, b, same[T])
}
