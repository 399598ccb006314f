// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import "iter"

// All yields index/element pairs from start to end. Each call starts a fresh
// traversal, so nested and interleaved loops over one list do not interfere.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(l.elements); i++ {
			if !yield(i, l.elements[i]) {
				return
			}
		}
	}
}

// Values yields the elements from start to end with a fresh cursor per call.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is a forward-only cursor over a list. The position belongs to the
// Iterator, not to the list.
type Iterator[T any] struct {
	elements func() []T
	pos      int
}

// Iterator returns a new cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{elements: func() []T { return l.elements }}
}

// HasNext reports whether Next will return another element.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < len(it.elements())
}

// Next returns the next element and advances the cursor. The second result is
// false once the list is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	v := it.elements()[it.pos]
	it.pos++
	return v, true
}
