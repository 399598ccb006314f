// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sdk6/listkit/util/mapst"
	"github.com/sdk6/listkit/util/slicest"
)

// List is an ordered sequence of elements with a duplicate policy.
type List[T cmp.Ordered] struct {
	elements   []T
	duplicates bool
	traits     Traits[T]
}

type options struct {
	duplicates    bool
	incrementMode IncrementMode
}

// Option configures a list at construction.
type Option func(*options)

// WithDuplicates sets whether equal elements may coexist. Lists allow
// duplicates unless told otherwise.
func WithDuplicates(allow bool) Option {
	return func(o *options) { o.duplicates = allow }
}

func buildOptions(opts []Option) options {
	o := options{duplicates: true, incrementMode: IncrementLiteral}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns an empty list using traits for formatting and measuring.
func New[T cmp.Ordered](traits Traits[T], opts ...Option) *List[T] {
	o := buildOptions(opts)
	return &List[T]{
		elements:   make([]T, 0),
		duplicates: o.duplicates,
		traits:     traits,
	}
}

// Kind returns the traits name of the list ("number" or "string").
func (l *List[T]) Kind() string { return l.traits.Name }

// Traits returns the traits the list was built with.
func (l *List[T]) Traits() Traits[T] { return l.traits }

// AllowsDuplicates reports the current duplicate policy.
func (l *List[T]) AllowsDuplicates() bool { return l.duplicates }

// SetAllowDuplicates changes the policy for future appends. Elements already
// present are left as they are; call EraseDuplicates to clean them up.
func (l *List[T]) SetAllowDuplicates(allow bool) { l.duplicates = allow }

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.elements) {
		var zero T
		return zero, indexError(index, len(l.elements))
	}
	return l.elements[index], nil
}

// Set replaces the element at index. Set does not run duplicate elimination,
// so it can place a duplicate into a list that disallows them.
func (l *List[T]) Set(index int, value T) error {
	if index < 0 || index >= len(l.elements) {
		return indexError(index, len(l.elements))
	}
	l.elements[index] = value
	return nil
}

// ToArray returns a copy of the elements.
func (l *List[T]) ToArray() []T {
	return slices.Clone(l.elements)
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return len(l.elements) == 0 }

// Size returns the number of elements.
func (l *List[T]) Size() int { return len(l.elements) }

// Clear removes every element.
func (l *List[T]) Clear() { l.elements = l.elements[:0] }

// Contains reports whether some element equals value. NaN matches NaN.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// IndexOf returns the position of the first element equal to value, or -1.
func (l *List[T]) IndexOf(value T) int {
	return slices.IndexFunc(l.elements, func(v T) bool { return same(v, value) })
}

// CountDuplicates returns how many elements equal key.
func (l *List[T]) CountDuplicates(key T) int {
	return slicest.Count(l.elements, func(v T) bool { return same(v, key) })
}

// Add appends value and returns the list for chaining.
func (l *List[T]) Add(value T) *List[T] {
	l.elements = append(l.elements, value)
	l.enforcePolicy()
	return l
}

// AddSlice appends every value and returns the list for chaining.
func (l *List[T]) AddSlice(values []T) *List[T] {
	l.elements = append(l.elements, values...)
	l.enforcePolicy()
	return l
}

// AddAll appends the contents of other and returns the list for chaining.
// Adding a list to itself doubles its contents.
func (l *List[T]) AddAll(other *List[T]) *List[T] {
	if other == nil {
		return l
	}
	return l.AddSlice(other.ToArray())
}

// Remove deletes the element at index. It reports false when index is out of
// range.
func (l *List[T]) Remove(index int) bool {
	if index < 0 || index >= len(l.elements) {
		return false
	}
	l.elements = slices.Delete(l.elements, index, index+1)
	return true
}

// RemoveValue deletes the first element equal to value. It reports false when
// no element matches.
func (l *List[T]) RemoveValue(value T) bool {
	return l.Remove(l.IndexOf(value))
}

// Sort orders the elements ascending by natural order.
func (l *List[T]) Sort() { slices.Sort(l.elements) }

// Reverse reverses the element order in place.
func (l *List[T]) Reverse() { slices.Reverse(l.elements) }

// EraseDuplicates rebuilds the list from the set of its elements. All NaN
// values collapse into one. The resulting order is unspecified.
func (l *List[T]) EraseDuplicates() {
	nan := slices.IndexFunc(l.elements, isNaN[T])
	out := slices.DeleteFunc(mapst.Keys(mapst.SetOf(l.elements)), isNaN[T])
	if nan >= 0 {
		out = append(out, l.elements[nan])
	}
	l.elements = out
}

func (l *List[T]) enforcePolicy() {
	if !l.duplicates {
		l.EraseDuplicates()
	}
}

// String renders the list as [a,b,c].
func (l *List[T]) String() string {
	return "[" + strings.Join(slicest.Map(l.elements, l.traits.Format), ",") + "]"
}

// isNaN reports whether v is a floating-point NaN, the only ordered value not
// equal to itself.
func isNaN[T cmp.Ordered](v T) bool { return v != v }

// same is == except that NaN equals NaN.
func same[T cmp.Ordered](a, b T) bool { return a == b || (isNaN(a) && isNaN(b)) }
