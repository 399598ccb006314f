// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sdk6/listkit/util/slicest"
)

// Strings is a list of text values with case and concatenation transforms.
type Strings struct {
	*List[string]
}

// NewStrings returns an empty textual list.
func NewStrings(opts ...Option) *Strings {
	return &Strings{List: New(StringTraits, opts...)}
}

// StringsOf returns a textual list holding values, subject to opts.
func StringsOf(values []string, opts ...Option) *Strings {
	s := NewStrings(opts...)
	s.AddSlice(values)
	return s
}

// ToLowerCase lower-cases every element.
func (s *Strings) ToLowerCase() {
	slicest.Transform(s.elements, cases.Lower(language.Und).String)
}

// ToUpperCase upper-cases every element.
func (s *Strings) ToUpperCase() {
	slicest.Transform(s.elements, cases.Upper(language.Und).String)
}

// Capitalize upper-cases the first character of every element and leaves the
// rest untouched. Empty elements stay empty.
func (s *Strings) Capitalize() {
	slicest.Transform(s.elements, capitalize)
}

func capitalize(v string) string {
	r, size := utf8.DecodeRuneInString(v)
	if size == 0 {
		return v
	}
	return cases.Upper(language.Und).String(string(r)) + v[size:]
}

// Concat appends suffix to every element. An empty suffix is a no-op.
func (s *Strings) Concat(suffix string) {
	if suffix == "" {
		return
	}
	slicest.Transform(s.elements, func(v string) string { return v + suffix })
}

// ConcatAt appends suffix to the element at index.
func (s *Strings) ConcatAt(suffix string, index int) error {
	v, err := s.Get(index)
	if err != nil {
		return err
	}
	if suffix == "" {
		return nil
	}
	return s.Set(index, v+suffix)
}

// Length returns the length in characters of the element at index.
func (s *Strings) Length(index int) (int, error) {
	v, err := s.Get(index)
	if err != nil {
		return 0, err
	}
	return utf8.RuneCountInString(v), nil
}

// Equal reports multiset equality with other. For strings this is the same
// as comparing both lists after sorting.
func (s *Strings) Equal(other *Strings) bool {
	if other == nil {
		return false
	}
	return s.List.Equal(other.List)
}
