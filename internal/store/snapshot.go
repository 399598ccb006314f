// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"cmp"
	"fmt"

	"github.com/sdk6/listkit/core/list"
	"github.com/sdk6/listkit/util/slicest"
)

// Snapshot is the stored form of a list: its elements in order, rendered as
// text by the list's traits.
type Snapshot struct {
	Name            string   `json:"name"`
	Kind            string   `json:"kind"`
	AllowDuplicates bool     `json:"allow_duplicates"`
	Values          []string `json:"values"`
}

// Capture snapshots l under name.
func Capture[T cmp.Ordered](name string, l *list.List[T]) Snapshot {
	return Snapshot{
		Name:            name,
		Kind:            l.Kind(),
		AllowDuplicates: l.AllowsDuplicates(),
		Values:          slicest.Map(l.ToArray(), l.Traits().Format),
	}
}

// Fill parses the snapshot values with the traits of l and appends them.
// Nothing is appended when any value fails to parse.
func Fill[T cmp.Ordered](snap Snapshot, l *list.List[T]) error {
	if snap.Kind != l.Kind() {
		return fmt.Errorf("snapshot %q holds %s elements, list holds %s", snap.Name, snap.Kind, l.Kind())
	}
	values, err := slicest.MapXI(snap.Values, func(i int, s string) (T, error) {
		v, err := l.Traits().Parse(s)
		if err != nil {
			return v, &list.FormatError{Line: i + 1, Text: s, Err: err}
		}
		return v, nil
	})
	if err != nil {
		return fmt.Errorf("snapshot %q: %w", snap.Name, err)
	}
	l.AddSlice(values)
	return nil
}

// Numbers rebuilds a numeric list from the snapshot, keeping its duplicate
// policy. opts are applied after the stored policy.
func (s Snapshot) Numbers(opts ...list.Option) (*list.Numbers, error) {
	n := list.NewNumbers(append([]list.Option{list.WithDuplicates(s.AllowDuplicates)}, opts...)...)
	if err := Fill(s, n.List); err != nil {
		return nil, err
	}
	return n, nil
}

// Strings rebuilds a textual list from the snapshot, keeping its duplicate
// policy.
func (s Snapshot) Strings(opts ...list.Option) (*list.Strings, error) {
	l := list.NewStrings(append([]list.Option{list.WithDuplicates(s.AllowDuplicates)}, opts...)...)
	if err := Fill(s, l.List); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate parses every value against the snapshot kind without keeping the
// result.
func (s Snapshot) Validate() error {
	var err error
	switch s.Kind {
	case list.KindNumber:
		_, err = s.Numbers()
	case list.KindString:
		_, err = s.Strings()
	default:
		err = fmt.Errorf("snapshot %q has unknown kind %q", s.Name, s.Kind)
	}
	return err
}
