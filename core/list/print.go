// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"fmt"
	"io"
)

// Fprint writes one element per line to w. Each line starts with prefix and,
// when numbered is set, a 1-based "[n] " marker.
func (l *List[T]) Fprint(w io.Writer, prefix string, numbered bool) error {
	for i, v := range l.All() {
		line := prefix
		if numbered {
			line += fmt.Sprintf("[%d] ", i+1)
		}
		if _, err := fmt.Fprintln(w, line+l.traits.Format(v)); err != nil {
			return err
		}
	}
	return nil
}
