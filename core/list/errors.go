// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned for positional access outside [0, Size).
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmpty is returned by extremum queries on an empty list.
var ErrEmpty = errors.New("empty list")

func indexError(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}

// FileError reports a failed file operation.
type FileError struct {
	Op   string // "write", "append" or "read"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FormatError reports a persisted token that could not be parsed. Line is
// 1-based.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
