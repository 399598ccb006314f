// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sdk6/listkit/internal/logging"
	"github.com/sdk6/listkit/util/slicest"
)

const filePerm = 0o644

// Encode joins the formatted elements with sep. An empty sep concatenates
// the elements without any separator.
func (l *List[T]) Encode(sep string) string {
	return strings.Join(slicest.Map(l.elements, l.traits.Format), sep)
}

// WriteFile writes the encoded list to path, creating or truncating it.
func (l *List[T]) WriteFile(path, sep string) error {
	if err := os.WriteFile(path, []byte(l.Encode(sep)), filePerm); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// AppendFile appends the encoded list to an existing file at path. Nothing
// is inserted between the previous content and the first element.
func (l *List[T]) AppendFile(path, sep string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return &FileError{Op: "append", Path: path, Err: err}
	}
	_, err = f.WriteString(l.Encode(sep))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &FileError{Op: "append", Path: path, Err: err}
	}
	return nil
}

// ReadOptions controls ReadFile.
type ReadOptions struct {
	// Erase clears the list before reading, but only when the file holds at
	// least one line.
	Erase bool
	// Validate skips tokens that do not parse instead of failing.
	Validate bool
	// Separator splits each line into several tokens when non-empty.
	Separator string
}

// ReadFile appends the tokens of the file at path, one Add per token, so the
// duplicate policy applies as they arrive. Without Validate the first
// unparseable token aborts the read with a *FormatError; tokens read before
// it stay in the list.
func (l *List[T]) ReadFile(path string, opts ReadOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Op: "read", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	lines, err := readLines(f)
	if err != nil {
		return &FileError{Op: "read", Path: path, Err: err}
	}
	if len(lines) > 0 && opts.Erase {
		l.Clear()
	}
	for n, line := range lines {
		tokens := []string{line}
		if opts.Separator != "" {
			tokens = strings.Split(line, opts.Separator)
		}
		for _, tok := range tokens {
			v, err := l.traits.Parse(tok)
			if err != nil {
				if opts.Validate {
					logging.Debugf("skipping %q on line %d of %s", tok, n+1, path)
					continue
				}
				return &FormatError{Line: n + 1, Text: tok, Err: err}
			}
			l.Add(v)
		}
	}
	return nil
}

// readLines splits r into lines, accepting \n and \r\n endings. A final line
// without a terminator is kept; an empty input yields no lines.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteToFile is WriteFile for callers that only need success or failure.
// Failures are logged.
func (l *List[T]) WriteToFile(path, sep string) bool {
	return report("write list", l.WriteFile(path, sep))
}

// AppendToFile is AppendFile for callers that only need success or failure.
// Failures are logged.
func (l *List[T]) AppendToFile(path, sep string) bool {
	return report("append list", l.AppendFile(path, sep))
}

// ReadFromFile is ReadFile for callers that only need success or failure.
// Failures are logged; tokens read before a failure are kept.
func (l *List[T]) ReadFromFile(path string, opts ReadOptions) bool {
	return report("read list", l.ReadFile(path, opts))
}

func report(msg string, err error) bool {
	if err != nil {
		logging.Error(msg, err)
		return false
	}
	return true
}
