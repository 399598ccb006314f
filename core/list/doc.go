// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package list implements an ordered, optionally duplicate-free container
// generic over its element type, with numeric (Numbers) and textual (Strings)
// extensions layered on top by embedding.
//
// A List owns its elements exclusively and is not safe for concurrent use;
// callers sharing one across goroutines must guard it with their own mutex.
//
// When duplicates are disallowed every Add, AddSlice and AddAll is followed by
// a set-based elimination pass. The order of the surviving elements after
// that pass is unspecified. Set is a positional escape hatch and never
// triggers elimination.
//
// File persistence writes elements joined by a separator and reads them back
// line by line. Element texts containing the separator or a newline do not
// round-trip.
package list
