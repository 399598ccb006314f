// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package classify holds stateless predicates over numeric values used by the
// numeric list filters: parity, primality and perfection.
package classify
