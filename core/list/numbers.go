// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package list

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/sdk6/listkit/core/classify"
	"github.com/sdk6/listkit/util/slicest"
)

// IncrementMode selects how Numbers.Increment treats its argument.
type IncrementMode int

const (
	// IncrementLiteral adds exactly 1 to every element and ignores the delta
	// argument. This matches the historical behaviour existing data was
	// produced with.
	IncrementLiteral IncrementMode = iota
	// IncrementDelta adds the delta argument to every element.
	IncrementDelta
)

var incrementModeNames = map[IncrementMode]string{
	IncrementLiteral: "literal",
	IncrementDelta:   "delta",
}

func (m IncrementMode) String() string {
	if v, ok := incrementModeNames[m]; ok {
		return v
	}
	return fmt.Sprintf("invalid(%d)", int(m))
}

// ParseIncrementMode accepts "literal" or "delta".
func ParseIncrementMode(s string) (IncrementMode, error) {
	for k, v := range incrementModeNames {
		if strings.EqualFold(v, strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown increment mode %q", s)
}

// WithIncrementMode sets the Increment behaviour of a Numbers list. It has no
// effect on other lists.
func WithIncrementMode(m IncrementMode) Option {
	return func(o *options) { o.incrementMode = m }
}

// Numbers is a list of float64 values with numeric queries and transforms.
type Numbers struct {
	*List[float64]
	incrementMode IncrementMode
}

// NewNumbers returns an empty numeric list.
func NewNumbers(opts ...Option) *Numbers {
	o := buildOptions(opts)
	return &Numbers{
		List:          New(NumberTraits, opts...),
		incrementMode: o.incrementMode,
	}
}

// NumbersOf returns a numeric list holding values, subject to opts.
func NumbersOf(values []float64, opts ...Option) *Numbers {
	n := NewNumbers(opts...)
	n.AddSlice(values)
	return n
}

// IncrementMode reports how Increment treats its argument.
func (n *Numbers) IncrementMode() IncrementMode { return n.incrementMode }

// Sum returns the arithmetic total of the elements.
func (n *Numbers) Sum() float64 {
	return slicest.Reduce(n.elements, func(v, total float64) float64 {
		return total + v
	})
}

// Increment adds to every element; see IncrementMode for what is added.
func (n *Numbers) Increment(delta float64) {
	if n.incrementMode == IncrementLiteral {
		delta = 1
	}
	slicest.Transform(n.elements, func(v float64) float64 { return v + delta })
}

// Pow raises every element to exponent.
func (n *Numbers) Pow(exponent float64) {
	slicest.Transform(n.elements, func(v float64) float64 {
		return math.Pow(v, exponent)
	})
}

// Evens returns the elements whose truncated value is even, in list order.
func (n *Numbers) Evens() []float64 {
	return slicest.Filter(n.elements, classify.IsEven)
}

// Odds returns the elements whose truncated value is odd, in list order.
func (n *Numbers) Odds() []float64 {
	return slicest.Filter(n.elements, classify.IsOdd)
}

// Primes returns the prime elements in list order.
func (n *Numbers) Primes() []float64 {
	return slicest.Filter(n.elements, classify.IsPrime)
}

// Perfects returns the perfect-number elements in list order.
func (n *Numbers) Perfects() []float64 {
	return slicest.Filter(n.elements, classify.IsPerfect)
}

// InRange returns the elements within [start, end], optionally sorted
// ascending. The list itself is not changed.
func (n *Numbers) InRange(start, end float64, sorted bool) []float64 {
	out := slicest.Filter(n.elements, func(v float64) bool {
		return v >= start && v <= end
	})
	if sorted {
		slices.Sort(out)
	}
	return out
}

// Equal reports multiset equality with other.
func (n *Numbers) Equal(other *Numbers) bool {
	if other == nil {
		return false
	}
	return n.List.Equal(other.List)
}
