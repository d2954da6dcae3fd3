// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seq

import (
	"bytes"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/dolthub/collections/d"
)

// Domain describes an element domain: how two elements compare for equality,
// optionally how they order, and the canonical empty List for that domain.
// Create one Domain per element type and share it; the empty List returned
// by zero-length constructions is canonical per Domain.
type Domain[T any] struct {
	eq    func(a, b T) bool
	cmp   func(a, b T) int
	empty *List[T]
}

// NewDomain returns a Domain with the given equality predicate and
// three-way comparator. cmp may be nil for unordered domains.
func NewDomain[T any](eq func(a, b T) bool, cmp func(a, b T) int) *Domain[T] {
	d.Chk.True(eq != nil, "domain requires an equality predicate")
	dom := &Domain[T]{eq: eq, cmp: cmp}
	dom.empty = &List[T]{dom: dom}
	return dom
}

// Ordered reports whether the domain has a comparator.
func (dom *Domain[T]) Ordered() bool {
	return dom.cmp != nil
}

// Comparable returns an unordered Domain using == equality.
func Comparable[T comparable]() *Domain[T] {
	return NewDomain[T](func(a, b T) bool { return a == b }, nil)
}

// Ordered returns a Domain using == equality and < ordering.
func Ordered[T constraints.Ordered]() *Domain[T] {
	return NewDomain[T](
		func(a, b T) bool { return a == b },
		func(a, b T) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		})
}

// Float64 returns a Domain with bitwise equality and a total ordering:
// NaN equals itself and sorts above every other value, and -0.0 sorts
// below 0.0. Use Ordered[float64] for IEEE semantics instead.
func Float64() *Domain[float64] {
	return NewDomain[float64](
		func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) },
		compareFloat64)
}

// Float32 is the float32 counterpart of Float64.
func Float32() *Domain[float32] {
	return NewDomain[float32](
		func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) },
		func(a, b float32) int { return compareFloat64(float64(a), float64(b)) })
}

// Bytes returns a Domain over []byte elements with lexicographic ordering.
func Bytes() *Domain[[]byte] {
	return NewDomain[[]byte](bytes.Equal, bytes.Compare)
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	// resolve NaN and signed zero by canonical bit patterns
	ab, bb := int64(math.Float64bits(a)), int64(math.Float64bits(b))
	switch {
	case ab < bb:
		return -1
	case ab > bb:
		return 1
	default:
		return 0
	}
}
