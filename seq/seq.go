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

// Package seq implements an immutable, array-backed, random-access sequence.
//
// A List never changes after construction, which makes it safe for
// unsynchronized concurrent reads. Traversal is available through a
// bidirectional Iterator and through a Splitter, a range-bounded cursor that
// supports recursive bisection for parallel consumption.
//
// Misusing a List (indexing out of range, iterating past either end, or
// calling any mutator) panics with one of the Err sentinels below. These
// panics signal programming errors; they are not meant to be branched on.
package seq

import (
	"errors"
)

var (
	// ErrOutOfRange reports an index or range outside the sequence or
	// outside a destination slice.
	ErrOutOfRange = errors.New("seq: index out of range")

	// ErrNegativeCount reports a negative count passed to a skip, back,
	// grow or size argument.
	ErrNegativeCount = errors.New("seq: negative count")

	// ErrExhausted reports a Next or Prev call with no remaining element
	// in that direction.
	ErrExhausted = errors.New("seq: iteration exhausted")

	// ErrImmutable reports a mutating call on an immutable sequence.
	ErrImmutable = errors.New("seq: sequence is immutable")

	// ErrUnordered reports an ordering operation on a domain that has no
	// comparator.
	ErrUnordered = errors.New("seq: domain is not ordered")
)

// Sequence is the read-only protocol shared by sequence implementations.
type Sequence[T any] interface {
	Len() int
	Empty() bool
	Get(i int) T
	Each(f func(v T, i int))
}

// MutableSequence extends Sequence with in-place mutation. *List implements
// it so that immutable lists can stand in wherever a mutable sibling is
// expected; every mutator on a *List panics with ErrImmutable.
type MutableSequence[T any] interface {
	Sequence[T]

	Set(i int, v T)
	Insert(i int, v T)
	InsertAll(i int, vs ...T)
	Append(v T)
	AppendAll(vs ...T)
	Remove(i int) T
	RemoveValue(v T) bool
	RemoveIf(pred func(T) bool) bool
	RemoveAll(other Sequence[T]) bool
	RetainAll(other Sequence[T]) bool
	Replace(op func(T) T)
	Sort(cmp func(a, b T) int)
	Clear()
	Resize(n int)
	RemoveRange(from, to int)
	SetRange(i int, vs ...T)
}

// Source is the hasNext/next iteration protocol consumed during
// construction from arbitrary element sources.
type Source[T any] interface {
	HasNext() bool
	Next() T
}
